package browser

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"

	"navshell/internal/events"
)

var (
	ErrTabNotFound = errors.New("tab not found")
	ErrLastTab     = errors.New("cannot close the last tab")
	ErrNoTab       = errors.New("no open tab")
	ErrInvalidURL  = errors.New("invalid address")
)

// VisitRecorder stores page visits.
type VisitRecorder interface {
	Record(url, title string) error
}

// Manager is the tab container. It owns tab order and the current tab, and
// republishes tab notifications to the frontend.
type Manager struct {
	newSurface SurfaceFactory
	visits     VisitRecorder
	homePage   string
	newID      func() string

	mu      sync.Mutex
	ctx     context.Context
	tabs    []*Tab
	current int
}

func NewManager(newSurface SurfaceFactory, visits VisitRecorder, homePage string) *Manager {
	return &Manager{
		newSurface: newSurface,
		visits:     visits,
		homePage:   homePage,
		newID:      uuid.NewString,
		ctx:        context.Background(),
		current:    -1,
	}
}

func (m *Manager) Startup(ctx context.Context) {
	m.mu.Lock()
	m.ctx = ctx
	m.mu.Unlock()
}

func (m *Manager) emit(name string, payload any) {
	m.mu.Lock()
	ctx := m.ctx
	m.mu.Unlock()
	events.Emit(ctx, name, payload)
}

// AddTab opens rawURL (the home page when empty) in a new tab and makes it current.
func (m *Manager) AddTab(rawURL string) (TabInfo, error) {
	target := m.homePage
	if strings.TrimSpace(rawURL) != "" {
		normalized, err := NormalizeAddress(rawURL)
		if err != nil {
			return TabInfo{}, err
		}
		target = normalized
	}

	id := m.newID()
	tab := NewTab(id, m.newSurface(id, m.emit), m, target)

	m.mu.Lock()
	m.tabs = append(m.tabs, tab)
	m.current = len(m.tabs) - 1
	m.mu.Unlock()

	info := tab.Info()
	m.emit(events.TabAdded, info)
	m.emit(events.TabActivated, info)
	return info, nil
}

// CloseTab removes a tab. The last remaining tab cannot be closed.
func (m *Manager) CloseTab(id string) error {
	m.mu.Lock()
	idx := m.indexOf(id)
	if idx < 0 {
		m.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrTabNotFound, id)
	}
	if len(m.tabs) <= 1 {
		m.mu.Unlock()
		return ErrLastTab
	}

	m.tabs = append(m.tabs[:idx], m.tabs[idx+1:]...)
	if m.current > idx || m.current >= len(m.tabs) {
		m.current--
	}
	current := m.tabs[m.current]
	m.mu.Unlock()

	m.emit(events.TabClosed, TabCommand{TabID: id})
	m.emit(events.TabActivated, current.Info())
	return nil
}

func (m *Manager) Activate(id string) (TabInfo, error) {
	m.mu.Lock()
	idx := m.indexOf(id)
	if idx < 0 {
		m.mu.Unlock()
		return TabInfo{}, fmt.Errorf("%w: %s", ErrTabNotFound, id)
	}
	m.current = idx
	tab := m.tabs[idx]
	m.mu.Unlock()

	info := tab.Info()
	m.emit(events.TabActivated, info)
	return info, nil
}

func (m *Manager) Tabs() []TabInfo {
	m.mu.Lock()
	tabs := append([]*Tab{}, m.tabs...)
	m.mu.Unlock()

	out := make([]TabInfo, 0, len(tabs))
	for _, t := range tabs {
		out = append(out, t.Info())
	}
	return out
}

func (m *Manager) Current() (TabInfo, error) {
	tab, err := m.currentTab()
	if err != nil {
		return TabInfo{}, err
	}
	return tab.Info(), nil
}

// CurrentURL is the address shown in the URL bar.
func (m *Manager) CurrentURL() string {
	tab, err := m.currentTab()
	if err != nil {
		return ""
	}
	return tab.Surface().CurrentURL()
}

// Navigate loads the address bar text in the current tab.
func (m *Manager) Navigate(text string) (string, error) {
	target, err := NormalizeAddress(text)
	if err != nil {
		return "", err
	}
	tab, err := m.currentTab()
	if err != nil {
		return "", err
	}
	tab.Surface().SetURL(target)
	return target, nil
}

func (m *Manager) Back() error {
	tab, err := m.currentTab()
	if err != nil {
		return err
	}
	tab.Surface().Back()
	return nil
}

func (m *Manager) Forward() error {
	tab, err := m.currentTab()
	if err != nil {
		return err
	}
	tab.Surface().Forward()
	return nil
}

func (m *Manager) Reload() error {
	tab, err := m.currentTab()
	if err != nil {
		return err
	}
	tab.Surface().Reload()
	return nil
}

// OnTitleChanged is called by the engine when a page title changes.
func (m *Manager) OnTitleChanged(id, title string) error {
	tab, err := m.tab(id)
	if err != nil {
		return err
	}
	if strings.TrimSpace(title) == "" {
		title = tab.Surface().CurrentURL()
	}
	tab.setTitle(title)
	return nil
}

// OnIconChanged is called by the engine when a page favicon changes.
func (m *Manager) OnIconChanged(id, icon string) error {
	tab, err := m.tab(id)
	if err != nil {
		return err
	}
	tab.setIcon(icon)
	return nil
}

// OnURLChanged is called by the engine after a navigation commits. The visit
// is recorded in history.
func (m *Manager) OnURLChanged(id, pageURL string) error {
	tab, err := m.tab(id)
	if err != nil {
		return err
	}
	if r, ok := tab.Surface().(urlReporter); ok {
		r.ReportURL(pageURL)
	}
	m.emit(events.TabURL, TabCommand{TabID: id, URL: pageURL})

	if m.visits != nil {
		if err := m.visits.Record(pageURL, tab.Title()); err != nil {
			return fmt.Errorf("record visit: %w", err)
		}
	}
	return nil
}

func (m *Manager) TabTitleChanged(tab *Tab, title string) {
	m.emit(events.TabTitle, tab.Info())
}

func (m *Manager) TabIconChanged(tab *Tab, icon string) {
	m.emit(events.TabIcon, tab.Info())
}

func (m *Manager) tab(id string) (*Tab, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := m.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrTabNotFound, id)
	}
	return m.tabs[idx], nil
}

func (m *Manager) currentTab() (*Tab, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current < 0 || m.current >= len(m.tabs) {
		return nil, ErrNoTab
	}
	return m.tabs[m.current], nil
}

// indexOf must be called with m.mu held.
func (m *Manager) indexOf(id string) int {
	for i, t := range m.tabs {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// NormalizeAddress turns address bar text into a URL, adding https:// when
// no scheme is given.
func NormalizeAddress(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrInvalidURL
	}
	if !strings.Contains(text, "://") && !hasOpaqueScheme(text) {
		text = "https://" + text
	}

	u, err := url.Parse(text)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme == "" || (u.Host == "" && u.Opaque == "" && u.Scheme != "file") {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, text)
	}
	return u.String(), nil
}

func hasOpaqueScheme(text string) bool {
	for _, scheme := range []string{"about:", "data:", "mailto:"} {
		if strings.HasPrefix(strings.ToLower(text), scheme) {
			return true
		}
	}
	return false
}
