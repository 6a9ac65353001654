package browser

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navshell/internal/events"
)

type fakeSurface struct {
	url   string
	calls []string
}

func (s *fakeSurface) SetURL(url string) {
	s.url = url
	s.calls = append(s.calls, "set:"+url)
}
func (s *fakeSurface) Back()              { s.calls = append(s.calls, "back") }
func (s *fakeSurface) Forward()           { s.calls = append(s.calls, "forward") }
func (s *fakeSurface) Reload()            { s.calls = append(s.calls, "reload") }
func (s *fakeSurface) CurrentURL() string { return s.url }

type fakeVisits struct {
	urls   []string
	titles []string
}

func (v *fakeVisits) Record(url, title string) error {
	v.urls = append(v.urls, url)
	v.titles = append(v.titles, title)
	return nil
}

type recordedEvent struct {
	name    string
	payload any
}

func captureEvents(t *testing.T) *[]recordedEvent {
	t.Helper()
	var mu sync.Mutex
	var got []recordedEvent
	events.SetCustomEmitter(func(ctx context.Context, name string, payload any) {
		mu.Lock()
		got = append(got, recordedEvent{name: name, payload: payload})
		mu.Unlock()
	})
	t.Cleanup(func() { events.SetCustomEmitter(nil) })
	return &got
}

func newTestManager(visits VisitRecorder) (*Manager, map[string]*fakeSurface) {
	surfaces := map[string]*fakeSurface{}
	m := NewManager(func(tabID string, emit Emitter) Surface {
		s := &fakeSurface{}
		surfaces[tabID] = s
		return s
	}, visits, "https://www.google.com")
	n := 0
	m.newID = func() string {
		n++
		return fmt.Sprintf("tab-%d", n)
	}
	return m, surfaces
}

func TestManager_AddTab_DefaultsToHomePage(t *testing.T) {
	m, surfaces := newTestManager(nil)

	info, err := m.AddTab("")
	require.NoError(t, err)

	assert.Equal(t, TabInfo{ID: "tab-1", Title: DefaultTitle, URL: "https://www.google.com"}, info)
	assert.Equal(t, []string{"set:https://www.google.com"}, surfaces["tab-1"].calls)
	assert.Equal(t, "https://www.google.com", m.CurrentURL())
}

func TestManager_AddTab_BecomesCurrent(t *testing.T) {
	m, _ := newTestManager(nil)
	_, err := m.AddTab("")
	require.NoError(t, err)
	_, err = m.AddTab("go.dev")
	require.NoError(t, err)

	current, err := m.Current()
	require.NoError(t, err)
	assert.Equal(t, "tab-2", current.ID)
	assert.Equal(t, "https://go.dev", current.URL)
	assert.Len(t, m.Tabs(), 2)
}

func TestManager_CloseTab(t *testing.T) {
	m, _ := newTestManager(nil)
	for i := 0; i < 3; i++ {
		_, err := m.AddTab("")
		require.NoError(t, err)
	}
	_, err := m.Activate("tab-2")
	require.NoError(t, err)

	require.NoError(t, m.CloseTab("tab-1"))
	current, _ := m.Current()
	assert.Equal(t, "tab-2", current.ID)

	require.NoError(t, m.CloseTab("tab-2"))
	current, _ = m.Current()
	assert.Equal(t, "tab-3", current.ID)

	assert.ErrorIs(t, m.CloseTab("tab-3"), ErrLastTab)
	assert.ErrorIs(t, m.CloseTab("missing"), ErrTabNotFound)
	assert.Len(t, m.Tabs(), 1)
}

func TestManager_CloseCurrentLastPosition(t *testing.T) {
	m, _ := newTestManager(nil)
	for i := 0; i < 2; i++ {
		_, err := m.AddTab("")
		require.NoError(t, err)
	}

	require.NoError(t, m.CloseTab("tab-2"))
	current, err := m.Current()
	require.NoError(t, err)
	assert.Equal(t, "tab-1", current.ID)
}

func TestManager_NavigationTargetsCurrentTab(t *testing.T) {
	m, surfaces := newTestManager(nil)
	_, _ = m.AddTab("")
	_, _ = m.AddTab("")
	_, err := m.Activate("tab-1")
	require.NoError(t, err)

	target, err := m.Navigate("example.com/path")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/path", target)
	require.NoError(t, m.Back())
	require.NoError(t, m.Forward())
	require.NoError(t, m.Reload())

	assert.Equal(t, []string{
		"set:https://www.google.com",
		"set:https://example.com/path",
		"back", "forward", "reload",
	}, surfaces["tab-1"].calls)
	assert.Equal(t, []string{"set:https://www.google.com"}, surfaces["tab-2"].calls)
}

func TestManager_NoTab(t *testing.T) {
	m, _ := newTestManager(nil)

	assert.ErrorIs(t, m.Back(), ErrNoTab)
	_, err := m.Navigate("example.com")
	assert.ErrorIs(t, err, ErrNoTab)
	assert.Equal(t, "", m.CurrentURL())
}

func TestManager_TitleAndIconNotifications(t *testing.T) {
	got := captureEvents(t)
	m, _ := newTestManager(nil)
	_, _ = m.AddTab("https://example.com")

	require.NoError(t, m.OnTitleChanged("tab-1", "Example Domain"))
	require.NoError(t, m.OnIconChanged("tab-1", "data:image/png;base64,AAAA"))
	assert.ErrorIs(t, m.OnTitleChanged("missing", "x"), ErrTabNotFound)

	var titles, icons []TabInfo
	for _, e := range *got {
		switch e.name {
		case events.TabTitle:
			titles = append(titles, e.payload.(TabInfo))
		case events.TabIcon:
			icons = append(icons, e.payload.(TabInfo))
		}
	}
	require.Len(t, titles, 1)
	assert.Equal(t, "Example Domain", titles[0].Title)
	require.Len(t, icons, 1)
	assert.Equal(t, "data:image/png;base64,AAAA", icons[0].Icon)
}

func TestManager_BlankTitleFallsBackToURL(t *testing.T) {
	m, _ := newTestManager(nil)
	_, _ = m.AddTab("https://example.com")

	require.NoError(t, m.OnTitleChanged("tab-1", ""))
	current, _ := m.Current()
	assert.Equal(t, "https://example.com", current.Title)
}

func TestManager_OnURLChangedRecordsVisit(t *testing.T) {
	visits := &fakeVisits{}
	m, _ := newTestManager(visits)
	_, _ = m.AddTab("")
	require.NoError(t, m.OnTitleChanged("tab-1", "Google"))

	require.NoError(t, m.OnURLChanged("tab-1", "https://www.google.com/search?q=go"))

	assert.Equal(t, []string{"https://www.google.com/search?q=go"}, visits.urls)
	assert.Equal(t, []string{"Google"}, visits.titles)
}

func TestFrontendSurface_EmitsCommands(t *testing.T) {
	var names []string
	var payloads []TabCommand
	s := NewFrontendSurface("tab-9", func(name string, payload any) {
		names = append(names, name)
		payloads = append(payloads, payload.(TabCommand))
	})

	s.SetURL("https://example.com")
	s.Back()
	s.Forward()
	s.Reload()
	s.(*FrontendSurface).ReportURL("https://example.com/next")

	assert.Equal(t, []string{events.TabNavigate, events.TabBack, events.TabForward, events.TabReload}, names)
	assert.Equal(t, TabCommand{TabID: "tab-9", URL: "https://example.com"}, payloads[0])
	assert.Equal(t, "https://example.com/next", s.CurrentURL())
}

func TestNormalizeAddress(t *testing.T) {
	cases := map[string]string{
		"example.com":            "https://example.com",
		"  http://example.org  ": "http://example.org",
		"localhost:8080/x":       "https://localhost:8080/x",
		"about:blank":            "about:blank",
		"file:///tmp/page.html":  "file:///tmp/page.html",
	}
	for in, want := range cases {
		got, err := NormalizeAddress(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "   ", "https://"} {
		_, err := NormalizeAddress(bad)
		assert.ErrorIs(t, err, ErrInvalidURL, bad)
	}
}
