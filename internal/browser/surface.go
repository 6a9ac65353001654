package browser

import (
	"sync"

	"navshell/internal/events"
)

// Surface is the embedded engine's navigable view for one tab.
type Surface interface {
	SetURL(url string)
	Back()
	Forward()
	Reload()
	CurrentURL() string
}

// Emitter sends an engine command to the frontend.
type Emitter func(name string, payload any)

// SurfaceFactory builds the surface for a new tab.
type SurfaceFactory func(tabID string, emit Emitter) Surface

// urlReporter is implemented by surfaces whose current URL is learnt from
// engine notifications rather than queried.
type urlReporter interface {
	ReportURL(url string)
}

// TabCommand is the payload of the tab:* engine commands.
type TabCommand struct {
	TabID string `json:"tabId"`
	URL   string `json:"url,omitempty"`
}

// FrontendSurface drives a webview iframe owned by the frontend. Commands are
// sent as events; the iframe reports its location back through the manager.
type FrontendSurface struct {
	tabID string
	emit  Emitter

	mu  sync.Mutex
	url string
}

func NewFrontendSurface(tabID string, emit Emitter) Surface {
	return &FrontendSurface{tabID: tabID, emit: emit}
}

func (s *FrontendSurface) SetURL(url string) {
	s.mu.Lock()
	s.url = url
	s.mu.Unlock()
	s.emit(events.TabNavigate, TabCommand{TabID: s.tabID, URL: url})
}

func (s *FrontendSurface) Back() {
	s.emit(events.TabBack, TabCommand{TabID: s.tabID})
}

func (s *FrontendSurface) Forward() {
	s.emit(events.TabForward, TabCommand{TabID: s.tabID})
}

func (s *FrontendSurface) Reload() {
	s.emit(events.TabReload, TabCommand{TabID: s.tabID})
}

func (s *FrontendSurface) CurrentURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.url
}

func (s *FrontendSurface) ReportURL(url string) {
	s.mu.Lock()
	s.url = url
	s.mu.Unlock()
}
