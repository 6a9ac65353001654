package browser

import "sync"

const DefaultTitle = "New Tab"

// Observer receives a tab's page notifications. The tab container registers
// itself as the observer of every tab it creates.
type Observer interface {
	TabTitleChanged(tab *Tab, title string)
	TabIconChanged(tab *Tab, icon string)
}

// TabInfo is the frontend view of a tab.
type TabInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Icon  string `json:"icon"` // empty means the default favicon
}

type Tab struct {
	ID string

	surface  Surface
	observer Observer

	mu    sync.Mutex
	title string
	icon  string
}

func NewTab(id string, surface Surface, observer Observer, url string) *Tab {
	t := &Tab{
		ID:       id,
		surface:  surface,
		observer: observer,
		title:    DefaultTitle,
	}
	surface.SetURL(url)
	return t
}

func (t *Tab) Surface() Surface {
	return t.surface
}

func (t *Tab) Title() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.title
}

func (t *Tab) Info() TabInfo {
	t.mu.Lock()
	defer t.mu.Unlock()
	return TabInfo{
		ID:    t.ID,
		Title: t.title,
		URL:   t.surface.CurrentURL(),
		Icon:  t.icon,
	}
}

func (t *Tab) setTitle(title string) {
	t.mu.Lock()
	t.title = title
	t.mu.Unlock()
	t.observer.TabTitleChanged(t, title)
}

func (t *Tab) setIcon(icon string) {
	t.mu.Lock()
	t.icon = icon
	t.mu.Unlock()
	t.observer.TabIconChanged(t, icon)
}
