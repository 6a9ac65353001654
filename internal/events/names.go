package events

// Backend -> frontend event names.
const (
	TabAdded     = "tab:added"
	TabClosed    = "tab:closed"
	TabActivated = "tab:activated"
	TabTitle     = "tab:title"
	TabIcon      = "tab:icon"
	TabURL       = "tab:url"

	// Engine commands for the iframe hosting a tab.
	TabNavigate = "tab:navigate"
	TabBack     = "tab:back"
	TabForward  = "tab:forward"
	TabReload   = "tab:reload"

	FavoritesChanged = "favorites:changed"
	SettingsApplied  = "settings:applied"
	ShellNotice      = "shell:notice"
)
