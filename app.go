package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"navshell/internal/browser"
	"navshell/internal/events"
	"navshell/internal/models"
	"navshell/internal/services"
)

// App struct
type App struct {
	ctx      context.Context
	services *services.Services
	tabs     *browser.Manager
	dbClose  func() error
}

// NewApp creates a new App application struct
func NewApp(svc *services.Services, tabs *browser.Manager, dbClose func() error) *App {
	return &App{services: svc, tabs: tabs, dbClose: dbClose}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	events.EnableRuntimeEmitter()

	a.services.Startup(ctx)
	a.tabs.Startup(ctx)

	if err := a.services.Load(); err != nil {
		runtime.LogError(ctx, fmt.Sprintf("failed to load saved state: %v", err))
		events.Emit(ctx, events.ShellNotice, events.NewError("Saved settings or favorites could not be read: "+err.Error()))
	}

	a.services.Settings.OnChange(a.applySettings)
	a.applySettings(a.services.Settings.Get())

	if _, err := a.tabs.AddTab(""); err != nil {
		runtime.LogError(ctx, fmt.Sprintf("failed to open first tab: %v", err))
	}
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	// Close database connection pool
	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			runtime.LogError(ctx, fmt.Sprintf("failed to close database: %v", err))
		} else {
			runtime.LogInfo(ctx, "database closed")
		}
		a.dbClose = nil
	}
}

func (a *App) applySettings(settings *models.Settings) {
	if settings.Theme == models.ThemeDark {
		runtime.WindowSetDarkTheme(a.ctx)
		runtime.WindowSetBackgroundColour(a.ctx, 0x2d, 0x2d, 0x2d, 255)
	} else {
		runtime.WindowSetLightTheme(a.ctx)
		runtime.WindowSetBackgroundColour(a.ctx, 255, 255, 255, 255)
	}
	events.Emit(a.ctx, events.SettingsApplied, settings)
}

// Tabs and toolbar

func (a *App) NewTab(url string) (browser.TabInfo, error) {
	return a.tabs.AddTab(url)
}

func (a *App) CloseTab(id string) error {
	err := a.tabs.CloseTab(id)
	if errors.Is(err, browser.ErrLastTab) {
		return nil
	}
	return err
}

func (a *App) ActivateTab(id string) (browser.TabInfo, error) {
	return a.tabs.Activate(id)
}

func (a *App) Tabs() []browser.TabInfo {
	return a.tabs.Tabs()
}

// Navigate loads the address bar text in the current tab
func (a *App) Navigate(text string) (string, error) {
	return a.tabs.Navigate(text)
}

func (a *App) Back() error {
	return a.tabs.Back()
}

func (a *App) Forward() error {
	return a.tabs.Forward()
}

func (a *App) Reload() error {
	return a.tabs.Reload()
}

func (a *App) CurrentURL() string {
	return a.tabs.CurrentURL()
}

// Engine notifications reported by the frontend

func (a *App) TabTitleChanged(id, title string) error {
	return a.tabs.OnTitleChanged(id, title)
}

func (a *App) TabIconChanged(id, icon string) error {
	return a.tabs.OnIconChanged(id, icon)
}

func (a *App) TabURLChanged(id, url string) error {
	if err := a.tabs.OnURLChanged(id, url); err != nil {
		runtime.LogWarning(a.ctx, fmt.Sprintf("tab %s: %v", id, err))
		return err
	}
	return nil
}

// Favorites

func (a *App) ListFavorites() []models.FavoriteFolder {
	return a.services.Favorites.List()
}

// AddCurrentToFavorites appends the current tab's URL to folder, creating it if needed
func (a *App) AddCurrentToFavorites(folder string) error {
	url := a.tabs.CurrentURL()
	if url == "" {
		return browser.ErrNoTab
	}
	return a.favoritesChanged(a.services.Favorites.AddURL(folder, url))
}

func (a *App) AddFavoritesFolder(name string) error {
	err := a.services.Favorites.AddFolder(name)
	if errors.Is(err, services.ErrDuplicateFolder) {
		_, _ = runtime.MessageDialog(a.ctx, runtime.MessageDialogOptions{
			Type:    runtime.WarningDialog,
			Title:   "Error",
			Message: "This folder already exists.",
		})
	}
	return a.favoritesChanged(err)
}

// DeleteFavorite removes url from folder, or the whole folder when url is empty
func (a *App) DeleteFavorite(folder, url string) error {
	if url == "" {
		return a.favoritesChanged(a.services.Favorites.DeleteFolder(folder))
	}
	return a.favoritesChanged(a.services.Favorites.DeleteURL(folder, url))
}

func (a *App) favoritesChanged(err error) error {
	if err != nil {
		runtime.LogWarning(a.ctx, fmt.Sprintf("favorites: %v", err))
		return err
	}
	events.Emit(a.ctx, events.FavoritesChanged, a.services.Favorites.List())
	return nil
}

// Settings

func (a *App) GetSettings() *models.Settings {
	return a.services.Settings.Get()
}

func (a *App) SaveSettings(theme, language string, microphone bool) (*models.Settings, error) {
	return a.services.Settings.Update(theme, language, microphone)
}

// ChooseFavoritesFolder opens a native directory picker and moves the favorites file there.
// A folder that already holds a favorites file is opened as-is instead of overwritten.
func (a *App) ChooseFavoritesFolder() (*models.Settings, error) {
	dir, err := runtime.OpenDirectoryDialog(a.ctx, runtime.OpenDialogOptions{
		Title: "Choose a favorites folder",
	})
	if err != nil {
		return nil, err
	}
	if dir == "" {
		// dialog cancelled
		return a.services.Settings.Get(), nil
	}
	return a.services.Settings.SetFavoritesFolder(dir)
}

func (a *App) ResetFavoritesFolder() (*models.Settings, error) {
	return a.services.Settings.SetFavoritesFolder("")
}

// History

func (a *App) GetHistory(limit int) ([]models.HistoryEntry, error) {
	if a.services.History == nil {
		return nil, fmt.Errorf("history service not available")
	}
	return a.services.History.Recent(limit)
}

func (a *App) SearchHistory(term string) ([]models.HistoryEntry, error) {
	if a.services.History == nil {
		return nil, fmt.Errorf("history service not available")
	}
	return a.services.History.Search(term, 0)
}

func (a *App) ClearHistory() error {
	if a.services.History == nil {
		return fmt.Errorf("history service not available")
	}
	return a.services.History.Clear()
}

// Window

func (a *App) ShowWindow() {
	runtime.WindowShow(a.ctx)
	runtime.WindowUnminimise(a.ctx)
}

func (a *App) Quit() {
	runtime.Quit(a.ctx)
}
