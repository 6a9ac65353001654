package models

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// SupportedLanguages lists the interface languages offered by the settings dialog.
var SupportedLanguages = []string{"English", "Français"}

type Permissions struct {
	Microphone bool `json:"microphone"`
}

// Settings is persisted in full as settings.json.
type Settings struct {
	Theme           Theme       `json:"theme"`
	Language        string      `json:"language"`
	Permissions     Permissions `json:"permissions"`
	FavoritesFolder string      `json:"favorites_folder"` // "" means the data directory
}

func DefaultSettings() *Settings {
	return &Settings{
		Theme:           ThemeLight,
		Language:        "English",
		Permissions:     Permissions{Microphone: false},
		FavoritesFolder: "",
	}
}

func IsSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}
