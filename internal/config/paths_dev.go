//go:build !prod

package config

// DefaultDataDir returns the data directory for development mode.
// In dev mode, state files are kept in the working directory for easy access and debugging.
func DefaultDataDir() string {
	return "."
}

func IsDevelopment() bool {
	return true
}
