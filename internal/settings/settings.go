package settings

import "strings"

// Keys of the settings store. They match the names used by earlier releases so
// existing stores keep working.
const (
	KeyPlayerPath     = "vlcPath"
	KeySelectedSource = "selectedListUrl"
)

// Settings holds the user preferences the core depends on: the external player
// executable and the location of the selected source.
type Settings struct {
	playerPath     string
	selectedSource string
}

// NewSettings creates a Settings value. Both fields are trimmed; empty values
// are valid and mean "not configured" and "no source selected".
func NewSettings(playerPath, selectedSource string) Settings {
	return Settings{
		playerPath:     strings.TrimSpace(playerPath),
		selectedSource: strings.TrimSpace(selectedSource),
	}
}

// PlayerPath returns the path to the media player executable.
func (s Settings) PlayerPath() string {
	return s.playerPath
}

// SelectedSource returns the location of the selected source.
func (s Settings) SelectedSource() string {
	return s.selectedSource
}

// WithSelectedSource returns a copy with the selection replaced.
func (s Settings) WithSelectedSource(location string) Settings {
	return NewSettings(s.playerPath, location)
}
