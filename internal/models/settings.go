package models

import "time"

// Default values used when settings.yaml is absent or a field is empty.
const (
	DefaultProcessName = "firefox"
	DefaultInterval    = time.Second
	MinInterval        = 100 * time.Millisecond
)

// Settings represents global application settings.
// This corresponds to ~/.procwatch/settings.yaml.
type Settings struct {
	Version       int           `yaml:"version"`
	ProcessName   string        `yaml:"process_name"`
	Interval      time.Duration `yaml:"interval"`
	Notify        bool          `yaml:"notify"`
	SkipTrayCheck bool          `yaml:"skip_tray_check"`
	IconPath      string        `yaml:"icon_path,omitempty"` // empty = embedded icon
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:     1,
		ProcessName: DefaultProcessName,
		Interval:    DefaultInterval,
	}
}

// Normalize fills empty fields with defaults and clamps the interval.
func (s *Settings) Normalize() {
	if s.Version == 0 {
		s.Version = 1
	}
	if s.ProcessName == "" {
		s.ProcessName = DefaultProcessName
	}
	if s.Interval == 0 {
		s.Interval = DefaultInterval
	}
	if s.Interval < MinInterval {
		s.Interval = MinInterval
	}
}
