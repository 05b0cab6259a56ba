package models

import "time"

// InstanceInfo describes the running tray instance.
// This corresponds to ~/.procwatch/instance.yaml.
type InstanceInfo struct {
	Version     int       `yaml:"version"`
	PID         int       `yaml:"pid"`
	ProcessName string    `yaml:"process_name"`
	StartedAt   time.Time `yaml:"started_at"`
}

// NewInstanceInfo creates instance info for the current process.
func NewInstanceInfo(pid int, processName string) *InstanceInfo {
	return &InstanceInfo{
		Version:     1,
		PID:         pid,
		ProcessName: processName,
		StartedAt:   time.Now().UTC(),
	}
}
