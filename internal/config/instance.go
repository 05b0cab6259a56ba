package config

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/jabbalaci/procwatch/internal/models"
)

// LoadInstanceInfo loads the running instance info from ~/.procwatch/instance.yaml.
// Returns nil if the file doesn't exist.
func LoadInstanceInfo() (*models.InstanceInfo, error) {
	path, err := GlobalInstanceFile()
	if err != nil {
		return nil, err
	}

	if !FileExists(path) {
		return nil, nil
	}

	var info models.InstanceInfo
	if err := LoadYAML(path, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SaveInstanceInfo saves the instance info to ~/.procwatch/instance.yaml.
func SaveInstanceInfo(info *models.InstanceInfo) error {
	if err := EnsureGlobalDir(); err != nil {
		return err
	}

	path, err := GlobalInstanceFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, info)
}

// RemoveInstanceInfo removes the instance.yaml file.
func RemoveInstanceInfo() error {
	path, err := GlobalInstanceFile()
	if err != nil {
		return err
	}

	if !FileExists(path) {
		return nil
	}
	return os.Remove(path)
}

// IsInstanceRunning checks whether another tray instance is alive.
// A stale instance.yaml (dead PID) is removed.
func IsInstanceRunning() (bool, *models.InstanceInfo, error) {
	info, err := LoadInstanceInfo()
	if err != nil {
		return false, nil, err
	}
	if info == nil {
		return false, nil, nil
	}
	if info.PID == os.Getpid() {
		return false, info, nil
	}

	alive, err := process.PidExists(int32(info.PID))
	if err != nil || !alive {
		_ = RemoveInstanceInfo()
		return false, info, nil
	}

	return true, info, nil
}

// AcquireInstance records the current process as the tray instance.
// It fails if another live instance is already recorded.
func AcquireInstance(processName string) error {
	running, info, err := IsInstanceRunning()
	if err != nil {
		return fmt.Errorf("failed to check instance status: %w", err)
	}
	if running {
		return fmt.Errorf("procwatch already running (PID %d, watching %q)", info.PID, info.ProcessName)
	}
	return SaveInstanceInfo(models.NewInstanceInfo(os.Getpid(), processName))
}
