package watcher

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/process"
)

// systemProcess wraps a gopsutil process found by name.
type systemProcess struct {
	p *process.Process
}

func (s *systemProcess) PID() int32 {
	return s.p.Pid
}

// IsRunning reports whether the process is still alive. gopsutil compares the
// creation time, so a reused PID counts as not running.
func (s *systemProcess) IsRunning(ctx context.Context) (bool, error) {
	return s.p.IsRunningWithContext(ctx)
}

// SystemFinder scans the OS process table for an exact name match.
type SystemFinder struct{}

// NewSystemFinder creates a Finder backed by the OS process table.
func NewSystemFinder() *SystemFinder {
	return &SystemFinder{}
}

// Find returns the first process whose name equals name, or nil if none.
// Processes whose name cannot be read are skipped.
func (f *SystemFinder) Find(ctx context.Context, name string) (Process, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get process list: %w", err)
	}

	for _, p := range procs {
		pname, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		if pname == name {
			return &systemProcess{p: p}, nil
		}
	}
	return nil, nil
}
