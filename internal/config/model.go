package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Model is the unified, format-agnostic representation of a mission: where
// the megaverse API lives and the named run profiles that execute against it.
type Model struct {
	Megaverse Megaverse
	Runs      map[string]*Run
}

// Megaverse holds the connection settings for the remote API.
type Megaverse struct {
	BaseURL        string
	CandidateID    string
	RequestTimeout time.Duration
}

// Run is one named execution profile.
type Run struct {
	Name        string
	Concurrency int
	Retries     int
	BaseDelay   time.Duration
	DryRun      bool
}

// Validate reports the first semantic problem with the mission.
func (m *Model) Validate() error {
	if m.Megaverse.BaseURL == "" {
		return errors.New("megaverse block: base_url is required")
	}
	if m.Megaverse.CandidateID == "" {
		return errors.New("megaverse block: candidate_id is required")
	}
	if m.Megaverse.RequestTimeout < 0 {
		return errors.New("megaverse block: request_timeout must not be negative")
	}
	if len(m.Runs) == 0 {
		return errors.New("mission defines no run blocks")
	}
	for _, name := range m.RunNames() {
		run := m.Runs[name]
		if run.Concurrency < 1 {
			return fmt.Errorf("run %q: concurrency must be at least 1, got %d", name, run.Concurrency)
		}
		if run.Retries < 0 {
			return fmt.Errorf("run %q: retries must not be negative, got %d", name, run.Retries)
		}
		if run.BaseDelay < 0 {
			return fmt.Errorf("run %q: base_delay_ms must not be negative", name)
		}
	}
	return nil
}

// SelectRun resolves which run profile to execute. An empty name is allowed
// only when the mission defines exactly one profile.
func (m *Model) SelectRun(name string) (*Run, error) {
	if name != "" {
		run, ok := m.Runs[name]
		if !ok {
			return nil, fmt.Errorf("mission defines no run named %q (available: %s)",
				name, strings.Join(m.RunNames(), ", "))
		}
		return run, nil
	}

	if len(m.Runs) == 1 {
		for _, run := range m.Runs {
			return run, nil
		}
	}
	return nil, fmt.Errorf("mission defines %d runs, pick one with -run (available: %s)",
		len(m.Runs), strings.Join(m.RunNames(), ", "))
}

// RunNames lists the defined profiles in lexical order.
func (m *Model) RunNames() []string {
	names := make([]string, 0, len(m.Runs))
	for name := range m.Runs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
