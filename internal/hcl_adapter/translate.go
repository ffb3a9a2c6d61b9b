package hcl_adapter

import (
	"fmt"
	"time"

	"github.com/vk/stargridgo/internal/config"
)

// Profile attributes fall back to these when a run block omits them.
const (
	defaultConcurrency = 5
	defaultRetries     = 5
	defaultBaseDelay   = 500 * time.Millisecond
)

// megaverseBlock is the HCL shape of the `megaverse` block.
type megaverseBlock struct {
	BaseURL        string `hcl:"base_url"`
	CandidateID    string `hcl:"candidate_id"`
	RequestTimeout string `hcl:"request_timeout,optional"`
}

// runBlock is the HCL shape of a named `run` block. Pointer fields tell an
// omitted attribute apart from an explicit zero.
type runBlock struct {
	Name        string `hcl:"name,label"`
	Concurrency *int   `hcl:"concurrency,optional"`
	Retries     *int   `hcl:"retries,optional"`
	BaseDelayMs *int   `hcl:"base_delay_ms,optional"`
	DryRun      bool   `hcl:"dry_run,optional"`
}

func translateMegaverse(block *megaverseBlock) (config.Megaverse, error) {
	megaverse := config.Megaverse{
		BaseURL:     block.BaseURL,
		CandidateID: block.CandidateID,
	}
	if block.RequestTimeout != "" {
		timeout, err := time.ParseDuration(block.RequestTimeout)
		if err != nil {
			return config.Megaverse{}, fmt.Errorf("megaverse block: invalid request_timeout: %w", err)
		}
		megaverse.RequestTimeout = timeout
	}
	return megaverse, nil
}

func translateRun(block *runBlock) *config.Run {
	run := &config.Run{
		Name:        block.Name,
		Concurrency: defaultConcurrency,
		Retries:     defaultRetries,
		BaseDelay:   defaultBaseDelay,
		DryRun:      block.DryRun,
	}
	if block.Concurrency != nil {
		run.Concurrency = *block.Concurrency
	}
	if block.Retries != nil {
		run.Retries = *block.Retries
	}
	if block.BaseDelayMs != nil {
		run.BaseDelay = time.Duration(*block.BaseDelayMs) * time.Millisecond
	}
	return run
}
