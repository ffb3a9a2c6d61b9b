package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"
)

// FakeMegaverse is an in-memory stand-in for the megaverse API. It serves a
// fixed goal map, records every creation call, tracks how many creation
// requests overlap, and can be told to fail the next requests to a path.
type FakeMegaverse struct {
	Server *httptest.Server

	goal [][]string

	mu       sync.Mutex
	created  []string
	failures map[string]*failurePlan
	inFlight int
	peak     int
}

type failurePlan struct {
	remaining int
	status    int
}

// NewFakeMegaverse starts the fake API; it is torn down with the test.
func NewFakeMegaverse(t *testing.T, goal [][]string) *FakeMegaverse {
	t.Helper()

	f := &FakeMegaverse{
		goal:     goal,
		failures: make(map[string]*failurePlan),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/map/", f.handleGoal)
	mux.HandleFunc("/polyanets", f.handleCreate)
	mux.HandleFunc("/soloons", f.handleCreate)
	mux.HandleFunc("/comeths", f.handleCreate)

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)
	return f
}

// FailNext makes the next n requests to path answer with the given status.
func (f *FakeMegaverse) FailNext(path string, n, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[path] = &failurePlan{remaining: n, status: status}
}

// Created lists the recorded creation calls in lexical order, each one
// rendered as "<kind> (row,column)[ <color|direction>]".
func (f *FakeMegaverse) Created() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := append([]string(nil), f.created...)
	sort.Strings(out)
	return out
}

// PeakConcurrency reports the most creation requests ever in flight at once.
func (f *FakeMegaverse) PeakConcurrency() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.peak
}

func (f *FakeMegaverse) handleGoal(w http.ResponseWriter, r *http.Request) {
	if status, failed := f.consumeFailure(r.URL.Path); failed {
		http.Error(w, `{"error":"injected"}`, status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"goal": f.goal})
}

func (f *FakeMegaverse) handleCreate(w http.ResponseWriter, r *http.Request) {
	f.enterCreate()
	defer f.leaveCreate()

	// Hold the request briefly so concurrent callers overlap measurably.
	time.Sleep(2 * time.Millisecond)

	if status, failed := f.consumeFailure(r.URL.Path); failed {
		http.Error(w, `{"error":"injected"}`, status)
		return
	}

	var body struct {
		Row         int    `json:"row"`
		Column      int    `json:"column"`
		CandidateID string `json:"candidateId"`
		Color       string `json:"color"`
		Direction   string `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"error":"bad body"}`, http.StatusBadRequest)
		return
	}

	kind := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/"), "s")
	record := fmt.Sprintf("%s (%d,%d)", kind, body.Row, body.Column)
	if body.Color != "" {
		record += " " + body.Color
	}
	if body.Direction != "" {
		record += " " + body.Direction
	}

	f.mu.Lock()
	f.created = append(f.created, record)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{}`)
}

func (f *FakeMegaverse) consumeFailure(path string) (int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	plan, ok := f.failures[path]
	if !ok || plan.remaining == 0 {
		return 0, false
	}
	plan.remaining--
	return plan.status, true
}

func (f *FakeMegaverse) enterCreate() {
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.peak {
		f.peak = f.inFlight
	}
	f.mu.Unlock()
}

func (f *FakeMegaverse) leaveCreate() {
	f.mu.Lock()
	f.inFlight--
	f.mu.Unlock()
}
