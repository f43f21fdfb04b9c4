// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/memstore"
	"github.com/danielhkuo/quickly-vote/poll"
)

// TestAdminKey is the admin secret used by GetTestConfig
const TestAdminKey = "test-admin-key"

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: cliparse.DatabaseMemory,
		AdminKey:     TestAdminKey,
		MaxVotes:     100,
		OptionLabels: poll.DefaultLabels,
		PollMode:     poll.ModeGated,
		PollActive:   true,
		LiveUpdates:  true,
	}
}

// NewTestEngine builds an engine over a fresh memstore from cfg
func NewTestEngine(t *testing.T, cfg cliparse.Config, sink poll.Sink) *poll.Engine {
	t.Helper()

	registry, err := poll.NewRegistry(cfg.OptionLabels)
	if err != nil {
		t.Fatalf("Failed to build option registry: %v", err)
	}

	engine, err := poll.NewEngine(memstore.New(), poll.Config{
		Registry:      registry,
		MaxVotes:      cfg.MaxVotes,
		MaxPerOption:  cfg.MaxPerOption,
		Mode:          cfg.PollMode,
		InitialActive: cfg.PollActive,
		AdminKey:      cfg.AdminKey,
		Sink:          sink,
	})
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	return engine
}

// RecordingSink keeps every totals array it receives
type RecordingSink struct {
	mu     sync.Mutex
	events [][]int
}

func (s *RecordingSink) Publish(totals []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, append([]int(nil), totals...))
}

// Events returns a copy of everything published so far
func (s *RecordingSink) Events() [][]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]int(nil), s.events...)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
