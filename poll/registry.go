// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultLabels is the stock four-option ballot.
var DefaultLabels = []string{"Option A", "Option B", "Option C", "Option D"}

// Option is one votable choice.
type Option struct {
	Index int    `json:"index"`
	Label string `json:"label"`
}

// Registry is the fixed, ordered set of options. It is immutable once built.
type Registry struct {
	options []Option
}

// NewRegistry builds a registry from labels in index order.
// Labels must be non-empty and unique since grouped results are keyed by label.
func NewRegistry(labels []string) (*Registry, error) {
	if len(labels) == 0 {
		return nil, errors.New("at least one option is required")
	}

	seen := make(map[string]bool, len(labels))
	options := make([]Option, 0, len(labels))
	for i, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			return nil, fmt.Errorf("option %d has an empty label", i)
		}
		if seen[label] {
			return nil, fmt.Errorf("duplicate option label %q", label)
		}
		seen[label] = true
		options = append(options, Option{Index: i, Label: label})
	}

	return &Registry{options: options}, nil
}

// MustRegistry is like NewRegistry but panics on invalid labels.
func MustRegistry(labels []string) *Registry {
	r, err := NewRegistry(labels)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of options.
func (r *Registry) Len() int {
	return len(r.options)
}

// Valid reports whether idx names an option.
func (r *Registry) Valid(idx int) bool {
	return idx >= 0 && idx < len(r.options)
}

// Label returns the display label for idx.
func (r *Registry) Label(idx int) (string, bool) {
	if !r.Valid(idx) {
		return "", false
	}
	return r.options[idx].Label, true
}

// Labels returns a copy of all labels in index order.
func (r *Registry) Labels() []string {
	labels := make([]string, len(r.options))
	for i, opt := range r.options {
		labels[i] = opt.Label
	}
	return labels
}
