// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import "fmt"

// Mode selects whether voting is gated by the admin-controlled poll flag.
type Mode string

const (
	// ModeGated accepts votes only while the poll is active.
	ModeGated Mode = "gated"
	// ModeOpen accepts votes at any time; the poll flag is ignored by admission.
	ModeOpen Mode = "open"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeGated, ModeOpen:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown poll mode %q (want %q or %q)", s, ModeGated, ModeOpen)
	}
}

// Gated reports whether admission checks the poll flag.
func (m Mode) Gated() bool {
	return m == ModeGated
}
