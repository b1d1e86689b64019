package shift

import "time"

// Shift (called "batch" on the shop floor) is a named daily work-time
// template. Window boundaries are wall-clock "HH:MM" strings with no
// timezone; a window's span is computed as to-minutes minus from-minutes
// on the same calendar day. Cross-midnight windows are rejected at the
// API boundary (see dto.go) and are not otherwise supported.
type Shift struct {
	ID          string
	Name        string
	WorkingTime Window
	LunchTime   ToggleWindow
	BreakTime   ToggleWindow
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

type Window struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type ToggleWindow struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Enabled bool   `json:"enabled"`
}
