package customer

import "time"

// Customer is a walk-in or repeat client of the shop. Phone doubles as
// the WhatsApp notification target.
type Customer struct {
	ID        string
	Name      string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Summary is the embedded view used by jobs.
type Summary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
