package job

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/customer"
)

type Status string

const (
	StatusReceived   Status = "received"
	StatusInProgress Status = "in_progress"
	StatusReady      Status = "ready"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

var StatusValues = []string{
	string(StatusReceived),
	string(StatusInProgress),
	string(StatusReady),
	string(StatusDelivered),
	string(StatusCancelled),
}

// transitions holds the allowed next states per status. Delivered and
// cancelled are terminal.
var transitions = map[Status][]Status{
	StatusReceived:   {StatusInProgress, StatusReady, StatusCancelled},
	StatusInProgress: {StatusReady, StatusCancelled},
	StatusReady:      {StatusDelivered, StatusCancelled},
}

// CanTransition reports whether a job may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Device describes the handset brought in for repair.
type Device struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	IMEI  string `json:"imei,omitempty"`
}

// PartUsage records one inventory part consumed by a job. UnitPrice is
// the sale price charged to the customer and UnitCost what the shop
// paid, both captured at the time of consumption so later price changes
// don't rewrite history.
type PartUsage struct {
	PartID    string          `json:"part_id"`
	PartName  string          `json:"part_name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// Job is one repair order. Total is the amount settled on delivery;
// Advance was collected at intake and is subtracted from the balance due.
type Job struct {
	ID          string
	JobNumber   string
	CustomerID  string
	Customer    *customer.Summary
	Device      Device
	Complaint   string
	Estimate    decimal.Decimal
	Advance     decimal.Decimal
	Status      Status
	PartsUsed   []PartUsage
	Total       decimal.Decimal
	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
