package attendance

import "time"

type Method string

const (
	MethodRFID   Method = "rfid"
	MethodFace   Method = "face"
	MethodManual Method = "manual"
)

var MethodValues = []string{
	string(MethodRFID),
	string(MethodFace),
	string(MethodManual),
}

// Record is one check-in/check-out pair for a worker on a calendar day.
// A record with CheckIn but no CheckOut is an open session; the first
// open record of the day is the one a check-out completes. More than one
// record per day can exist (the capture hardware occasionally double
// fires) and the salary calculation tolerates that.
type Record struct {
	ID        string
	WorkerID  string
	Date      time.Time
	CheckIn   *time.Time
	CheckOut  *time.Time
	Method    Method
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	WorkerName *string
}
