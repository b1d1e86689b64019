package notification

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/job"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare ten digit", "9876543210", "919876543210"},
		{"leading zero", "09876543210", "919876543210"},
		{"already international", "919876543210", "919876543210"},
		{"plus prefix", "+919876543210", "919876543210"},
		{"spaces and dashes", "+91 98765-43210", "919876543210"},
		{"foreign number passes through", "14155552671", "14155552671"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.input))
		})
	}
}

func TestComposeJobReadyMessage(t *testing.T) {
	j := job.Job{
		JobNumber: "JOB-00042",
		Device:    job.Device{Brand: "Samsung", Model: "Galaxy A52"},
		Total:     decimal.RequireFromString("2500"),
		Advance:   decimal.RequireFromString("1000"),
	}

	msg := ComposeJobReadyMessage("Thameem Mobiles", "Ravi", j)

	assert.Contains(t, msg, "Hi Ravi")
	assert.Contains(t, msg, "Samsung Galaxy A52")
	assert.Contains(t, msg, "JOB-00042")
	assert.Contains(t, msg, "Thameem Mobiles")
	assert.Contains(t, msg, "Total: Rs. 2,500.00")
	assert.Contains(t, msg, "Advance paid: Rs. 1,000.00")
	assert.Contains(t, msg, "Balance due: Rs. 1,500.00")
}

func TestComposeJobReadyMessage_NoTotalYet(t *testing.T) {
	j := job.Job{
		JobNumber: "JOB-00007",
		Device:    job.Device{Brand: "Redmi", Model: "Note 10"},
	}

	msg := ComposeJobReadyMessage("Thameem Mobiles", "Priya", j)

	assert.Contains(t, msg, "ready for pickup")
	assert.NotContains(t, msg, "Total:")
	assert.NotContains(t, msg, "Balance due")
}

func TestComposeJobReadyMessage_AdvanceExceedsTotal(t *testing.T) {
	j := job.Job{
		JobNumber: "JOB-00011",
		Device:    job.Device{Brand: "Vivo", Model: "Y21"},
		Total:     decimal.RequireFromString("500"),
		Advance:   decimal.RequireFromString("800"),
	}

	msg := ComposeJobReadyMessage("Thameem Mobiles", "Kumar", j)

	assert.Contains(t, msg, "Balance due: Rs. 0.00")
}

func TestComposeJobDeliveredMessage(t *testing.T) {
	j := job.Job{
		JobNumber: "JOB-00042",
		Device:    job.Device{Brand: "Samsung", Model: "Galaxy A52"},
		Total:     decimal.RequireFromString("2500"),
	}

	msg := ComposeJobDeliveredMessage("Thameem Mobiles", "Ravi", j)

	assert.Contains(t, msg, "has been delivered")
	assert.Contains(t, msg, "Rs. 2,500.00")
	assert.Contains(t, msg, "Thameem Mobiles")
}

func TestComposeDailySummary(t *testing.T) {
	date := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)
	delivered := []job.Job{
		{JobNumber: "JOB-00001", Device: job.Device{Brand: "Samsung", Model: "M31"}, Total: decimal.RequireFromString("1200")},
		{JobNumber: "JOB-00002", Device: job.Device{Brand: "Oppo", Model: "A15"}, Total: decimal.RequireFromString("800.50")},
	}

	msg := ComposeDailySummary("Thameem Mobiles", date, delivered)

	assert.Contains(t, msg, "15 Sep 2025")
	assert.Contains(t, msg, "Jobs delivered: 2")
	assert.Contains(t, msg, "Revenue: Rs. 2,000.50")
	assert.Contains(t, msg, "JOB-00001")
	assert.Contains(t, msg, "JOB-00002")
}

func TestComposeDailySummary_NoDeliveries(t *testing.T) {
	date := time.Date(2025, 9, 14, 0, 0, 0, 0, time.UTC)

	msg := ComposeDailySummary("Thameem Mobiles", date, nil)

	assert.Contains(t, msg, "Jobs delivered: 0")
	assert.Contains(t, msg, "Revenue: Rs. 0.00")
}
