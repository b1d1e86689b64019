package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/customer"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/job"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/currency"
)

// Sender sends one WhatsApp text message. Satisfied by
// internal/pkg/whatsapp.Client; tests plug in a recorder.
type Sender interface {
	SendText(ctx context.Context, phone string, msg string) error
}

// NotificationService pushes WhatsApp messages for job lifecycle events
// and the owner's daily summary. Sends are best effort: a failure is
// logged and swallowed so it can never fail the business operation that
// triggered it.
type NotificationService struct {
	sender     Sender
	ownerPhone string
	shopName   string
}

func NewNotificationService(sender Sender, ownerPhone, shopName string) *NotificationService {
	return &NotificationService{
		sender:     sender,
		ownerPhone: ownerPhone,
		shopName:   shopName,
	}
}

// NotifyJobStatus messages the customer when their job becomes ready or
// delivered. Other transitions are silent.
func (s *NotificationService) NotifyJobStatus(ctx context.Context, j job.Job, c customer.Customer) {
	if s == nil || s.sender == nil {
		return
	}

	var msg string
	switch j.Status {
	case job.StatusReady:
		msg = ComposeJobReadyMessage(s.shopName, c.Name, j)
	case job.StatusDelivered:
		msg = ComposeJobDeliveredMessage(s.shopName, c.Name, j)
	default:
		return
	}

	if err := s.sender.SendText(ctx, NormalizePhone(c.Phone), msg); err != nil {
		slog.Warn("failed to send job status notification",
			"job_number", j.JobNumber,
			"status", j.Status,
			"error", err,
		)
	}
}

// SendDailySummary messages the owner with the day's delivered jobs and
// takings. Called from the scheduler after closing time.
func (s *NotificationService) SendDailySummary(ctx context.Context, date time.Time, delivered []job.Job) {
	if s == nil || s.sender == nil || s.ownerPhone == "" {
		return
	}

	msg := ComposeDailySummary(s.shopName, date, delivered)
	if err := s.sender.SendText(ctx, NormalizePhone(s.ownerPhone), msg); err != nil {
		slog.Warn("failed to send daily summary", "error", err)
	}
}

// ComposeJobReadyMessage builds the pickup notification text.
func ComposeJobReadyMessage(shopName, customerName string, j job.Job) string {
	balance := j.Total.Sub(j.Advance)
	if balance.IsNegative() {
		balance = decimal.Zero
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s, your %s %s (job %s) is ready for pickup at %s.",
		customerName, j.Device.Brand, j.Device.Model, j.JobNumber, shopName)
	if j.Total.IsPositive() {
		fmt.Fprintf(&b, "\nTotal: %s", currency.Format(j.Total))
		if j.Advance.IsPositive() {
			fmt.Fprintf(&b, "\nAdvance paid: %s\nBalance due: %s",
				currency.Format(j.Advance), currency.Format(balance))
		}
	}
	return b.String()
}

// ComposeJobDeliveredMessage builds the delivery confirmation text.
func ComposeJobDeliveredMessage(shopName, customerName string, j job.Job) string {
	return fmt.Sprintf(
		"Hi %s, your %s %s (job %s) has been delivered. Amount settled: %s. Thank you for choosing %s!",
		customerName, j.Device.Brand, j.Device.Model, j.JobNumber,
		currency.Format(j.Total), shopName,
	)
}

// ComposeDailySummary builds the owner's end-of-day report.
func ComposeDailySummary(shopName string, date time.Time, delivered []job.Job) string {
	revenue := decimal.Zero
	for _, j := range delivered {
		revenue = revenue.Add(j.Total)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s daily summary for %s\n", shopName, date.Format("02 Jan 2006"))
	fmt.Fprintf(&b, "Jobs delivered: %d\n", len(delivered))
	fmt.Fprintf(&b, "Revenue: %s", currency.Format(revenue))
	for _, j := range delivered {
		fmt.Fprintf(&b, "\n- %s %s %s: %s",
			j.JobNumber, j.Device.Brand, j.Device.Model, currency.Format(j.Total))
	}
	return b.String()
}

// NormalizePhone converts a stored phone number to the international
// format WhatsApp expects, without the leading "+". Bare 10-digit Indian
// numbers and numbers written with a leading 0 get the 91 country code.
func NormalizePhone(phone string) string {
	p := strings.TrimSpace(phone)
	p = strings.TrimPrefix(p, "+")
	p = strings.ReplaceAll(p, " ", "")
	p = strings.ReplaceAll(p, "-", "")

	switch {
	case strings.HasPrefix(p, "91") && len(p) == 12:
		return p
	case strings.HasPrefix(p, "0") && len(p) == 11:
		return "91" + p[1:]
	case len(p) == 10:
		return "91" + p
	default:
		return p
	}
}
