// services/digest_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"

	"spa-admin/api"
	"spa-admin/models"
	"spa-admin/reports"
)

// Digest is the daily summary sent to the spa owner.
type Digest struct {
	Date              time.Time
	YesterdayEarnings decimal.Decimal
	TodayCount        int
	PendingApprovals  int
	TopService        string
}

// BuildDigest summarises yesterday's earnings and today's schedule.
func BuildDigest(appts []models.Appointment, now time.Time) Digest {
	today := models.CalendarDay(now)
	yesterday := today.AddDate(0, 0, -1)

	d := Digest{
		Date:              today,
		YesterdayEarnings: reports.Earnings(appts, reports.EarningsOptions{From: yesterday, To: yesterday}).Total,
	}
	for _, a := range appts {
		if a.Status == models.StatusPending {
			d.PendingApprovals++
		}
		if day, ok := a.Day(); ok && day.Equal(today) &&
			a.Status != models.StatusCancelled {
			d.TodayCount++
		}
	}
	if top := reports.MostRequestedServices(appts, reports.RankOptions{TopN: 1}); len(top) > 0 {
		d.TopService = top[0].Service
	}
	return d
}

func (d Digest) Text(currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Daily summary for %s\n", d.Date.Format("Mon, Jan 2 2006"))
	fmt.Fprintf(&b, "Yesterday's earnings: %s\n", reports.FormatMoney(currency, d.YesterdayEarnings))
	fmt.Fprintf(&b, "Appointments today: %d\n", d.TodayCount)
	fmt.Fprintf(&b, "Pending approvals: %d", d.PendingApprovals)
	if d.TopService != "" {
		fmt.Fprintf(&b, "\nMost requested service: %s", d.TopService)
	}
	return b.String()
}

type DigestService struct {
	api      AppointmentLister
	notifier Notifier
	actions  ActionLogger
	currency string
	logger   *slog.Logger
	now      func() time.Time
	cron     *cron.Cron

	tokenExpiry time.Time
}

func NewDigestService(client AppointmentLister, notifier Notifier, actions ActionLogger, currency string, logger *slog.Logger) *DigestService {
	if actions == nil {
		actions = NopActionLogger{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DigestService{
		api:      client,
		notifier: notifier,
		actions:  actions,
		currency: currency,
		logger:   logger,
		now:      time.Now,
	}
}

// ExpireAt stops digests from being attempted once the service token has
// expired at t. A zero t disables the check.
func (s *DigestService) ExpireAt(t time.Time) {
	s.tokenExpiry = t
}

// StartScheduler sends the digest on the given cron schedule until Stop.
func (s *DigestService) StartScheduler(spec string) error {
	if s.notifier == nil {
		return errors.New("no digest channel configured")
	}
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if err := s.SendDailyDigest(context.Background()); err != nil {
			s.logger.Error("daily digest failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid digest schedule %q: %w", spec, err)
	}
	c.Start()
	s.cron = c
	s.logger.Info("digest scheduler started", "schedule", spec, "channel", s.notifier.Channel())
	return nil
}

func (s *DigestService) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// SendDailyDigest builds and sends one digest. Failures are not retried.
func (s *DigestService) SendDailyDigest(ctx context.Context) error {
	if s.notifier == nil {
		return errors.New("no digest channel configured")
	}
	s.logger.Info("starting daily digest")

	if !s.tokenExpiry.IsZero() && !s.now().Before(s.tokenExpiry) {
		err := fmt.Errorf("digest token expired at %s: %w", s.tokenExpiry.Format(time.RFC3339), api.ErrSessionExpired)
		recordAction(ctx, s.actions, "system", "daily_digest", s.notifier.Channel(), err, "")
		return err
	}

	appts, err := s.api.ListAppointments(ctx, "")
	if err != nil {
		recordAction(ctx, s.actions, "system", "daily_digest", s.notifier.Channel(), err, "")
		return fmt.Errorf("fetch appointments: %w", err)
	}

	text := BuildDigest(appts, s.now()).Text(s.currency)
	err = s.notifier.Notify(ctx, text)
	recordAction(ctx, s.actions, "system", "daily_digest", s.notifier.Channel(), err, "Digest sent")
	if err != nil {
		return err
	}
	s.logger.Info("daily digest sent", "channel", s.notifier.Channel())
	return nil
}
