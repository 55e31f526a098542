package scheduler

import (
	"context"
	"time"

	"card_notification_service/internal/app" // For ReminderService interface

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ReminderScheduler triggers one reminder run per tick. The cadence rules'
// own interval checks make overlapping or duplicate ticks harmless, so no
// run-level locking is needed.
type ReminderScheduler struct {
	cronEngine *cron.Cron
	service    app.ReminderService
	logger     *logrus.Logger
	tickSpec   string
	runTimeout time.Duration
	loc        *time.Location
}

func NewReminderScheduler(
	service app.ReminderService,
	logger *logrus.Logger,
	tickSpec string, // e.g. "* * * * *" for per-minute slots
	runTimeout time.Duration,
	loc *time.Location,
) *ReminderScheduler {
	return &ReminderScheduler{
		cronEngine: cron.New(cron.WithLocation(loc)),
		service:    service,
		logger:     logger,
		tickSpec:   tickSpec,
		runTimeout: runTimeout,
		loc:        loc,
	}
}

func (s *ReminderScheduler) Start() {
	s.logger.Info("Starting reminder scheduler...")

	_, err := s.cronEngine.AddFunc(s.tickSpec, func() {
		now := time.Now().In(s.loc)
		ctx, cancel := context.WithTimeout(context.Background(), s.runTimeout)
		defer cancel()
		if err := s.service.RunForSlot(ctx, now); err != nil {
			s.logger.WithError(err).Error("Reminder run failed")
		}
	})
	if err != nil {
		s.logger.Fatalf("Could not add reminder tick cron job: %v", err)
	}

	s.cronEngine.Start()
	s.logger.Info("Reminder scheduler started.")
}

func (s *ReminderScheduler) Stop() {
	s.logger.Info("Stopping reminder scheduler...")
	ctx := s.cronEngine.Stop() // Stops scheduling new ticks, waits for running jobs.
	<-ctx.Done()
	s.logger.Info("Reminder scheduler gracefully stopped.")
}
