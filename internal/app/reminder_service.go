// internal/app/reminder_service.go
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"card_notification_service/internal/domain/card"
	"card_notification_service/internal/domain/device"
	"card_notification_service/internal/domain/notification"
	"card_notification_service/internal/domain/payment"
	"card_notification_service/internal/domain/push"
	"card_notification_service/internal/domain/user"
	idb "card_notification_service/internal/infra/database"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const flushTimeout = 15 * time.Second

// ReminderService drives one full reminder run for a time slot.
type ReminderService interface {
	// RunForSlot processes every user whose preferred send time matches now's
	// "HH:MM" slot, then persists the accumulated history and token cleanup
	// in two bulk calls. Per-user failures are isolated; the run succeeds
	// unless the user listing itself fails.
	RunForSlot(ctx context.Context, now time.Time) error
}

// ReminderServiceImpl implements ReminderService.
type ReminderServiceImpl struct {
	userRepo    user.Repository
	cardRepo    card.Repository
	paymentRepo payment.Repository
	deviceRepo  device.Repository
	notifRepo   notification.Repository
	gateway     push.Gateway
	logger      *logrus.Logger
	loc         *time.Location
	userWorkers int
}

func NewReminderService(
	ur user.Repository,
	cr card.Repository,
	pr payment.Repository,
	dr device.Repository,
	nr notification.Repository,
	gw push.Gateway,
	logger *logrus.Logger,
	loc *time.Location,
	userWorkers int,
) *ReminderServiceImpl {
	if userWorkers < 1 {
		userWorkers = 1
	}
	return &ReminderServiceImpl{
		userRepo:    ur,
		cardRepo:    cr,
		paymentRepo: pr,
		deviceRepo:  dr,
		notifRepo:   nr,
		gateway:     gw,
		logger:      logger,
		loc:         loc,
		userWorkers: userWorkers,
	}
}

func (s *ReminderServiceImpl) RunForSlot(ctx context.Context, now time.Time) error {
	slot := now.In(s.loc).Format("15:04")
	log := s.logger.WithFields(logrus.Fields{
		"run_id": uuid.NewString(),
		"slot":   slot,
	})

	userIDs, err := s.userRepo.ListIDsDueAt(ctx, slot)
	if err != nil {
		return fmt.Errorf("listing users for slot %s: %w", slot, err)
	}
	if len(userIDs) == 0 {
		log.Debug("no users scheduled for this slot")
		return nil
	}
	log.WithField("users", len(userIDs)).Info("reminder run started")

	recorder := NewRunRecorder()
	dispatcher := NewDispatcher(s.gateway, recorder, s.logger)

	sem := make(chan struct{}, s.userWorkers)
	var wg sync.WaitGroup
	for _, id := range userIDs {
		if ctx.Err() != nil {
			log.Warn("run cancelled, flushing what has accumulated")
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(userID int64) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := s.processUser(ctx, dispatcher, userID, now); err != nil {
				log.WithField("user_id", userID).WithError(err).Error("user processing failed, continuing run")
			}
		}(id)
	}
	wg.Wait()

	s.flush(recorder, log)
	log.Info("reminder run finished")
	return nil
}

// flush performs the run's two bulk persistence calls. It uses a fresh
// timeout context so that accumulated state from completed users is still
// written when the run context was cancelled mid-flight.
func (s *ReminderServiceImpl) flush(recorder *RunRecorder, log *logrus.Entry) {
	history, invalidTokens := recorder.Drain()

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	if len(history) > 0 {
		if err := s.notifRepo.BulkInsertHistory(ctx, history); err != nil {
			log.WithError(err).Error("failed to bulk insert notification history")
		} else {
			log.WithField("entries", len(history)).Info("notification history persisted")
		}
	}
	if len(invalidTokens) > 0 {
		if err := s.deviceRepo.BulkDeleteTokens(ctx, invalidTokens); err != nil {
			log.WithError(err).Error("failed to bulk delete invalid tokens")
		} else {
			log.WithField("tokens", len(invalidTokens)).Info("invalid device tokens removed")
		}
	}
}

// processUser loads the user's data with fan-out/join reads, then evaluates
// every unpaid payment and every card without an unpaid payment.
func (s *ReminderServiceImpl) processUser(ctx context.Context, d *Dispatcher, userID int64, now time.Time) error {
	var (
		profile  *user.Profile
		cards    []*card.Card
		payments []*payment.Payment
		tokens   []string

		profileErr, cardsErr, paymentsErr, tokensErr error
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		profile, profileErr = s.userRepo.GetProfile(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		cards, cardsErr = s.cardRepo.ListActiveByUser(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		payments, paymentsErr = s.paymentRepo.ListUnpaidByUser(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		tokens, tokensErr = s.deviceRepo.ListTokensByUser(ctx, userID)
	}()
	wg.Wait()

	if profileErr != nil {
		if errors.Is(profileErr, idb.ErrProfileNotFound) {
			s.logger.WithField("user_id", userID).Debug("no notification profile, skipping user")
			return nil
		}
		return fmt.Errorf("loading profile: %w", profileErr)
	}
	if tokensErr != nil {
		return fmt.Errorf("loading device tokens: %w", tokensErr)
	}
	if len(tokens) == 0 {
		s.logger.WithField("user_id", userID).Debug("no registered devices, skipping user")
		return nil
	}
	if cardsErr != nil {
		return fmt.Errorf("loading cards: %w", cardsErr)
	}
	if paymentsErr != nil {
		return fmt.Errorf("loading payments: %w", paymentsErr)
	}
	if !profile.Enabled {
		return nil
	}

	cardsWithUnpaid := make(map[int64]bool, len(payments))
	for _, p := range payments {
		cardsWithUnpaid[p.CardID] = true
	}

	for _, p := range payments {
		s.evaluatePayment(ctx, d, profile, p, tokens, now)
		s.evaluatePartial(ctx, d, profile, p, tokens, now)
	}
	for _, c := range cards {
		// An unpaid payment on the card means the due/overdue reminder
		// already covers the same underlying bill.
		if cardsWithUnpaid[c.ID] {
			continue
		}
		s.evaluateBilling(ctx, d, profile, c, tokens, now)
	}
	return nil
}

// evaluatePayment runs the due/overdue branch for one payment. The sign of
// the day offset selects exactly one of the two kinds.
func (s *ReminderServiceImpl) evaluatePayment(ctx context.Context, d *Dispatcher, profile *user.Profile, p *payment.Payment, tokens []string, now time.Time) {
	offset := notification.CivilDaysBetween(now, p.DueDate, s.loc)
	ob := notification.Obligation{
		Kind:      notification.ClassifyPayment(offset).PaymentKind(),
		SubjectID: p.ID,
		DayOffset: offset,
		Amount:    p.Remaining(),
	}
	s.sendIfDue(ctx, d, profile, ob, p.CardLast4, p.AutoDebit, tokens, now)
}

// evaluatePartial runs the partial-payment branch: a balance that has been
// partially paid down, alerted weekly while it stays at or above the user's
// threshold.
func (s *ReminderServiceImpl) evaluatePartial(ctx context.Context, d *Dispatcher, profile *user.Profile, p *payment.Payment, tokens []string, now time.Time) {
	if !p.PartiallyPaid() {
		return
	}
	if p.Remaining().LessThan(profile.AlertThreshold) {
		return
	}
	ob := notification.Obligation{
		Kind:      notification.KindPartial,
		SubjectID: p.ID,
		Amount:    p.Remaining(),
	}
	s.sendIfDue(ctx, d, profile, ob, p.CardLast4, false, tokens, now)
}

// evaluateBilling runs the billing branch for a card with no unpaid payment.
func (s *ReminderServiceImpl) evaluateBilling(ctx context.Context, d *Dispatcher, profile *user.Profile, c *card.Card, tokens []string, now time.Time) {
	ob := notification.Obligation{
		Kind:      notification.KindBilling,
		SubjectID: c.ID,
		DayOffset: notification.BillingDayOffset(now, c.BillingDay, s.loc),
	}
	s.sendIfDue(ctx, d, profile, ob, c.Last4, false, tokens, now)
}

// sendIfDue applies the cadence decision to one obligation and, when it
// fires, composes and dispatches the reminder.
func (s *ReminderServiceImpl) sendIfDue(ctx context.Context, d *Dispatcher, profile *user.Profile, ob notification.Obligation, cardLast4 string, autoDebit bool, tokens []string, now time.Time) {
	obLog := s.logger.WithFields(logrus.Fields{
		"user_id":    profile.UserID,
		"subject_id": ob.SubjectID,
		"kind":       ob.Kind,
	})

	lastSent, err := s.lastSentAt(ctx, profile.UserID, ob.SubjectID, ob.Kind)
	if err != nil {
		obLog.WithError(err).Error("history lookup failed, skipping obligation")
		return
	}
	if !notification.Decide(ob.Kind, ob.DayOffset, lastSent, now, s.loc) {
		return
	}

	msg := Compose(ob.Kind, ComposeParams{
		Language:  profile.Language,
		Currency:  profile.Currency,
		CardLast4: cardLast4,
		SubjectID: ob.SubjectID,
		DayOffset: ob.DayOffset,
		Amount:    ob.Amount,
		AutoDebit: autoDebit,
	})
	if err := d.Send(ctx, profile.UserID, ob.SubjectID, ob.Kind, msg, tokens, now); err != nil {
		obLog.WithError(err).Error("delivery failed, skipping obligation")
	}
}

func (s *ReminderServiceImpl) lastSentAt(ctx context.Context, userID, subjectID int64, kind notification.Kind) (*time.Time, error) {
	ts, err := s.notifRepo.LastSentAt(ctx, userID, subjectID, kind)
	if err != nil {
		if errors.Is(err, idb.ErrNoHistory) {
			return nil, nil
		}
		return nil, err
	}
	return ts, nil
}
