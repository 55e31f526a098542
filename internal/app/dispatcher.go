// internal/app/dispatcher.go
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"card_notification_service/internal/domain/notification"
	"card_notification_service/internal/domain/push"

	"github.com/sirupsen/logrus"
)

// Dispatcher sends a composed reminder to all of a user's tokens as one
// batched gateway call and sorts the per-token outcomes into the recorder.
type Dispatcher struct {
	gateway  push.Gateway
	recorder *RunRecorder
	logger   *logrus.Logger
}

func NewDispatcher(gateway push.Gateway, recorder *RunRecorder, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{gateway: gateway, recorder: recorder, logger: logger}
}

// Send performs exactly one multicast for the (subject, kind) pair. Successes
// become pending history entries; permanent token failures are queued for
// cleanup; transient failures are dropped and the cadence rule retries the
// obligation on the next run.
func (d *Dispatcher) Send(
	ctx context.Context,
	userID, subjectID int64,
	kind notification.Kind,
	msg ComposedMessage,
	tokens []string,
	sentAt time.Time,
) error {
	results, err := d.gateway.SendMulticast(ctx, push.Message{
		Title:       msg.Title,
		Body:        msg.Body,
		Route:       msg.Route,
		Tokens:      tokens,
		CollapseKey: CollapseKey(kind, subjectID),
	})
	if err != nil {
		return fmt.Errorf("multicast for %s/%d: %w", kind, subjectID, err)
	}
	if len(results) != len(tokens) {
		return fmt.Errorf("multicast for %s/%d: gateway returned %d results for %d tokens", kind, subjectID, len(results), len(tokens))
	}

	for i, res := range results {
		switch {
		case res.Success:
			d.recorder.RecordSent(&notification.HistoryEntry{
				UserID:    userID,
				SubjectID: subjectID,
				Kind:      kind,
				SentAt:    sentAt,
			})
		case res.PermanentFailure():
			d.recorder.RecordInvalidToken(tokens[i])
			d.logger.WithFields(logrus.Fields{
				"user_id":    userID,
				"subject_id": subjectID,
				"kind":       kind,
				"error_code": res.ErrorCode,
			}).Info("token permanently invalid, queued for cleanup")
		default:
			d.logger.WithFields(logrus.Fields{
				"user_id":    userID,
				"subject_id": subjectID,
				"kind":       kind,
				"error_code": res.ErrorCode,
			}).Debug("transient delivery failure, will retry next run")
		}
	}
	return nil
}

// CollapseKey derives the on-device collapse identifier so a re-delivered
// reminder for the same obligation replaces the previous notification instead
// of stacking.
func CollapseKey(kind notification.Kind, subjectID int64) string {
	return fmt.Sprintf("%s_%d", strings.ToLower(string(kind)), subjectID)
}
