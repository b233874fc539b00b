package reconciliation

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arabyads/influencer-service/internal/domain"
)

// Subject and sender of the finance digest.
const (
	MailSubject   = "Influencers not paid"
	DefaultSender = "techops@arabyads.com"
)

// Mailer delivers the digest. Implemented by the SMTP mailer.
type Mailer interface {
	Send(subject, body, from string, to []string) error
}

// MetricsRecorder receives per-run counters. The prometheus metrics struct
// implements it; tests substitute a no-op.
type MetricsRecorder interface {
	AddUnpaidSelected(n int)
	AddNotificationsInserted(n int)
	AddNotificationsSkipped(n int)
	AddNotificationInsertErrors(n int)
	RecordFinanceEmailSent(recipients int)
}

// Usecase runs the unpaid-influencer reconciliation: it selects assignments
// due within a sliding window around today that have no settled payment,
// records a one-time notification per unpaid item, and mails a digest to
// every user holding the view_influencerpayment permission.
type Usecase struct {
	assignmentRepo   domain.AssignmentRepository
	notificationRepo domain.NotificationRepository
	userRepo         domain.UserRepository
	mailer           Mailer
	metrics          MetricsRecorder
	windowDays       int
	location         *time.Location
	sender           string

	// now is swappable so tests can pin the window.
	now func() time.Time
}

func NewUsecase(
	assignmentRepo domain.AssignmentRepository,
	notificationRepo domain.NotificationRepository,
	userRepo domain.UserRepository,
	mailer Mailer,
	metrics MetricsRecorder,
	windowDays int,
	location *time.Location,
	sender string,
) *Usecase {
	if location == nil {
		location = time.Local
	}
	if sender == "" {
		sender = DefaultSender
	}
	return &Usecase{
		assignmentRepo:   assignmentRepo,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		mailer:           mailer,
		metrics:          metrics,
		windowDays:       windowDays,
		location:         location,
		sender:           sender,
		now:              time.Now,
	}
}

// WindowRange is [today-N, today+N] in whole dates, inclusive on both ends.
// "Today" is the calendar date in the scheduler's location, so a 09:00 run
// east of UTC does not slip to yesterday. The bounds themselves are UTC
// midnights, matching how assignment days are stored.
func (uc *Usecase) WindowRange() (start, end time.Time) {
	now := uc.now().In(uc.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today.AddDate(0, 0, -uc.windowDays), today.AddDate(0, 0, uc.windowDays)
}

// UnpaidAssignments selects assignments due inside the window that have no
// payment row or one still marked UNPAID.
func (uc *Usecase) UnpaidAssignments() ([]*domain.AssignedInfluencer, error) {
	start, end := uc.WindowRange()
	unpaid, err := uc.assignmentRepo.FindUnpaidBetween(start, end)
	if err != nil {
		return nil, err
	}
	uc.metrics.AddUnpaidSelected(len(unpaid))
	return unpaid, nil
}

// SaveUnpaidNotifications records one notification per unpaid
// (influencer, cost, day) triple. Triples already recorded are skipped, so
// repeated runs over an unchanged window insert nothing. A failing row is
// logged and skipped; the remaining rows still get their notifications.
func (uc *Usecase) SaveUnpaidNotifications() (inserted, skipped int, err error) {
	unpaid, err := uc.UnpaidAssignments()
	if err != nil {
		return 0, 0, err
	}

	var failed int
	for _, assignment := range unpaid {
		exists, err := uc.notificationRepo.Exists(assignment.InfluencerID, assignment.Cost, assignment.Day)
		if err != nil {
			failed++
			slog.Error("unpaid notification lookup failed",
				"influencer_id", assignment.InfluencerID,
				"day", assignment.Day.Format("2006-01-02"),
				"error", err.Error())
			continue
		}
		if exists {
			skipped++
			continue
		}

		notification := &domain.InfluencerUnPaidNotification{
			ID:           uuid.NewString(),
			InfluencerID: assignment.InfluencerID,
			Cost:         assignment.Cost,
			Day:          assignment.Day,
		}
		switch err := uc.notificationRepo.Create(notification); {
		case err == nil:
			inserted++
		case errors.Is(err, domain.ErrDuplicateNotification):
			// A concurrent run recorded the triple between the lookup and
			// the insert.
			skipped++
		default:
			failed++
			slog.Error("unpaid notification insert failed",
				"influencer_id", assignment.InfluencerID,
				"day", assignment.Day.Format("2006-01-02"),
				"error", err.Error())
		}
	}

	uc.metrics.AddNotificationsInserted(inserted)
	uc.metrics.AddNotificationsSkipped(skipped)
	uc.metrics.AddNotificationInsertErrors(failed)

	if failed > 0 {
		return inserted, skipped, fmt.Errorf("%d of %d unpaid notifications failed to persist", failed, len(unpaid))
	}
	return inserted, skipped, nil
}

// FinanceRecipients resolves the deduplicated emails of users holding the
// payment-viewing permission directly or through a group.
func (uc *Usecase) FinanceRecipients() ([]string, error) {
	return uc.userRepo.EmailsWithPermission(domain.PermViewInfluencerPayment)
}

// DigestLine renders one unpaid item for the finance email.
func DigestLine(assignment *domain.AssignedInfluencer) string {
	return fmt.Sprintf("%s should be received %s before %s",
		assignment.InfluencerName,
		strconv.FormatFloat(assignment.Cost, 'f', -1, 64),
		assignment.Day.Format("2006-01-02"))
}

// MailFinance mails the digest of currently unpaid assignments. Nothing is
// sent when the window holds no unpaid items or nobody holds the permission.
// A transport failure propagates so the run is marked failed and the cron
// retries tomorrow.
func (uc *Usecase) MailFinance() error {
	unpaid, err := uc.UnpaidAssignments()
	if err != nil {
		return err
	}
	if len(unpaid) == 0 {
		slog.Info("no unpaid assignments in window, skipping finance mail")
		return nil
	}

	recipients, err := uc.FinanceRecipients()
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		slog.Warn("no users hold the payment permission, skipping finance mail")
		return nil
	}

	lines := make([]string, len(unpaid))
	for i, assignment := range unpaid {
		lines[i] = DigestLine(assignment)
	}
	body := strings.Join(lines, "\n")

	if err := uc.mailer.Send(MailSubject, body, uc.sender, recipients); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMailDeliveryFailed, err)
	}
	uc.metrics.RecordFinanceEmailSent(len(recipients))
	slog.Info("finance digest sent", "recipients", len(recipients), "unpaid_items", len(unpaid))
	return nil
}
