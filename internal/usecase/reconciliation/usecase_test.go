package reconciliation

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arabyads/influencer-service/internal/domain"
)

type fakeAssignmentRepo struct {
	unpaid  []*domain.AssignedInfluencer
	findErr error
}

func (r *fakeAssignmentRepo) Create(*domain.AssignedInfluencer) error          { return nil }
func (r *fakeAssignmentRepo) Update(*domain.AssignedInfluencer) error          { return nil }
func (r *fakeAssignmentRepo) GetByID(string) (*domain.AssignedInfluencer, error) {
	return nil, domain.ErrNotFound
}
func (r *fakeAssignmentRepo) List() ([]*domain.AssignedInfluencer, error) { return nil, nil }
func (r *fakeAssignmentRepo) ListByCampaignID(string) ([]*domain.AssignedInfluencer, error) {
	return nil, nil
}
func (r *fakeAssignmentRepo) ListByInfluencerID(string) ([]*domain.AssignedInfluencer, error) {
	return nil, nil
}
func (r *fakeAssignmentRepo) ListBySocialAccountID(string) ([]*domain.AssignedInfluencer, error) {
	return nil, nil
}
func (r *fakeAssignmentRepo) FindUnpaidBetween(start, end time.Time) ([]*domain.AssignedInfluencer, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var inWindow []*domain.AssignedInfluencer
	for _, assignment := range r.unpaid {
		if !assignment.Day.Before(start) && !assignment.Day.After(end) {
			inWindow = append(inWindow, assignment)
		}
	}
	return inWindow, nil
}
func (r *fakeAssignmentRepo) TotalSales(string, domain.HistoryDataType) (float64, error) {
	return 0, nil
}
func (r *fakeAssignmentRepo) SoftDelete(string) error { return nil }

type tripleKey string

func keyOf(influencerID string, cost float64, day time.Time) tripleKey {
	return tripleKey(fmt.Sprintf("%s|%v|%s", influencerID, cost, day.Format("2006-01-02")))
}

type fakeNotificationRepo struct {
	recorded  map[tripleKey]bool
	createErr map[string]error
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{
		recorded:  make(map[tripleKey]bool),
		createErr: make(map[string]error),
	}
}

func (r *fakeNotificationRepo) Exists(influencerID string, cost float64, day time.Time) (bool, error) {
	return r.recorded[keyOf(influencerID, cost, day)], nil
}

func (r *fakeNotificationRepo) Create(n *domain.InfluencerUnPaidNotification) error {
	if err := r.createErr[n.InfluencerID]; err != nil {
		return err
	}
	key := keyOf(n.InfluencerID, n.Cost, n.Day)
	if r.recorded[key] {
		return domain.ErrDuplicateNotification
	}
	r.recorded[key] = true
	return nil
}

func (r *fakeNotificationRepo) GetByID(string) (*domain.InfluencerUnPaidNotification, error) {
	return nil, domain.ErrNotFound
}
func (r *fakeNotificationRepo) List() ([]*domain.InfluencerUnPaidNotification, error) {
	return nil, nil
}
func (r *fakeNotificationRepo) SoftDelete(string) error { return nil }

type fakeUserRepo struct {
	financeEmails []string
}

func (r *fakeUserRepo) Create(*domain.User) error                 { return nil }
func (r *fakeUserRepo) Update(*domain.User) error                 { return nil }
func (r *fakeUserRepo) GetByID(string) (*domain.User, error)      { return nil, domain.ErrNotFound }
func (r *fakeUserRepo) GetByEmail(string) (*domain.User, error)   { return nil, domain.ErrNotFound }
func (r *fakeUserRepo) List() ([]*domain.User, error)             { return nil, nil }
func (r *fakeUserRepo) EmailExists(string, string) (bool, error)  { return false, nil }
func (r *fakeUserRepo) HasPermission(string, string) (bool, error) { return false, nil }
func (r *fakeUserRepo) EmailsWithPermission(code string) ([]string, error) {
	if code != domain.PermViewInfluencerPayment {
		return nil, nil
	}
	return r.financeEmails, nil
}
func (r *fakeUserRepo) ListPermissions() ([]*domain.Permission, error) { return nil, nil }
func (r *fakeUserRepo) SoftDelete(string) error                        { return nil }

type sentMail struct {
	subject string
	body    string
	from    string
	to      []string
}

type fakeMailer struct {
	sent    []sentMail
	sendErr error
}

func (m *fakeMailer) Send(subject, body, from string, to []string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sentMail{subject: subject, body: body, from: from, to: to})
	return nil
}

type nopMetrics struct{}

func (nopMetrics) AddUnpaidSelected(int)          {}
func (nopMetrics) AddNotificationsInserted(int)   {}
func (nopMetrics) AddNotificationsSkipped(int)    {}
func (nopMetrics) AddNotificationInsertErrors(int) {}
func (nopMetrics) RecordFinanceEmailSent(int)     {}

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func newTestUsecase(assignments *fakeAssignmentRepo, notifications *fakeNotificationRepo, users *fakeUserRepo, mailer *fakeMailer) *Usecase {
	uc := NewUsecase(assignments, notifications, users, mailer, nopMetrics{}, 5, time.UTC, "")
	uc.now = func() time.Time { return day("2026-08-27") }
	return uc
}

func TestWindowRange(t *testing.T) {
	uc := newTestUsecase(&fakeAssignmentRepo{}, newFakeNotificationRepo(), &fakeUserRepo{}, &fakeMailer{})

	start, end := uc.WindowRange()

	assert.Equal(t, day("2026-08-22"), start)
	assert.Equal(t, day("2026-09-01"), end)
}

func TestWindowRange_ZeroDays(t *testing.T) {
	uc := newTestUsecase(&fakeAssignmentRepo{}, newFakeNotificationRepo(), &fakeUserRepo{}, &fakeMailer{})
	uc.windowDays = 0

	start, end := uc.WindowRange()

	assert.Equal(t, day("2026-08-27"), start)
	assert.Equal(t, day("2026-08-27"), end)
}

func TestWindowRange_DerivesDateInConfiguredLocation(t *testing.T) {
	uc := NewUsecase(&fakeAssignmentRepo{}, newFakeNotificationRepo(), &fakeUserRepo{}, &fakeMailer{},
		nopMetrics{}, 5, time.FixedZone("UTC+10", 10*3600), "")
	// 09:00 on Aug 27 east of UTC is still Aug 26 in UTC. The window must
	// center on the local date, not slip back a day.
	uc.now = func() time.Time { return time.Date(2026, 8, 26, 23, 0, 0, 0, time.UTC) }

	start, end := uc.WindowRange()

	assert.Equal(t, day("2026-08-22"), start)
	assert.Equal(t, day("2026-09-01"), end)
}

func TestUnpaidAssignments_FiltersToWindow(t *testing.T) {
	assignments := &fakeAssignmentRepo{unpaid: []*domain.AssignedInfluencer{
		{ID: "a1", InfluencerID: "inf-1", InfluencerName: "Amira", Cost: 100, Day: day("2026-08-25")},
		{ID: "a2", InfluencerID: "inf-2", InfluencerName: "Basel", Cost: 200, Day: day("2026-09-10")},
	}}
	uc := newTestUsecase(assignments, newFakeNotificationRepo(), &fakeUserRepo{}, &fakeMailer{})

	unpaid, err := uc.UnpaidAssignments()

	require.NoError(t, err)
	require.Len(t, unpaid, 1)
	assert.Equal(t, "a1", unpaid[0].ID)
}

func TestSaveUnpaidNotifications_RepeatedRunsInsertOnce(t *testing.T) {
	assignments := &fakeAssignmentRepo{unpaid: []*domain.AssignedInfluencer{
		{ID: "a1", InfluencerID: "inf-1", InfluencerName: "Amira", Cost: 100, Day: day("2026-08-25")},
		{ID: "a2", InfluencerID: "inf-2", InfluencerName: "Basel", Cost: 250.5, Day: day("2026-08-29")},
	}}
	notifications := newFakeNotificationRepo()
	uc := newTestUsecase(assignments, notifications, &fakeUserRepo{}, &fakeMailer{})

	inserted, skipped, err := uc.SaveUnpaidNotifications()
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)
	assert.Equal(t, 0, skipped)

	inserted, skipped, err = uc.SaveUnpaidNotifications()
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
	assert.Equal(t, 2, skipped)
}

func TestSaveUnpaidNotifications_SameInfluencerDistinctTriples(t *testing.T) {
	// Same influencer and cost on different days are separate unpaid items.
	assignments := &fakeAssignmentRepo{unpaid: []*domain.AssignedInfluencer{
		{ID: "a1", InfluencerID: "inf-1", Cost: 100, Day: day("2026-08-25")},
		{ID: "a2", InfluencerID: "inf-1", Cost: 100, Day: day("2026-08-26")},
	}}
	notifications := newFakeNotificationRepo()
	uc := newTestUsecase(assignments, notifications, &fakeUserRepo{}, &fakeMailer{})

	inserted, skipped, err := uc.SaveUnpaidNotifications()

	require.NoError(t, err)
	assert.Equal(t, 2, inserted)
	assert.Equal(t, 0, skipped)
}

func TestSaveUnpaidNotifications_ConcurrentDuplicateCountsAsSkipped(t *testing.T) {
	assignments := &fakeAssignmentRepo{unpaid: []*domain.AssignedInfluencer{
		{ID: "a1", InfluencerID: "inf-1", Cost: 100, Day: day("2026-08-25")},
	}}
	notifications := newFakeNotificationRepo()
	notifications.createErr["inf-1"] = domain.ErrDuplicateNotification
	uc := newTestUsecase(assignments, notifications, &fakeUserRepo{}, &fakeMailer{})

	inserted, skipped, err := uc.SaveUnpaidNotifications()

	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
	assert.Equal(t, 1, skipped)
}

func TestSaveUnpaidNotifications_RowFailureDoesNotStopOthers(t *testing.T) {
	assignments := &fakeAssignmentRepo{unpaid: []*domain.AssignedInfluencer{
		{ID: "a1", InfluencerID: "inf-1", Cost: 100, Day: day("2026-08-25")},
		{ID: "a2", InfluencerID: "inf-2", Cost: 200, Day: day("2026-08-26")},
	}}
	notifications := newFakeNotificationRepo()
	notifications.createErr["inf-1"] = errors.New("connection reset")
	uc := newTestUsecase(assignments, notifications, &fakeUserRepo{}, &fakeMailer{})

	inserted, _, err := uc.SaveUnpaidNotifications()

	require.Error(t, err)
	assert.Equal(t, 1, inserted)
	assert.True(t, notifications.recorded[keyOf("inf-2", 200, day("2026-08-26"))])
}

func TestSaveUnpaidNotifications_SelectionFailurePropagates(t *testing.T) {
	assignments := &fakeAssignmentRepo{findErr: errors.New("db down")}
	uc := newTestUsecase(assignments, newFakeNotificationRepo(), &fakeUserRepo{}, &fakeMailer{})

	_, _, err := uc.SaveUnpaidNotifications()

	require.Error(t, err)
}

func TestDigestLine(t *testing.T) {
	line := DigestLine(&domain.AssignedInfluencer{
		InfluencerName: "Amira",
		Cost:           250.5,
		Day:            day("2026-08-25"),
	})
	assert.Equal(t, "Amira should be received 250.5 before 2026-08-25", line)

	line = DigestLine(&domain.AssignedInfluencer{
		InfluencerName: "Basel",
		Cost:           100,
		Day:            day("2026-08-29"),
	})
	assert.Equal(t, "Basel should be received 100 before 2026-08-29", line)
}

func TestMailFinance_SendsDigest(t *testing.T) {
	assignments := &fakeAssignmentRepo{unpaid: []*domain.AssignedInfluencer{
		{ID: "a1", InfluencerID: "inf-1", InfluencerName: "Amira", Cost: 100, Day: day("2026-08-25")},
		{ID: "a2", InfluencerID: "inf-2", InfluencerName: "Basel", Cost: 250.5, Day: day("2026-08-29")},
	}}
	users := &fakeUserRepo{financeEmails: []string{"finance@arabyads.com", "lead@arabyads.com"}}
	mailer := &fakeMailer{}
	uc := newTestUsecase(assignments, newFakeNotificationRepo(), users, mailer)

	err := uc.MailFinance()

	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	mail := mailer.sent[0]
	assert.Equal(t, "Influencers not paid", mail.subject)
	assert.Equal(t, "techops@arabyads.com", mail.from)
	assert.Equal(t, []string{"finance@arabyads.com", "lead@arabyads.com"}, mail.to)

	lines := strings.Split(mail.body, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Amira should be received 100 before 2026-08-25", lines[0])
	assert.Equal(t, "Basel should be received 250.5 before 2026-08-29", lines[1])
}

func TestMailFinance_NoUnpaidItems_NoSend(t *testing.T) {
	users := &fakeUserRepo{financeEmails: []string{"finance@arabyads.com"}}
	mailer := &fakeMailer{}
	uc := newTestUsecase(&fakeAssignmentRepo{}, newFakeNotificationRepo(), users, mailer)

	err := uc.MailFinance()

	require.NoError(t, err)
	assert.Empty(t, mailer.sent)
}

func TestMailFinance_NoRecipients_NoSend(t *testing.T) {
	assignments := &fakeAssignmentRepo{unpaid: []*domain.AssignedInfluencer{
		{ID: "a1", InfluencerID: "inf-1", InfluencerName: "Amira", Cost: 100, Day: day("2026-08-25")},
	}}
	mailer := &fakeMailer{}
	uc := newTestUsecase(assignments, newFakeNotificationRepo(), &fakeUserRepo{}, mailer)

	err := uc.MailFinance()

	require.NoError(t, err)
	assert.Empty(t, mailer.sent)
}

func TestMailFinance_TransportErrorPropagates(t *testing.T) {
	assignments := &fakeAssignmentRepo{unpaid: []*domain.AssignedInfluencer{
		{ID: "a1", InfluencerID: "inf-1", InfluencerName: "Amira", Cost: 100, Day: day("2026-08-25")},
	}}
	users := &fakeUserRepo{financeEmails: []string{"finance@arabyads.com"}}
	mailer := &fakeMailer{sendErr: errors.New("smtp: connection refused")}
	uc := newTestUsecase(assignments, newFakeNotificationRepo(), users, mailer)

	err := uc.MailFinance()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMailDeliveryFailed)
}
