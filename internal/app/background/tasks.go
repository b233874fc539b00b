package background

import (
	"github.com/arabyads/influencer-service/internal/scheduler"
	"github.com/arabyads/influencer-service/internal/usecase/reconciliation"
)

// Job names as they appear in logs and metrics labels.
const (
	JobPersistNotifications = "persist-unpaid-notifications"
	JobMailFinance          = "mail-finance-unpaid"
)

// RegisterReconciliationJobs schedules the two daily reconciliation runs on
// the same cron spec. They are registered separately so a failure in one
// never blocks the other.
func RegisterReconciliationJobs(s *scheduler.Scheduler, cronSpec string, reconciler *reconciliation.Usecase) error {
	if err := s.Register(JobPersistNotifications, cronSpec, func() error {
		_, _, err := reconciler.SaveUnpaidNotifications()
		return err
	}); err != nil {
		return err
	}
	return s.Register(JobMailFinance, cronSpec, reconciler.MailFinance)
}
