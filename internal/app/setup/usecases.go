package setup

import (
	"log/slog"
	"time"

	"github.com/arabyads/influencer-service/internal/usecase"
	"github.com/arabyads/influencer-service/internal/usecase/cascade"
	"github.com/arabyads/influencer-service/internal/usecase/reconciliation"
)

type UseCases struct {
	ClientUsecase         usecase.ClientUsecase
	OfferUsecase          usecase.OfferUsecase
	CampaignUsecase       usecase.CampaignUsecase
	AssignmentUsecase     usecase.AssignmentUsecase
	HistoryUsecase        usecase.HistoryUsecase
	PaymentUsecase        usecase.PaymentUsecase
	NotificationUsecase   usecase.NotificationUsecase
	InfluencerUsecase     usecase.InfluencerUsecase
	SocialAccountUsecase  usecase.SocialAccountUsecase
	CategoryUsecase       usecase.CategoryUsecase
	SocialPlatformUsecase usecase.SocialPlatformUsecase
	BankUsecase           usecase.BankUsecase
	CouponUsecase         usecase.CouponUsecase
	UserUsecase           usecase.UserUsecase
	AuditLogUsecase       usecase.AuditLogUsecase
	CascadeEngine         *cascade.Engine
	Reconciler            *reconciliation.Usecase
}

func InitializeUseCases(deps *Dependencies) *UseCases {
	repos := deps.Repositories
	emitter := deps.AuditEmitter

	cascadeEngine := cascade.NewDefaultEngine(cascade.Repositories{
		Clients:        repos.ClientRepo,
		Offers:         repos.OfferRepo,
		Campaigns:      repos.CampaignRepo,
		Assignments:    repos.AssignmentRepo,
		Histories:      repos.HistoryRepo,
		Payments:       repos.PaymentRepo,
		Notifications:  repos.NotificationRepo,
		Influencers:    repos.InfluencerRepo,
		SocialAccounts: repos.SocialAccountRepo,
		Categories:     repos.CategoryRepo,
		Platforms:      repos.SocialPlatformRepo,
		Banks:          repos.BankRepo,
		Coupons:        repos.CouponRepo,
		Users:          repos.UserRepo,
	}, emitter)

	// The window date must follow the same clock the cron fires on.
	location, err := time.LoadLocation(deps.Config.Scheduler.Timezone)
	if err != nil {
		slog.Warn("invalid scheduler timezone, falling back to host local time",
			"timezone", deps.Config.Scheduler.Timezone)
		location = time.Local
	}

	reconciler := reconciliation.NewUsecase(
		repos.AssignmentRepo,
		repos.NotificationRepo,
		repos.UserRepo,
		deps.Mailer,
		deps.Metrics,
		deps.Config.Scheduler.WindowDays,
		location,
		deps.Config.SMTP.Sender,
	)

	return &UseCases{
		ClientUsecase:         usecase.NewDefaultClientUsecase(repos.ClientRepo, repos.UserRepo, emitter),
		OfferUsecase:          usecase.NewDefaultOfferUsecase(repos.OfferRepo, repos.ClientRepo, repos.CategoryRepo, emitter),
		CampaignUsecase:       usecase.NewDefaultCampaignUsecase(repos.CampaignRepo, repos.OfferRepo, repos.UserRepo, emitter),
		AssignmentUsecase:     usecase.NewDefaultAssignmentUsecase(repos.AssignmentRepo, repos.SocialAccountRepo, repos.InfluencerRepo, repos.CampaignRepo, repos.CouponRepo, emitter),
		HistoryUsecase:        usecase.NewDefaultHistoryUsecase(repos.HistoryRepo, repos.AssignmentRepo, emitter),
		PaymentUsecase:        usecase.NewDefaultPaymentUsecase(repos.PaymentRepo, repos.AssignmentRepo, emitter),
		NotificationUsecase:   usecase.NewDefaultNotificationUsecase(repos.NotificationRepo),
		InfluencerUsecase:     usecase.NewDefaultInfluencerUsecase(repos.InfluencerRepo, repos.CategoryRepo, repos.BankRepo, emitter),
		SocialAccountUsecase:  usecase.NewDefaultSocialAccountUsecase(repos.SocialAccountRepo, repos.SocialPlatformRepo, repos.InfluencerRepo, emitter),
		CategoryUsecase:       usecase.NewDefaultCategoryUsecase(repos.CategoryRepo, emitter),
		SocialPlatformUsecase: usecase.NewDefaultSocialPlatformUsecase(repos.SocialPlatformRepo, emitter),
		BankUsecase:           usecase.NewDefaultBankUsecase(repos.BankRepo, emitter),
		CouponUsecase:         usecase.NewDefaultCouponUsecase(repos.CouponRepo, emitter),
		UserUsecase:           usecase.NewDefaultUserUsecase(repos.UserRepo, deps.Tokens, emitter),
		AuditLogUsecase:       usecase.NewDefaultAuditLogUsecase(repos.AuditLogRepo),
		CascadeEngine:         cascadeEngine,
		Reconciler:            reconciler,
	}
}
