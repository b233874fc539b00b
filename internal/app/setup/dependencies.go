package setup

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/arabyads/influencer-service/internal/config"
	"github.com/arabyads/influencer-service/internal/domain"
	"github.com/arabyads/influencer-service/internal/infrastructure/audit"
	"github.com/arabyads/influencer-service/internal/infrastructure/kafka"
	"github.com/arabyads/influencer-service/internal/infrastructure/mailer"
	"github.com/arabyads/influencer-service/internal/infrastructure/metrics"
	"github.com/arabyads/influencer-service/internal/infrastructure/migrate"
	"github.com/arabyads/influencer-service/internal/infrastructure/postgres"
	"github.com/arabyads/influencer-service/internal/infrastructure/postgres/repository"
	"github.com/arabyads/influencer-service/internal/infrastructure/security"
	"github.com/arabyads/influencer-service/internal/usecase"
)

type Dependencies struct {
	Config         *config.AppConfig
	DB             *gorm.DB
	Repositories   *Repositories
	AuditEmitter   *usecase.AuditEmitter
	AuditPublisher *kafka.AuditPublisher
	Metrics        *metrics.ReconciliationMetrics
	Tokens         *security.TokenManager
	Mailer         *mailer.SMTPMailer
}

type Repositories struct {
	ClientRepo         domain.ClientRepository
	OfferRepo          domain.OfferRepository
	CampaignRepo       domain.CampaignRepository
	AssignmentRepo     domain.AssignmentRepository
	HistoryRepo        domain.HistoryRepository
	PaymentRepo        domain.PaymentRepository
	NotificationRepo   domain.NotificationRepository
	InfluencerRepo     domain.InfluencerRepository
	SocialAccountRepo  domain.SocialAccountRepository
	CategoryRepo       domain.CategoryRepository
	SocialPlatformRepo domain.SocialPlatformRepository
	BankRepo           domain.BankRepository
	CouponRepo         domain.CouponRepository
	UserRepo           domain.UserRepository
	AuditLogRepo       domain.AuditLogRepository
}

func InitializeDependencies() (*Dependencies, error) {
	cfg := config.MustLoad()

	db := postgres.MustInitDB(cfg)
	if err := migrate.RunMigrations(db, cfg.InfluencerDB.MigrationPath); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	repos := &Repositories{
		ClientRepo:         repository.NewDefaultClientRepository(db),
		OfferRepo:          repository.NewDefaultOfferRepository(db),
		CampaignRepo:       repository.NewDefaultCampaignRepository(db),
		AssignmentRepo:     repository.NewDefaultAssignmentRepository(db),
		HistoryRepo:        repository.NewDefaultHistoryRepository(db),
		PaymentRepo:        repository.NewDefaultPaymentRepository(db),
		NotificationRepo:   repository.NewDefaultNotificationRepository(db),
		InfluencerRepo:     repository.NewDefaultInfluencerRepository(db),
		SocialAccountRepo:  repository.NewDefaultSocialAccountRepository(db),
		CategoryRepo:       repository.NewDefaultCategoryRepository(db),
		SocialPlatformRepo: repository.NewDefaultSocialPlatformRepository(db),
		BankRepo:           repository.NewDefaultBankRepository(db),
		CouponRepo:         repository.NewDefaultCouponRepository(db),
		UserRepo:           repository.NewDefaultUserRepository(db),
		AuditLogRepo:       repository.NewDefaultAuditLogRepository(db),
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	auditPublisher := kafka.NewAuditPublisher(brokers, cfg.KafkaService.Topic)
	emitter := usecase.NewAuditEmitter(audit.NewPGSink(db), auditPublisher)

	return &Dependencies{
		Config:         cfg,
		DB:             db,
		Repositories:   repos,
		AuditEmitter:   emitter,
		AuditPublisher: auditPublisher,
		Metrics:        metrics.NewReconciliationMetrics(),
		Tokens:         security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTTL),
		Mailer:         mailer.NewSMTPMailer(cfg.SMTP),
	}, nil
}
