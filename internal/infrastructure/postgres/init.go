package postgres

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/arabyads/influencer-service/internal/config"
	"github.com/arabyads/influencer-service/internal/infrastructure/postgres/models"
)

func MustInitDB(cfg *config.AppConfig) *gorm.DB {
	dsn := cfg.InfluencerDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.PermissionModel{},
		&models.GroupModel{},
		&models.UserModel{},
		&models.CategoryModel{},
		&models.SocialPlatformModel{},
		&models.BankModel{},
		&models.CouponModel{},
		&models.InfluencerModel{},
		&models.SocialAccountModel{},
		&models.ClientModel{},
		&models.OfferModel{},
		&models.CampaignModel{},
		&models.AssignedInfluencerModel{},
		&models.InfluencerHistoryModel{},
		&models.InfluencerPaymentModel{},
		&models.InfluencerUnPaidNotificationModel{},
		&models.AuditEntryModel{},
	)

	return db
}
