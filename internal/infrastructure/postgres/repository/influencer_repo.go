package repository

import (
	"gorm.io/gorm"

	"github.com/arabyads/influencer-service/internal/domain"
	"github.com/arabyads/influencer-service/internal/infrastructure/postgres/mappers"
	"github.com/arabyads/influencer-service/internal/infrastructure/postgres/models"
)

type DefaultInfluencerRepository struct {
	db *gorm.DB
}

func NewDefaultInfluencerRepository(db *gorm.DB) *DefaultInfluencerRepository {
	return &DefaultInfluencerRepository{db: db}
}

func (r *DefaultInfluencerRepository) Create(influencer *domain.Influencer) error {
	return r.db.Create(mappers.ToGORMInfluencer(influencer)).Error
}

func (r *DefaultInfluencerRepository) Update(influencer *domain.Influencer) error {
	model := mappers.ToGORMInfluencer(influencer)
	return r.db.Model(&models.InfluencerModel{ID: influencer.ID}).Updates(map[string]any{
		"name":                influencer.Name,
		"gender":              influencer.Gender,
		"category_id":         model.CategoryID,
		"phone":               influencer.Phone,
		"email":               influencer.Email,
		"bank_id":             model.BankID,
		"iban":                influencer.IBAN,
		"account_holder_name": influencer.AccountHolderName,
		"city":                influencer.City,
		"branch":              influencer.Branch,
	}).Error
}

func (r *DefaultInfluencerRepository) GetByID(id string) (*domain.Influencer, error) {
	var model models.InfluencerModel
	if err := r.db.Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translateErr(err)
	}
	return mappers.ToDomainInfluencer(&model), nil
}

func (r *DefaultInfluencerRepository) List() ([]*domain.Influencer, error) {
	var influencerModels []models.InfluencerModel
	if err := r.db.Order("name").Find(&influencerModels).Error; err != nil {
		return nil, err
	}
	influencers := make([]*domain.Influencer, len(influencerModels))
	for i, model := range influencerModels {
		influencers[i] = mappers.ToDomainInfluencer(&model)
	}
	return influencers, nil
}

func (r *DefaultInfluencerRepository) IBANExists(iban, excludeID string) (bool, error) {
	query := r.db.Model(&models.InfluencerModel{}).Where("iban = ?", iban)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DefaultInfluencerRepository) SoftDelete(id string) error {
	result := r.db.Delete(&models.InfluencerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type DefaultSocialAccountRepository struct {
	db *gorm.DB
}

func NewDefaultSocialAccountRepository(db *gorm.DB) *DefaultSocialAccountRepository {
	return &DefaultSocialAccountRepository{db: db}
}

func (r *DefaultSocialAccountRepository) Create(account *domain.SocialAccount) error {
	return r.db.Create(mappers.ToGORMSocialAccount(account)).Error
}

func (r *DefaultSocialAccountRepository) Update(account *domain.SocialAccount) error {
	return r.db.Model(&models.SocialAccountModel{ID: account.ID}).Updates(map[string]any{
		"username":      account.Username,
		"platform_id":   account.PlatformID,
		"influencer_id": account.InfluencerID,
		"cost":          account.Cost,
	}).Error
}

func (r *DefaultSocialAccountRepository) GetByID(id string) (*domain.SocialAccount, error) {
	var model models.SocialAccountModel
	if err := r.db.Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translateErr(err)
	}
	return mappers.ToDomainSocialAccount(&model), nil
}

func (r *DefaultSocialAccountRepository) List() ([]*domain.SocialAccount, error) {
	var accountModels []models.SocialAccountModel
	if err := r.db.Order("username").Find(&accountModels).Error; err != nil {
		return nil, err
	}
	accounts := make([]*domain.SocialAccount, len(accountModels))
	for i, model := range accountModels {
		accounts[i] = mappers.ToDomainSocialAccount(&model)
	}
	return accounts, nil
}

func (r *DefaultSocialAccountRepository) ListByInfluencerID(influencerID string) ([]*domain.SocialAccount, error) {
	var accountModels []models.SocialAccountModel
	if err := r.db.Where("influencer_id = ?", influencerID).Order("username").Find(&accountModels).Error; err != nil {
		return nil, err
	}
	accounts := make([]*domain.SocialAccount, len(accountModels))
	for i, model := range accountModels {
		accounts[i] = mappers.ToDomainSocialAccount(&model)
	}
	return accounts, nil
}

func (r *DefaultSocialAccountRepository) SoftDelete(id string) error {
	result := r.db.Delete(&models.SocialAccountModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
