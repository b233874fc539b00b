package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/arabyads/influencer-service/internal/domain"
	"github.com/arabyads/influencer-service/internal/infrastructure/postgres/mappers"
	"github.com/arabyads/influencer-service/internal/infrastructure/postgres/models"
)

func translateErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

type DefaultClientRepository struct {
	db *gorm.DB
}

func NewDefaultClientRepository(db *gorm.DB) *DefaultClientRepository {
	return &DefaultClientRepository{db: db}
}

func (r *DefaultClientRepository) Create(client *domain.Client) error {
	return r.db.Create(mappers.ToGORMClient(client)).Error
}

func (r *DefaultClientRepository) Update(client *domain.Client) error {
	return r.db.Model(&models.ClientModel{ID: client.ID}).Updates(map[string]any{
		"name":               client.Name,
		"email":              client.Email,
		"account_manager_id": client.AccountManagerID,
		"phone":              client.Phone,
	}).Error
}

func (r *DefaultClientRepository) GetByID(id string) (*domain.Client, error) {
	var model models.ClientModel
	if err := r.db.Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translateErr(err)
	}
	return mappers.ToDomainClient(&model), nil
}

func (r *DefaultClientRepository) List(scope domain.ClientScope) ([]*domain.Client, error) {
	query := r.db.Model(&models.ClientModel{}).Order("name")
	if !scope.Staff {
		query = query.Where("account_manager_id = ?", scope.UserID)
	}
	var clientModels []models.ClientModel
	if err := query.Find(&clientModels).Error; err != nil {
		return nil, err
	}
	clients := make([]*domain.Client, len(clientModels))
	for i, model := range clientModels {
		clients[i] = mappers.ToDomainClient(&model)
	}
	return clients, nil
}

func (r *DefaultClientRepository) SoftDelete(id string) error {
	result := r.db.Delete(&models.ClientModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type DefaultOfferRepository struct {
	db *gorm.DB
}

func NewDefaultOfferRepository(db *gorm.DB) *DefaultOfferRepository {
	return &DefaultOfferRepository{db: db}
}

func (r *DefaultOfferRepository) Create(offer *domain.Offer) error {
	return r.db.Create(mappers.ToGORMOffer(offer)).Error
}

func (r *DefaultOfferRepository) Update(offer *domain.Offer) error {
	return r.db.Model(&models.OfferModel{ID: offer.ID}).Updates(map[string]any{
		"name":        offer.Name,
		"client_id":   offer.ClientID,
		"category_id": offer.CategoryID,
		"billing":     offer.Billing,
	}).Error
}

func (r *DefaultOfferRepository) GetByID(id string) (*domain.Offer, error) {
	var model models.OfferModel
	if err := r.db.Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translateErr(err)
	}
	return mappers.ToDomainOffer(&model), nil
}

func (r *DefaultOfferRepository) scoped(scope domain.ClientScope) *gorm.DB {
	query := r.db.Model(&models.OfferModel{}).Order("offer_models.name")
	if !scope.Staff {
		query = query.
			Joins("JOIN client_models ON client_models.id = offer_models.client_id").
			Where("client_models.account_manager_id = ?", scope.UserID)
	}
	return query
}

func (r *DefaultOfferRepository) List(scope domain.ClientScope) ([]*domain.Offer, error) {
	var offerModels []models.OfferModel
	if err := r.scoped(scope).Find(&offerModels).Error; err != nil {
		return nil, err
	}
	offers := make([]*domain.Offer, len(offerModels))
	for i, model := range offerModels {
		offers[i] = mappers.ToDomainOffer(&model)
	}
	return offers, nil
}

func (r *DefaultOfferRepository) ListByClientID(clientID string, scope domain.ClientScope) ([]*domain.Offer, error) {
	var offerModels []models.OfferModel
	if err := r.scoped(scope).Where("offer_models.client_id = ?", clientID).Find(&offerModels).Error; err != nil {
		return nil, err
	}
	offers := make([]*domain.Offer, len(offerModels))
	for i, model := range offerModels {
		offers[i] = mappers.ToDomainOffer(&model)
	}
	return offers, nil
}

func (r *DefaultOfferRepository) SoftDelete(id string) error {
	result := r.db.Delete(&models.OfferModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type DefaultCampaignRepository struct {
	db *gorm.DB
}

func NewDefaultCampaignRepository(db *gorm.DB) *DefaultCampaignRepository {
	return &DefaultCampaignRepository{db: db}
}

func (r *DefaultCampaignRepository) Create(campaign *domain.Campaign) error {
	return r.db.Create(mappers.ToGORMCampaign(campaign)).Error
}

func (r *DefaultCampaignRepository) Update(campaign *domain.Campaign) error {
	return r.db.Model(&models.CampaignModel{ID: campaign.ID}).Updates(map[string]any{
		"offer_id":           campaign.OfferID,
		"account_manager_id": campaign.AccountManagerID,
		"cost_fixed":         campaign.CostFixed,
		"cost_percentage":    campaign.CostPercentage,
		"discount_percent":   campaign.DiscountPercent,
		"start":              campaign.Start,
		"end":                campaign.End,
	}).Error
}

func (r *DefaultCampaignRepository) GetByID(id string) (*domain.Campaign, error) {
	var model models.CampaignModel
	if err := r.db.Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translateErr(err)
	}
	return mappers.ToDomainCampaign(&model), nil
}

func (r *DefaultCampaignRepository) List(scope domain.ClientScope) ([]*domain.Campaign, error) {
	query := r.db.Model(&models.CampaignModel{}).Order("start DESC")
	if !scope.Staff {
		query = query.Where("account_manager_id = ?", scope.UserID)
	}
	var campaignModels []models.CampaignModel
	if err := query.Find(&campaignModels).Error; err != nil {
		return nil, err
	}
	campaigns := make([]*domain.Campaign, len(campaignModels))
	for i, model := range campaignModels {
		campaigns[i] = mappers.ToDomainCampaign(&model)
	}
	return campaigns, nil
}

func (r *DefaultCampaignRepository) ListByOfferID(offerID string) ([]*domain.Campaign, error) {
	var campaignModels []models.CampaignModel
	if err := r.db.Where("offer_id = ?", offerID).Order("start DESC").Find(&campaignModels).Error; err != nil {
		return nil, err
	}
	campaigns := make([]*domain.Campaign, len(campaignModels))
	for i, model := range campaignModels {
		campaigns[i] = mappers.ToDomainCampaign(&model)
	}
	return campaigns, nil
}

func (r *DefaultCampaignRepository) SoftDelete(id string) error {
	result := r.db.Delete(&models.CampaignModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
