package mappers

import (
	"github.com/arabyads/influencer-service/internal/domain"
	"github.com/arabyads/influencer-service/internal/infrastructure/postgres/models"
)

func ToDomainClient(model *models.ClientModel) *domain.Client {
	return &domain.Client{
		ID:               model.ID,
		Name:             model.Name,
		Email:            model.Email,
		AccountManagerID: model.AccountManagerID,
		Phone:            model.Phone,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

func ToGORMClient(client *domain.Client) *models.ClientModel {
	return &models.ClientModel{
		ID:               client.ID,
		Name:             client.Name,
		Email:            client.Email,
		AccountManagerID: client.AccountManagerID,
		Phone:            client.Phone,
		CreatedAt:        client.CreatedAt,
		UpdatedAt:        client.UpdatedAt,
	}
}

func ToDomainOffer(model *models.OfferModel) *domain.Offer {
	return &domain.Offer{
		ID:         model.ID,
		Name:       model.Name,
		ClientID:   model.ClientID,
		CategoryID: model.CategoryID,
		Billing:    model.Billing,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

func ToGORMOffer(offer *domain.Offer) *models.OfferModel {
	return &models.OfferModel{
		ID:         offer.ID,
		Name:       offer.Name,
		ClientID:   offer.ClientID,
		CategoryID: offer.CategoryID,
		Billing:    offer.Billing,
		CreatedAt:  offer.CreatedAt,
		UpdatedAt:  offer.UpdatedAt,
	}
}

func ToDomainCampaign(model *models.CampaignModel) *domain.Campaign {
	return &domain.Campaign{
		ID:               model.ID,
		OfferID:          model.OfferID,
		AccountManagerID: model.AccountManagerID,
		CostFixed:        model.CostFixed,
		CostPercentage:   model.CostPercentage,
		DiscountPercent:  model.DiscountPercent,
		Start:            model.Start,
		End:              model.End,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

func ToGORMCampaign(campaign *domain.Campaign) *models.CampaignModel {
	return &models.CampaignModel{
		ID:               campaign.ID,
		OfferID:          campaign.OfferID,
		AccountManagerID: campaign.AccountManagerID,
		CostFixed:        campaign.CostFixed,
		CostPercentage:   campaign.CostPercentage,
		DiscountPercent:  campaign.DiscountPercent,
		Start:            campaign.Start,
		End:              campaign.End,
		CreatedAt:        campaign.CreatedAt,
		UpdatedAt:        campaign.UpdatedAt,
	}
}
