package mappers

import (
	"github.com/arabyads/influencer-service/internal/domain"
	"github.com/arabyads/influencer-service/internal/infrastructure/postgres/models"
)

func ToDomainInfluencer(model *models.InfluencerModel) *domain.Influencer {
	influencer := &domain.Influencer{
		ID:                model.ID,
		Name:              model.Name,
		Gender:            model.Gender,
		Phone:             model.Phone,
		Email:             model.Email,
		IBAN:              model.IBAN,
		AccountHolderName: model.AccountHolderName,
		City:              model.City,
		Branch:            model.Branch,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
	if model.CategoryID != nil {
		influencer.CategoryID = *model.CategoryID
	}
	if model.BankID != nil {
		influencer.BankID = *model.BankID
	}
	return influencer
}

func ToGORMInfluencer(influencer *domain.Influencer) *models.InfluencerModel {
	model := &models.InfluencerModel{
		ID:                influencer.ID,
		Name:              influencer.Name,
		Gender:            influencer.Gender,
		Phone:             influencer.Phone,
		Email:             influencer.Email,
		IBAN:              influencer.IBAN,
		AccountHolderName: influencer.AccountHolderName,
		City:              influencer.City,
		Branch:            influencer.Branch,
		CreatedAt:         influencer.CreatedAt,
		UpdatedAt:         influencer.UpdatedAt,
	}
	if influencer.CategoryID != "" {
		categoryID := influencer.CategoryID
		model.CategoryID = &categoryID
	}
	if influencer.BankID != "" {
		bankID := influencer.BankID
		model.BankID = &bankID
	}
	return model
}

func ToDomainSocialAccount(model *models.SocialAccountModel) *domain.SocialAccount {
	return &domain.SocialAccount{
		ID:           model.ID,
		Username:     model.Username,
		PlatformID:   model.PlatformID,
		InfluencerID: model.InfluencerID,
		Cost:         model.Cost,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func ToGORMSocialAccount(account *domain.SocialAccount) *models.SocialAccountModel {
	return &models.SocialAccountModel{
		ID:           account.ID,
		Username:     account.Username,
		PlatformID:   account.PlatformID,
		InfluencerID: account.InfluencerID,
		Cost:         account.Cost,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}
}
