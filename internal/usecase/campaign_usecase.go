package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/arabyads/influencer-service/internal/domain"
)

type CreateCampaignInput struct {
	OfferID          string
	AccountManagerID string
	CostFixed        float64
	CostPercentage   float64
	DiscountPercent  float64
	Start            *time.Time
	End              *time.Time
}

type UpdateCampaignInput struct {
	CampaignID       string
	OfferID          string
	AccountManagerID string
	CostFixed        float64
	CostPercentage   float64
	DiscountPercent  float64
	Start            *time.Time
	End              *time.Time
}

type CampaignUsecase interface {
	CreateCampaign(actorID string, input *CreateCampaignInput) (*domain.Campaign, error)
	UpdateCampaign(actorID string, input *UpdateCampaignInput) (*domain.Campaign, error)
	GetCampaignByID(id string) (*domain.Campaign, error)
	ListCampaigns(scope domain.ClientScope) ([]*domain.Campaign, error)
	ListCampaignsByOfferID(offerID string) ([]*domain.Campaign, error)
}

type DefaultCampaignUsecase struct {
	campaignRepo domain.CampaignRepository
	offerRepo    domain.OfferRepository
	userRepo     domain.UserRepository
	audit        *AuditEmitter
}

func NewDefaultCampaignUsecase(
	campaignRepo domain.CampaignRepository,
	offerRepo domain.OfferRepository,
	userRepo domain.UserRepository,
	audit *AuditEmitter,
) *DefaultCampaignUsecase {
	return &DefaultCampaignUsecase{
		campaignRepo: campaignRepo,
		offerRepo:    offerRepo,
		userRepo:     userRepo,
		audit:        audit,
	}
}

// Cost fields are validated against the parent offer's billing method. A
// fixed price offer needs a fixed cost, a revenue share offer needs a
// percentage, an agency offer may carry either.
func (uc *DefaultCampaignUsecase) validate(offerID, accountManagerID string, costFixed, costPercentage, discountPercent float64, start, end *time.Time) error {
	verr := domain.NewValidationError()
	var offer *domain.Offer
	if offerID == "" {
		verr.Add("offer", "offer is required")
	} else {
		found, err := uc.offerRepo.GetByID(offerID)
		if err != nil {
			verr.Add("offer", "offer does not exist")
		} else {
			offer = found
		}
	}
	if accountManagerID == "" {
		verr.Add("account_manager", "account manager is required")
	} else if _, err := uc.userRepo.GetByID(accountManagerID); err != nil {
		verr.Add("account_manager", "account manager does not exist")
	}
	if offer != nil {
		switch offer.Billing {
		case domain.OfferFixedPrice:
			if costFixed <= 0 {
				verr.Add("cost_fixed", "fixed cost is required for a fixed price offer")
			}
		case domain.OfferRevenueShare:
			if costPercentage <= 0 || costPercentage > 100 {
				verr.Add("cost_percentage", "cost percentage must be between 0 and 100")
			}
		}
	}
	if discountPercent < 0 || discountPercent > 100 {
		verr.Add("discount_percent", "discount percent must be between 0 and 100")
	}
	if start != nil && end != nil && end.Before(*start) {
		verr.Add("end", "end date must not precede start date")
	}
	return verr.ErrOrNil()
}

func (uc *DefaultCampaignUsecase) CreateCampaign(actorID string, input *CreateCampaignInput) (*domain.Campaign, error) {
	if err := uc.validate(input.OfferID, input.AccountManagerID, input.CostFixed, input.CostPercentage, input.DiscountPercent, input.Start, input.End); err != nil {
		return nil, err
	}
	campaign := &domain.Campaign{
		ID:               uuid.NewString(),
		OfferID:          input.OfferID,
		AccountManagerID: input.AccountManagerID,
		CostFixed:        input.CostFixed,
		CostPercentage:   input.CostPercentage,
		DiscountPercent:  input.DiscountPercent,
		Start:            input.Start,
		End:              input.End,
	}
	if err := uc.campaignRepo.Create(campaign); err != nil {
		return nil, err
	}
	uc.audit.Emit("campaign", campaign.ID, domain.AuditCreate, actorID, nil, campaign)
	return campaign, nil
}

func (uc *DefaultCampaignUsecase) UpdateCampaign(actorID string, input *UpdateCampaignInput) (*domain.Campaign, error) {
	before, err := uc.campaignRepo.GetByID(input.CampaignID)
	if err != nil {
		return nil, err
	}
	if err := uc.validate(input.OfferID, input.AccountManagerID, input.CostFixed, input.CostPercentage, input.DiscountPercent, input.Start, input.End); err != nil {
		return nil, err
	}
	campaign := &domain.Campaign{
		ID:               input.CampaignID,
		OfferID:          input.OfferID,
		AccountManagerID: input.AccountManagerID,
		CostFixed:        input.CostFixed,
		CostPercentage:   input.CostPercentage,
		DiscountPercent:  input.DiscountPercent,
		Start:            input.Start,
		End:              input.End,
	}
	if err := uc.campaignRepo.Update(campaign); err != nil {
		return nil, err
	}
	updated, err := uc.campaignRepo.GetByID(input.CampaignID)
	if err != nil {
		return nil, err
	}
	uc.audit.Emit("campaign", campaign.ID, domain.AuditUpdate, actorID, before, updated)
	return updated, nil
}

func (uc *DefaultCampaignUsecase) GetCampaignByID(id string) (*domain.Campaign, error) {
	return uc.campaignRepo.GetByID(id)
}

func (uc *DefaultCampaignUsecase) ListCampaigns(scope domain.ClientScope) ([]*domain.Campaign, error) {
	return uc.campaignRepo.List(scope)
}

func (uc *DefaultCampaignUsecase) ListCampaignsByOfferID(offerID string) ([]*domain.Campaign, error) {
	return uc.campaignRepo.ListByOfferID(offerID)
}
