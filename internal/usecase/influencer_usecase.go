package usecase

import (
	"github.com/google/uuid"

	"github.com/arabyads/influencer-service/internal/domain"
)

type CreateInfluencerInput struct {
	Name              string
	Gender            string
	CategoryID        string
	Phone             string
	Email             string
	BankID            string
	IBAN              string
	AccountHolderName string
	City              string
	Branch            string
}

type UpdateInfluencerInput struct {
	InfluencerID string
	CreateInfluencerInput
}

type InfluencerUsecase interface {
	CreateInfluencer(actorID string, input *CreateInfluencerInput) (*domain.Influencer, error)
	UpdateInfluencer(actorID string, input *UpdateInfluencerInput) (*domain.Influencer, error)
	GetInfluencerByID(id string) (*domain.Influencer, error)
	ListInfluencers() ([]*domain.Influencer, error)
}

type DefaultInfluencerUsecase struct {
	influencerRepo domain.InfluencerRepository
	categoryRepo   domain.CategoryRepository
	bankRepo       domain.BankRepository
	audit          *AuditEmitter
}

func NewDefaultInfluencerUsecase(
	influencerRepo domain.InfluencerRepository,
	categoryRepo domain.CategoryRepository,
	bankRepo domain.BankRepository,
	audit *AuditEmitter,
) *DefaultInfluencerUsecase {
	return &DefaultInfluencerUsecase{
		influencerRepo: influencerRepo,
		categoryRepo:   categoryRepo,
		bankRepo:       bankRepo,
		audit:          audit,
	}
}

func (uc *DefaultInfluencerUsecase) validate(input *CreateInfluencerInput, excludeID string) error {
	verr := domain.NewValidationError()
	if input.Name == "" {
		verr.Add("name", "name is required")
	}
	if input.Gender != string(domain.GenderMale) && input.Gender != string(domain.GenderFemale) {
		verr.Add("gender", "gender must be MALE or FEMALE")
	}
	if input.Email != "" && !validEmail(input.Email) {
		verr.Add("email", "enter a valid email address")
	}
	if input.CategoryID != "" {
		if _, err := uc.categoryRepo.GetByID(input.CategoryID); err != nil {
			verr.Add("category", "category does not exist")
		}
	}
	if input.BankID != "" {
		if _, err := uc.bankRepo.GetByID(input.BankID); err != nil {
			verr.Add("bank", "bank does not exist")
		}
	}
	if input.IBAN != "" {
		taken, err := uc.influencerRepo.IBANExists(input.IBAN, excludeID)
		if err != nil {
			return err
		}
		if taken {
			verr.Add("iban", "an influencer with this IBAN already exists")
		}
	}
	return verr.ErrOrNil()
}

func (uc *DefaultInfluencerUsecase) CreateInfluencer(actorID string, input *CreateInfluencerInput) (*domain.Influencer, error) {
	if err := uc.validate(input, ""); err != nil {
		return nil, err
	}
	influencer := &domain.Influencer{
		ID:                uuid.NewString(),
		Name:              input.Name,
		Gender:            domain.Gender(input.Gender),
		CategoryID:        input.CategoryID,
		Phone:             input.Phone,
		Email:             input.Email,
		BankID:            input.BankID,
		IBAN:              input.IBAN,
		AccountHolderName: input.AccountHolderName,
		City:              input.City,
		Branch:            input.Branch,
	}
	if err := uc.influencerRepo.Create(influencer); err != nil {
		return nil, err
	}
	uc.audit.Emit("influencer", influencer.ID, domain.AuditCreate, actorID, nil, influencer)
	return influencer, nil
}

func (uc *DefaultInfluencerUsecase) UpdateInfluencer(actorID string, input *UpdateInfluencerInput) (*domain.Influencer, error) {
	before, err := uc.influencerRepo.GetByID(input.InfluencerID)
	if err != nil {
		return nil, err
	}
	if err := uc.validate(&input.CreateInfluencerInput, input.InfluencerID); err != nil {
		return nil, err
	}
	influencer := &domain.Influencer{
		ID:                input.InfluencerID,
		Name:              input.Name,
		Gender:            domain.Gender(input.Gender),
		CategoryID:        input.CategoryID,
		Phone:             input.Phone,
		Email:             input.Email,
		BankID:            input.BankID,
		IBAN:              input.IBAN,
		AccountHolderName: input.AccountHolderName,
		City:              input.City,
		Branch:            input.Branch,
	}
	if err := uc.influencerRepo.Update(influencer); err != nil {
		return nil, err
	}
	updated, err := uc.influencerRepo.GetByID(input.InfluencerID)
	if err != nil {
		return nil, err
	}
	uc.audit.Emit("influencer", influencer.ID, domain.AuditUpdate, actorID, before, updated)
	return updated, nil
}

func (uc *DefaultInfluencerUsecase) GetInfluencerByID(id string) (*domain.Influencer, error) {
	return uc.influencerRepo.GetByID(id)
}

func (uc *DefaultInfluencerUsecase) ListInfluencers() ([]*domain.Influencer, error) {
	return uc.influencerRepo.List()
}

type CreateSocialAccountInput struct {
	Username     string
	PlatformID   string
	InfluencerID string
	Cost         float64
}

type UpdateSocialAccountInput struct {
	SocialAccountID string
	CreateSocialAccountInput
}

type SocialAccountUsecase interface {
	CreateSocialAccount(actorID string, input *CreateSocialAccountInput) (*domain.SocialAccount, error)
	UpdateSocialAccount(actorID string, input *UpdateSocialAccountInput) (*domain.SocialAccount, error)
	GetSocialAccountByID(id string) (*domain.SocialAccount, error)
	ListSocialAccounts() ([]*domain.SocialAccount, error)
	ListSocialAccountsByInfluencerID(influencerID string) ([]*domain.SocialAccount, error)
}

type DefaultSocialAccountUsecase struct {
	accountRepo    domain.SocialAccountRepository
	platformRepo   domain.SocialPlatformRepository
	influencerRepo domain.InfluencerRepository
	audit          *AuditEmitter
}

func NewDefaultSocialAccountUsecase(
	accountRepo domain.SocialAccountRepository,
	platformRepo domain.SocialPlatformRepository,
	influencerRepo domain.InfluencerRepository,
	audit *AuditEmitter,
) *DefaultSocialAccountUsecase {
	return &DefaultSocialAccountUsecase{
		accountRepo:    accountRepo,
		platformRepo:   platformRepo,
		influencerRepo: influencerRepo,
		audit:          audit,
	}
}

func (uc *DefaultSocialAccountUsecase) validate(input *CreateSocialAccountInput) error {
	verr := domain.NewValidationError()
	if input.Username == "" {
		verr.Add("username", "username is required")
	}
	if input.PlatformID == "" {
		verr.Add("social_platform", "social platform is required")
	} else if _, err := uc.platformRepo.GetByID(input.PlatformID); err != nil {
		verr.Add("social_platform", "social platform does not exist")
	}
	if input.InfluencerID == "" {
		verr.Add("influencer", "influencer is required")
	} else if _, err := uc.influencerRepo.GetByID(input.InfluencerID); err != nil {
		verr.Add("influencer", "influencer does not exist")
	}
	if input.Cost < 0 {
		verr.Add("cost", "cost must not be negative")
	}
	return verr.ErrOrNil()
}

func (uc *DefaultSocialAccountUsecase) CreateSocialAccount(actorID string, input *CreateSocialAccountInput) (*domain.SocialAccount, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}
	account := &domain.SocialAccount{
		ID:           uuid.NewString(),
		Username:     input.Username,
		PlatformID:   input.PlatformID,
		InfluencerID: input.InfluencerID,
		Cost:         input.Cost,
	}
	if err := uc.accountRepo.Create(account); err != nil {
		return nil, err
	}
	uc.audit.Emit("social_account", account.ID, domain.AuditCreate, actorID, nil, account)
	return account, nil
}

func (uc *DefaultSocialAccountUsecase) UpdateSocialAccount(actorID string, input *UpdateSocialAccountInput) (*domain.SocialAccount, error) {
	before, err := uc.accountRepo.GetByID(input.SocialAccountID)
	if err != nil {
		return nil, err
	}
	if err := uc.validate(&input.CreateSocialAccountInput); err != nil {
		return nil, err
	}
	account := &domain.SocialAccount{
		ID:           input.SocialAccountID,
		Username:     input.Username,
		PlatformID:   input.PlatformID,
		InfluencerID: input.InfluencerID,
		Cost:         input.Cost,
	}
	if err := uc.accountRepo.Update(account); err != nil {
		return nil, err
	}
	updated, err := uc.accountRepo.GetByID(input.SocialAccountID)
	if err != nil {
		return nil, err
	}
	uc.audit.Emit("social_account", account.ID, domain.AuditUpdate, actorID, before, updated)
	return updated, nil
}

func (uc *DefaultSocialAccountUsecase) GetSocialAccountByID(id string) (*domain.SocialAccount, error) {
	return uc.accountRepo.GetByID(id)
}

func (uc *DefaultSocialAccountUsecase) ListSocialAccounts() ([]*domain.SocialAccount, error) {
	return uc.accountRepo.List()
}

func (uc *DefaultSocialAccountUsecase) ListSocialAccountsByInfluencerID(influencerID string) ([]*domain.SocialAccount, error) {
	return uc.accountRepo.ListByInfluencerID(influencerID)
}
