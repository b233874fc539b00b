package usecase

import (
	"github.com/google/uuid"

	"github.com/arabyads/influencer-service/internal/domain"
)

type CreateClientInput struct {
	Name             string
	Email            string
	AccountManagerID string
	Phone            string
}

type UpdateClientInput struct {
	ClientID         string
	Name             string
	Email            string
	AccountManagerID string
	Phone            string
}

type ClientUsecase interface {
	CreateClient(actorID string, input *CreateClientInput) (*domain.Client, error)
	UpdateClient(actorID string, input *UpdateClientInput) (*domain.Client, error)
	GetClientByID(id string) (*domain.Client, error)
	ListClients(scope domain.ClientScope) ([]*domain.Client, error)
}

type DefaultClientUsecase struct {
	clientRepo domain.ClientRepository
	userRepo   domain.UserRepository
	audit      *AuditEmitter
}

func NewDefaultClientUsecase(clientRepo domain.ClientRepository, userRepo domain.UserRepository, audit *AuditEmitter) *DefaultClientUsecase {
	return &DefaultClientUsecase{
		clientRepo: clientRepo,
		userRepo:   userRepo,
		audit:      audit,
	}
}

func (uc *DefaultClientUsecase) validate(name, email, accountManagerID string) error {
	verr := domain.NewValidationError()
	if name == "" {
		verr.Add("name", "name is required")
	}
	if len(name) > 50 {
		verr.Add("name", "name must be at most 50 characters")
	}
	if email != "" && !validEmail(email) {
		verr.Add("email", "enter a valid email address")
	}
	if accountManagerID == "" {
		verr.Add("account_manager", "account manager is required")
	} else if _, err := uc.userRepo.GetByID(accountManagerID); err != nil {
		verr.Add("account_manager", "account manager does not exist")
	}
	return verr.ErrOrNil()
}

func (uc *DefaultClientUsecase) CreateClient(actorID string, input *CreateClientInput) (*domain.Client, error) {
	if err := uc.validate(input.Name, input.Email, input.AccountManagerID); err != nil {
		return nil, err
	}
	client := &domain.Client{
		ID:               uuid.NewString(),
		Name:             input.Name,
		Email:            input.Email,
		AccountManagerID: input.AccountManagerID,
		Phone:            input.Phone,
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	uc.audit.Emit("client", client.ID, domain.AuditCreate, actorID, nil, client)
	return client, nil
}

func (uc *DefaultClientUsecase) UpdateClient(actorID string, input *UpdateClientInput) (*domain.Client, error) {
	before, err := uc.clientRepo.GetByID(input.ClientID)
	if err != nil {
		return nil, err
	}
	if err := uc.validate(input.Name, input.Email, input.AccountManagerID); err != nil {
		return nil, err
	}
	client := &domain.Client{
		ID:               input.ClientID,
		Name:             input.Name,
		Email:            input.Email,
		AccountManagerID: input.AccountManagerID,
		Phone:            input.Phone,
	}
	if err := uc.clientRepo.Update(client); err != nil {
		return nil, err
	}
	updated, err := uc.clientRepo.GetByID(input.ClientID)
	if err != nil {
		return nil, err
	}
	uc.audit.Emit("client", client.ID, domain.AuditUpdate, actorID, before, updated)
	return updated, nil
}

func (uc *DefaultClientUsecase) GetClientByID(id string) (*domain.Client, error) {
	return uc.clientRepo.GetByID(id)
}

func (uc *DefaultClientUsecase) ListClients(scope domain.ClientScope) ([]*domain.Client, error) {
	return uc.clientRepo.List(scope)
}

type CreateOfferInput struct {
	Name       string
	ClientID   string
	CategoryID string
	Billing    string
}

type UpdateOfferInput struct {
	OfferID    string
	Name       string
	ClientID   string
	CategoryID string
	Billing    string
}

type OfferUsecase interface {
	CreateOffer(actorID string, input *CreateOfferInput) (*domain.Offer, error)
	UpdateOffer(actorID string, input *UpdateOfferInput) (*domain.Offer, error)
	GetOfferByID(id string) (*domain.Offer, error)
	ListOffers(scope domain.ClientScope) ([]*domain.Offer, error)
	ListOffersByClientID(clientID string, scope domain.ClientScope) ([]*domain.Offer, error)
}

type DefaultOfferUsecase struct {
	offerRepo    domain.OfferRepository
	clientRepo   domain.ClientRepository
	categoryRepo domain.CategoryRepository
	audit        *AuditEmitter
}

func NewDefaultOfferUsecase(
	offerRepo domain.OfferRepository,
	clientRepo domain.ClientRepository,
	categoryRepo domain.CategoryRepository,
	audit *AuditEmitter,
) *DefaultOfferUsecase {
	return &DefaultOfferUsecase{
		offerRepo:    offerRepo,
		clientRepo:   clientRepo,
		categoryRepo: categoryRepo,
		audit:        audit,
	}
}

func validOfferBilling(billing string) bool {
	switch domain.OfferBilling(billing) {
	case domain.OfferFixedPrice, domain.OfferRevenueShare, domain.OfferAgency:
		return true
	}
	return false
}

func (uc *DefaultOfferUsecase) validate(name, clientID, categoryID, billing string) error {
	verr := domain.NewValidationError()
	if name == "" {
		verr.Add("name", "name is required")
	}
	if clientID == "" {
		verr.Add("client", "client is required")
	} else if _, err := uc.clientRepo.GetByID(clientID); err != nil {
		verr.Add("client", "client does not exist")
	}
	if categoryID == "" {
		verr.Add("category", "category is required")
	} else if _, err := uc.categoryRepo.GetByID(categoryID); err != nil {
		verr.Add("category", "category does not exist")
	}
	if !validOfferBilling(billing) {
		verr.Add("billing_method", "billing method must be one of FIXED_PRICE, REVENUE_SHARE, AGENCY")
	}
	return verr.ErrOrNil()
}

func (uc *DefaultOfferUsecase) CreateOffer(actorID string, input *CreateOfferInput) (*domain.Offer, error) {
	if err := uc.validate(input.Name, input.ClientID, input.CategoryID, input.Billing); err != nil {
		return nil, err
	}
	offer := &domain.Offer{
		ID:         uuid.NewString(),
		Name:       input.Name,
		ClientID:   input.ClientID,
		CategoryID: input.CategoryID,
		Billing:    domain.OfferBilling(input.Billing),
	}
	if err := uc.offerRepo.Create(offer); err != nil {
		return nil, err
	}
	uc.audit.Emit("offer", offer.ID, domain.AuditCreate, actorID, nil, offer)
	return offer, nil
}

func (uc *DefaultOfferUsecase) UpdateOffer(actorID string, input *UpdateOfferInput) (*domain.Offer, error) {
	before, err := uc.offerRepo.GetByID(input.OfferID)
	if err != nil {
		return nil, err
	}
	if err := uc.validate(input.Name, input.ClientID, input.CategoryID, input.Billing); err != nil {
		return nil, err
	}
	offer := &domain.Offer{
		ID:         input.OfferID,
		Name:       input.Name,
		ClientID:   input.ClientID,
		CategoryID: input.CategoryID,
		Billing:    domain.OfferBilling(input.Billing),
	}
	if err := uc.offerRepo.Update(offer); err != nil {
		return nil, err
	}
	updated, err := uc.offerRepo.GetByID(input.OfferID)
	if err != nil {
		return nil, err
	}
	uc.audit.Emit("offer", offer.ID, domain.AuditUpdate, actorID, before, updated)
	return updated, nil
}

func (uc *DefaultOfferUsecase) GetOfferByID(id string) (*domain.Offer, error) {
	return uc.offerRepo.GetByID(id)
}

func (uc *DefaultOfferUsecase) ListOffers(scope domain.ClientScope) ([]*domain.Offer, error) {
	return uc.offerRepo.List(scope)
}

func (uc *DefaultOfferUsecase) ListOffersByClientID(clientID string, scope domain.ClientScope) ([]*domain.Offer, error) {
	return uc.offerRepo.ListByClientID(clientID, scope)
}
