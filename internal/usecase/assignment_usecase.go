package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/arabyads/influencer-service/internal/domain"
)

type CreateAssignmentInput struct {
	SocialAccountID string
	InfluencerID    string
	CampaignID      string
	CouponID        string
	Billing         string
	Cost            float64
	Discount        int
	Day             time.Time
}

type UpdateAssignmentInput struct {
	AssignmentID string
	CreateAssignmentInput
}

type AssignmentUsecase interface {
	CreateAssignment(actorID string, input *CreateAssignmentInput) (*domain.AssignedInfluencer, error)
	UpdateAssignment(actorID string, input *UpdateAssignmentInput) (*domain.AssignedInfluencer, error)
	GetAssignmentByID(id string) (*domain.AssignedInfluencer, error)
	ListAssignments() ([]*domain.AssignedInfluencer, error)
	ListAssignmentsByCampaignID(campaignID string) ([]*domain.AssignedInfluencer, error)
	// AssignmentEarnings resolves what the influencer is owed under the
	// assignment's billing terms, using validated sales history for the
	// revenue share variants.
	AssignmentEarnings(id string) (float64, error)
}

type DefaultAssignmentUsecase struct {
	assignmentRepo domain.AssignmentRepository
	accountRepo    domain.SocialAccountRepository
	influencerRepo domain.InfluencerRepository
	campaignRepo   domain.CampaignRepository
	couponRepo     domain.CouponRepository
	audit          *AuditEmitter
}

func NewDefaultAssignmentUsecase(
	assignmentRepo domain.AssignmentRepository,
	accountRepo domain.SocialAccountRepository,
	influencerRepo domain.InfluencerRepository,
	campaignRepo domain.CampaignRepository,
	couponRepo domain.CouponRepository,
	audit *AuditEmitter,
) *DefaultAssignmentUsecase {
	return &DefaultAssignmentUsecase{
		assignmentRepo: assignmentRepo,
		accountRepo:    accountRepo,
		influencerRepo: influencerRepo,
		campaignRepo:   campaignRepo,
		couponRepo:     couponRepo,
		audit:          audit,
	}
}

// Billing terms dispatch on the variant tag. FIXED_COST and
// REVENUE_SHARE_FIXED treat cost as an absolute amount,
// REVENUE_SHARE_PERCENTAGE treats it as a share of revenue.
func validateBillingTerms(verr *domain.ValidationError, billing string, cost float64) {
	switch domain.AssignmentBilling(billing) {
	case domain.AssignmentFixedCost, domain.AssignmentRevenueShareFixed:
		if cost <= 0 {
			verr.Add("cost", "cost must be positive")
		}
	case domain.AssignmentRevenueSharePercentage:
		if cost <= 0 || cost > 100 {
			verr.Add("cost", "percentage cost must be between 0 and 100")
		}
	default:
		verr.Add("commission_type", "commission type must be one of FIXED_COST, REVENUE_SHARE_FIXED, REVENUE_SHARE_PERCENTAGE")
	}
}

func (uc *DefaultAssignmentUsecase) validate(input *CreateAssignmentInput) error {
	verr := domain.NewValidationError()

	var account *domain.SocialAccount
	if input.SocialAccountID == "" {
		verr.Add("social_account", "social account is required")
	} else {
		found, err := uc.accountRepo.GetByID(input.SocialAccountID)
		if err != nil {
			verr.Add("social_account", "social account does not exist")
		} else {
			account = found
		}
	}
	if input.InfluencerID == "" {
		verr.Add("influencer", "influencer is required")
	} else if _, err := uc.influencerRepo.GetByID(input.InfluencerID); err != nil {
		verr.Add("influencer", "influencer does not exist")
	} else if account != nil && account.InfluencerID != input.InfluencerID {
		verr.Add("social_account", "social account does not belong to the influencer")
	}
	if input.CampaignID == "" {
		verr.Add("campaign", "campaign is required")
	} else if _, err := uc.campaignRepo.GetByID(input.CampaignID); err != nil {
		verr.Add("campaign", "campaign does not exist")
	}
	if input.CouponID == "" {
		verr.Add("coupon", "coupon is required")
	} else if _, err := uc.couponRepo.GetByID(input.CouponID); err != nil {
		verr.Add("coupon", "coupon does not exist")
	}
	validateBillingTerms(verr, input.Billing, input.Cost)
	if input.Discount < 0 || input.Discount > 100 {
		verr.Add("discount", "discount must be between 0 and 100")
	}
	if input.Day.IsZero() {
		verr.Add("day", "day is required")
	}
	return verr.ErrOrNil()
}

func (uc *DefaultAssignmentUsecase) CreateAssignment(actorID string, input *CreateAssignmentInput) (*domain.AssignedInfluencer, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}
	assignment := &domain.AssignedInfluencer{
		ID:              uuid.NewString(),
		SocialAccountID: input.SocialAccountID,
		InfluencerID:    input.InfluencerID,
		CampaignID:      input.CampaignID,
		CouponID:        input.CouponID,
		Billing:         domain.AssignmentBilling(input.Billing),
		Cost:            input.Cost,
		Discount:        input.Discount,
		Day:             input.Day,
	}
	if err := uc.assignmentRepo.Create(assignment); err != nil {
		return nil, err
	}
	uc.audit.Emit("assigned_influencer", assignment.ID, domain.AuditCreate, actorID, nil, assignment)
	return assignment, nil
}

func (uc *DefaultAssignmentUsecase) UpdateAssignment(actorID string, input *UpdateAssignmentInput) (*domain.AssignedInfluencer, error) {
	before, err := uc.assignmentRepo.GetByID(input.AssignmentID)
	if err != nil {
		return nil, err
	}
	if err := uc.validate(&input.CreateAssignmentInput); err != nil {
		return nil, err
	}
	assignment := &domain.AssignedInfluencer{
		ID:              input.AssignmentID,
		SocialAccountID: input.SocialAccountID,
		InfluencerID:    input.InfluencerID,
		CampaignID:      input.CampaignID,
		CouponID:        input.CouponID,
		Billing:         domain.AssignmentBilling(input.Billing),
		Cost:            input.Cost,
		Discount:        input.Discount,
		Day:             input.Day,
	}
	if err := uc.assignmentRepo.Update(assignment); err != nil {
		return nil, err
	}
	updated, err := uc.assignmentRepo.GetByID(input.AssignmentID)
	if err != nil {
		return nil, err
	}
	uc.audit.Emit("assigned_influencer", assignment.ID, domain.AuditUpdate, actorID, before, updated)
	return updated, nil
}

func (uc *DefaultAssignmentUsecase) GetAssignmentByID(id string) (*domain.AssignedInfluencer, error) {
	return uc.assignmentRepo.GetByID(id)
}

func (uc *DefaultAssignmentUsecase) ListAssignments() ([]*domain.AssignedInfluencer, error) {
	return uc.assignmentRepo.List()
}

func (uc *DefaultAssignmentUsecase) ListAssignmentsByCampaignID(campaignID string) ([]*domain.AssignedInfluencer, error) {
	return uc.assignmentRepo.ListByCampaignID(campaignID)
}

func (uc *DefaultAssignmentUsecase) AssignmentEarnings(id string) (float64, error) {
	assignment, err := uc.assignmentRepo.GetByID(id)
	if err != nil {
		return 0, err
	}
	switch assignment.Billing {
	case domain.AssignmentFixedCost:
		return assignment.Cost, nil
	case domain.AssignmentRevenueShareFixed:
		sales, err := uc.assignmentRepo.TotalSales(id, domain.ValidatedData)
		if err != nil {
			return 0, err
		}
		return assignment.Cost * sales, nil
	case domain.AssignmentRevenueSharePercentage:
		sales, err := uc.assignmentRepo.TotalSales(id, domain.ValidatedData)
		if err != nil {
			return 0, err
		}
		return sales * assignment.Cost / 100, nil
	}
	return 0, nil
}

type CreateHistoryInput struct {
	AssignedInfluencerID string
	DataType             string
	NoSales              float64
	DaySales             time.Time
}

type UpdateHistoryInput struct {
	HistoryID string
	CreateHistoryInput
}

type HistoryUsecase interface {
	CreateHistory(actorID string, input *CreateHistoryInput) (*domain.InfluencerHistory, error)
	UpdateHistory(actorID string, input *UpdateHistoryInput) (*domain.InfluencerHistory, error)
	GetHistoryByID(id string) (*domain.InfluencerHistory, error)
	ListHistoryByAssignmentID(assignmentID string) ([]*domain.InfluencerHistory, error)
}

type DefaultHistoryUsecase struct {
	historyRepo    domain.HistoryRepository
	assignmentRepo domain.AssignmentRepository
	audit          *AuditEmitter
}

func NewDefaultHistoryUsecase(historyRepo domain.HistoryRepository, assignmentRepo domain.AssignmentRepository, audit *AuditEmitter) *DefaultHistoryUsecase {
	return &DefaultHistoryUsecase{
		historyRepo:    historyRepo,
		assignmentRepo: assignmentRepo,
		audit:          audit,
	}
}

func (uc *DefaultHistoryUsecase) validate(input *CreateHistoryInput) error {
	verr := domain.NewValidationError()
	if input.AssignedInfluencerID == "" {
		verr.Add("assigned_influencer", "assignment is required")
	} else if _, err := uc.assignmentRepo.GetByID(input.AssignedInfluencerID); err != nil {
		verr.Add("assigned_influencer", "assignment does not exist")
	}
	if input.DataType != string(domain.RawData) && input.DataType != string(domain.ValidatedData) {
		verr.Add("data_type", "data type must be RAW_DATA or VALIDATED_DATA")
	}
	if input.NoSales < 0 {
		verr.Add("no_sales", "sales figure must not be negative")
	}
	if input.DaySales.IsZero() {
		verr.Add("day_sales", "sales day is required")
	}
	return verr.ErrOrNil()
}

func (uc *DefaultHistoryUsecase) CreateHistory(actorID string, input *CreateHistoryInput) (*domain.InfluencerHistory, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}
	history := &domain.InfluencerHistory{
		ID:                   uuid.NewString(),
		AssignedInfluencerID: input.AssignedInfluencerID,
		DataType:             domain.HistoryDataType(input.DataType),
		NoSales:              input.NoSales,
		DaySales:             input.DaySales,
	}
	if err := uc.historyRepo.Create(history); err != nil {
		return nil, err
	}
	uc.audit.Emit("influencer_history", history.ID, domain.AuditCreate, actorID, nil, history)
	return history, nil
}

func (uc *DefaultHistoryUsecase) UpdateHistory(actorID string, input *UpdateHistoryInput) (*domain.InfluencerHistory, error) {
	before, err := uc.historyRepo.GetByID(input.HistoryID)
	if err != nil {
		return nil, err
	}
	if err := uc.validate(&input.CreateHistoryInput); err != nil {
		return nil, err
	}
	history := &domain.InfluencerHistory{
		ID:                   input.HistoryID,
		AssignedInfluencerID: input.AssignedInfluencerID,
		DataType:             domain.HistoryDataType(input.DataType),
		NoSales:              input.NoSales,
		DaySales:             input.DaySales,
	}
	if err := uc.historyRepo.Update(history); err != nil {
		return nil, err
	}
	updated, err := uc.historyRepo.GetByID(input.HistoryID)
	if err != nil {
		return nil, err
	}
	uc.audit.Emit("influencer_history", history.ID, domain.AuditUpdate, actorID, before, updated)
	return updated, nil
}

func (uc *DefaultHistoryUsecase) GetHistoryByID(id string) (*domain.InfluencerHistory, error) {
	return uc.historyRepo.GetByID(id)
}

func (uc *DefaultHistoryUsecase) ListHistoryByAssignmentID(assignmentID string) ([]*domain.InfluencerHistory, error) {
	return uc.historyRepo.ListByAssignmentID(assignmentID)
}

type CreatePaymentInput struct {
	AssignedInfluencerID string
	Day                  time.Time
	InvoiceURL           string
	BillingStatus        string
}

type UpdatePaymentInput struct {
	PaymentID string
	CreatePaymentInput
}

type PaymentUsecase interface {
	CreatePayment(actorID string, input *CreatePaymentInput) (*domain.InfluencerPayment, error)
	UpdatePayment(actorID string, input *UpdatePaymentInput) (*domain.InfluencerPayment, error)
	GetPaymentByID(id string) (*domain.InfluencerPayment, error)
	ListPayments() ([]*domain.InfluencerPayment, error)
}

type DefaultPaymentUsecase struct {
	paymentRepo    domain.PaymentRepository
	assignmentRepo domain.AssignmentRepository
	audit          *AuditEmitter
}

func NewDefaultPaymentUsecase(paymentRepo domain.PaymentRepository, assignmentRepo domain.AssignmentRepository, audit *AuditEmitter) *DefaultPaymentUsecase {
	return &DefaultPaymentUsecase{
		paymentRepo:    paymentRepo,
		assignmentRepo: assignmentRepo,
		audit:          audit,
	}
}

func (uc *DefaultPaymentUsecase) validate(input *CreatePaymentInput, excludePaymentID string) error {
	verr := domain.NewValidationError()
	if input.AssignedInfluencerID == "" {
		verr.Add("assigned_influencer", "assignment is required")
	} else if _, err := uc.assignmentRepo.GetByID(input.AssignedInfluencerID); err != nil {
		verr.Add("assigned_influencer", "assignment does not exist")
	} else {
		existing, err := uc.paymentRepo.GetByAssignmentID(input.AssignedInfluencerID)
		switch {
		case err == nil && existing.ID != excludePaymentID:
			verr.Add("assigned_influencer", "assignment already has a payment")
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			return err
		}
	}
	if input.BillingStatus != string(domain.BillingUnpaid) && input.BillingStatus != string(domain.BillingPaid) {
		verr.Add("billing_status", "billing status must be UNPAID or PAID")
	}
	if input.Day.IsZero() {
		verr.Add("day", "day is required")
	}
	return verr.ErrOrNil()
}

func (uc *DefaultPaymentUsecase) CreatePayment(actorID string, input *CreatePaymentInput) (*domain.InfluencerPayment, error) {
	if err := uc.validate(input, ""); err != nil {
		return nil, err
	}
	payment := &domain.InfluencerPayment{
		ID:                   uuid.NewString(),
		AssignedInfluencerID: input.AssignedInfluencerID,
		Day:                  input.Day,
		InvoiceURL:           input.InvoiceURL,
		BillingStatus:        domain.BillingStatus(input.BillingStatus),
	}
	if err := uc.paymentRepo.Create(payment); err != nil {
		return nil, err
	}
	uc.audit.Emit("influencer_payment", payment.ID, domain.AuditCreate, actorID, nil, payment)
	return payment, nil
}

func (uc *DefaultPaymentUsecase) UpdatePayment(actorID string, input *UpdatePaymentInput) (*domain.InfluencerPayment, error) {
	before, err := uc.paymentRepo.GetByID(input.PaymentID)
	if err != nil {
		return nil, err
	}
	if err := uc.validate(&input.CreatePaymentInput, input.PaymentID); err != nil {
		return nil, err
	}
	payment := &domain.InfluencerPayment{
		ID:                   input.PaymentID,
		AssignedInfluencerID: input.AssignedInfluencerID,
		Day:                  input.Day,
		InvoiceURL:           input.InvoiceURL,
		BillingStatus:        domain.BillingStatus(input.BillingStatus),
	}
	if err := uc.paymentRepo.Update(payment); err != nil {
		return nil, err
	}
	updated, err := uc.paymentRepo.GetByID(input.PaymentID)
	if err != nil {
		return nil, err
	}
	uc.audit.Emit("influencer_payment", payment.ID, domain.AuditUpdate, actorID, before, updated)
	return updated, nil
}

func (uc *DefaultPaymentUsecase) GetPaymentByID(id string) (*domain.InfluencerPayment, error) {
	return uc.paymentRepo.GetByID(id)
}

func (uc *DefaultPaymentUsecase) ListPayments() ([]*domain.InfluencerPayment, error) {
	return uc.paymentRepo.List()
}

type NotificationUsecase interface {
	ListNotifications() ([]*domain.InfluencerUnPaidNotification, error)
}

type DefaultNotificationUsecase struct {
	notificationRepo domain.NotificationRepository
}

func NewDefaultNotificationUsecase(notificationRepo domain.NotificationRepository) *DefaultNotificationUsecase {
	return &DefaultNotificationUsecase{notificationRepo: notificationRepo}
}

func (uc *DefaultNotificationUsecase) ListNotifications() ([]*domain.InfluencerUnPaidNotification, error) {
	return uc.notificationRepo.List()
}
