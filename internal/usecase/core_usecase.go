package usecase

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"

	"github.com/arabyads/influencer-service/internal/domain"
)

type CategoryUsecase interface {
	CreateCategory(actorID, name string) (*domain.Category, error)
	UpdateCategory(actorID, id, name string) (*domain.Category, error)
	GetCategoryByID(id string) (*domain.Category, error)
	ListCategories() ([]*domain.Category, error)
}

type DefaultCategoryUsecase struct {
	categoryRepo domain.CategoryRepository
	audit        *AuditEmitter
}

func NewDefaultCategoryUsecase(categoryRepo domain.CategoryRepository, audit *AuditEmitter) *DefaultCategoryUsecase {
	return &DefaultCategoryUsecase{categoryRepo: categoryRepo, audit: audit}
}

func validateName(name string) error {
	verr := domain.NewValidationError()
	if name == "" {
		verr.Add("name", "name is required")
	}
	if len(name) > 50 {
		verr.Add("name", "name must be at most 50 characters")
	}
	return verr.ErrOrNil()
}

func (uc *DefaultCategoryUsecase) CreateCategory(actorID, name string) (*domain.Category, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	category := &domain.Category{ID: uuid.NewString(), Name: name}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	uc.audit.Emit("category", category.ID, domain.AuditCreate, actorID, nil, category)
	return category, nil
}

func (uc *DefaultCategoryUsecase) UpdateCategory(actorID, id, name string) (*domain.Category, error) {
	before, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	category := &domain.Category{ID: id, Name: name}
	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	updated, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	uc.audit.Emit("category", id, domain.AuditUpdate, actorID, before, updated)
	return updated, nil
}

func (uc *DefaultCategoryUsecase) GetCategoryByID(id string) (*domain.Category, error) {
	return uc.categoryRepo.GetByID(id)
}

func (uc *DefaultCategoryUsecase) ListCategories() ([]*domain.Category, error) {
	return uc.categoryRepo.List()
}

type SocialPlatformUsecase interface {
	CreateSocialPlatform(actorID, name string) (*domain.SocialPlatform, error)
	UpdateSocialPlatform(actorID, id, name string) (*domain.SocialPlatform, error)
	GetSocialPlatformByID(id string) (*domain.SocialPlatform, error)
	ListSocialPlatforms() ([]*domain.SocialPlatform, error)
}

type DefaultSocialPlatformUsecase struct {
	platformRepo domain.SocialPlatformRepository
	audit        *AuditEmitter
}

func NewDefaultSocialPlatformUsecase(platformRepo domain.SocialPlatformRepository, audit *AuditEmitter) *DefaultSocialPlatformUsecase {
	return &DefaultSocialPlatformUsecase{platformRepo: platformRepo, audit: audit}
}

func (uc *DefaultSocialPlatformUsecase) CreateSocialPlatform(actorID, name string) (*domain.SocialPlatform, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	platform := &domain.SocialPlatform{ID: uuid.NewString(), Name: name}
	if err := uc.platformRepo.Create(platform); err != nil {
		return nil, err
	}
	uc.audit.Emit("social_platform", platform.ID, domain.AuditCreate, actorID, nil, platform)
	return platform, nil
}

func (uc *DefaultSocialPlatformUsecase) UpdateSocialPlatform(actorID, id, name string) (*domain.SocialPlatform, error) {
	before, err := uc.platformRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	platform := &domain.SocialPlatform{ID: id, Name: name}
	if err := uc.platformRepo.Update(platform); err != nil {
		return nil, err
	}
	updated, err := uc.platformRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	uc.audit.Emit("social_platform", id, domain.AuditUpdate, actorID, before, updated)
	return updated, nil
}

func (uc *DefaultSocialPlatformUsecase) GetSocialPlatformByID(id string) (*domain.SocialPlatform, error) {
	return uc.platformRepo.GetByID(id)
}

func (uc *DefaultSocialPlatformUsecase) ListSocialPlatforms() ([]*domain.SocialPlatform, error) {
	return uc.platformRepo.List()
}

type CreateBankInput struct {
	Name  string
	Swift string
}

type UpdateBankInput struct {
	BankID string
	Name   string
	Swift  string
}

type BankUsecase interface {
	CreateBank(actorID string, input *CreateBankInput) (*domain.Bank, error)
	UpdateBank(actorID string, input *UpdateBankInput) (*domain.Bank, error)
	GetBankByID(id string) (*domain.Bank, error)
	ListBanks() ([]*domain.Bank, error)
}

type DefaultBankUsecase struct {
	bankRepo domain.BankRepository
	audit    *AuditEmitter
}

func NewDefaultBankUsecase(bankRepo domain.BankRepository, audit *AuditEmitter) *DefaultBankUsecase {
	return &DefaultBankUsecase{bankRepo: bankRepo, audit: audit}
}

func (uc *DefaultBankUsecase) validate(name, swift, excludeID string) error {
	verr := domain.NewValidationError()
	if name == "" {
		verr.Add("name", "name is required")
	}
	if swift == "" {
		verr.Add("swift", "swift code is required")
	} else {
		taken, err := uc.bankRepo.SwiftExists(swift, excludeID)
		if err != nil {
			return err
		}
		if taken {
			verr.Add("swift", "a bank with this swift code already exists")
		}
	}
	return verr.ErrOrNil()
}

func (uc *DefaultBankUsecase) CreateBank(actorID string, input *CreateBankInput) (*domain.Bank, error) {
	if err := uc.validate(input.Name, input.Swift, ""); err != nil {
		return nil, err
	}
	bank := &domain.Bank{ID: uuid.NewString(), Name: input.Name, Swift: input.Swift}
	if err := uc.bankRepo.Create(bank); err != nil {
		return nil, err
	}
	uc.audit.Emit("bank", bank.ID, domain.AuditCreate, actorID, nil, bank)
	return bank, nil
}

func (uc *DefaultBankUsecase) UpdateBank(actorID string, input *UpdateBankInput) (*domain.Bank, error) {
	before, err := uc.bankRepo.GetByID(input.BankID)
	if err != nil {
		return nil, err
	}
	if err := uc.validate(input.Name, input.Swift, input.BankID); err != nil {
		return nil, err
	}
	bank := &domain.Bank{ID: input.BankID, Name: input.Name, Swift: input.Swift}
	if err := uc.bankRepo.Update(bank); err != nil {
		return nil, err
	}
	updated, err := uc.bankRepo.GetByID(input.BankID)
	if err != nil {
		return nil, err
	}
	uc.audit.Emit("bank", bank.ID, domain.AuditUpdate, actorID, before, updated)
	return updated, nil
}

func (uc *DefaultBankUsecase) GetBankByID(id string) (*domain.Bank, error) {
	return uc.bankRepo.GetByID(id)
}

func (uc *DefaultBankUsecase) ListBanks() ([]*domain.Bank, error) {
	return uc.bankRepo.List()
}

type CreateCouponInput struct {
	Percentage int
	Start      *time.Time
	End        *time.Time
}

type UpdateCouponInput struct {
	CouponID   string
	Percentage int
	Start      *time.Time
	End        *time.Time
}

type CouponUsecase interface {
	CreateCoupon(actorID string, input *CreateCouponInput) (*domain.Coupon, error)
	UpdateCoupon(actorID string, input *UpdateCouponInput) (*domain.Coupon, error)
	GetCouponByID(id string) (*domain.Coupon, error)
	ListCoupons() ([]*domain.Coupon, error)
}

type DefaultCouponUsecase struct {
	couponRepo domain.CouponRepository
	audit      *AuditEmitter
}

func NewDefaultCouponUsecase(couponRepo domain.CouponRepository, audit *AuditEmitter) *DefaultCouponUsecase {
	return &DefaultCouponUsecase{couponRepo: couponRepo, audit: audit}
}

func validateCoupon(percentage int, start, end *time.Time) error {
	verr := domain.NewValidationError()
	if percentage <= 0 || percentage > 100 {
		verr.Add("percentage", "percentage must be between 1 and 100")
	}
	if start != nil && end != nil && end.Before(*start) {
		verr.Add("end", "end date must not precede start date")
	}
	return verr.ErrOrNil()
}

// couponCode builds codes like "XKQD20": four random uppercase letters
// followed by the discount percentage. The numeric tail lets sales staff
// read the discount straight off the code.
func couponCode(percentage int) (string, error) {
	gen, err := nanoid.CustomASCII("ABCDEFGHIJKLMNOPQRSTUVWXYZ", 4)
	if err != nil {
		return "", err
	}
	return gen() + strconv.Itoa(percentage), nil
}

func (uc *DefaultCouponUsecase) CreateCoupon(actorID string, input *CreateCouponInput) (*domain.Coupon, error) {
	if err := validateCoupon(input.Percentage, input.Start, input.End); err != nil {
		return nil, err
	}
	code, err := couponCode(input.Percentage)
	if err != nil {
		return nil, err
	}
	coupon := &domain.Coupon{
		ID:         uuid.NewString(),
		Percentage: input.Percentage,
		Code:       code,
		Start:      input.Start,
		End:        input.End,
	}
	if err := uc.couponRepo.Create(coupon); err != nil {
		return nil, err
	}
	uc.audit.Emit("coupon", coupon.ID, domain.AuditCreate, actorID, nil, coupon)
	return coupon, nil
}

// UpdateCoupon regenerates the code when the percentage changes so the
// numeric tail never lies about the discount.
func (uc *DefaultCouponUsecase) UpdateCoupon(actorID string, input *UpdateCouponInput) (*domain.Coupon, error) {
	before, err := uc.couponRepo.GetByID(input.CouponID)
	if err != nil {
		return nil, err
	}
	if err := validateCoupon(input.Percentage, input.Start, input.End); err != nil {
		return nil, err
	}
	code := before.Code
	if input.Percentage != before.Percentage {
		code, err = couponCode(input.Percentage)
		if err != nil {
			return nil, err
		}
	}
	coupon := &domain.Coupon{
		ID:         input.CouponID,
		Percentage: input.Percentage,
		Code:       code,
		Start:      input.Start,
		End:        input.End,
	}
	if err := uc.couponRepo.Update(coupon); err != nil {
		return nil, err
	}
	updated, err := uc.couponRepo.GetByID(input.CouponID)
	if err != nil {
		return nil, err
	}
	uc.audit.Emit("coupon", coupon.ID, domain.AuditUpdate, actorID, before, updated)
	return updated, nil
}

func (uc *DefaultCouponUsecase) GetCouponByID(id string) (*domain.Coupon, error) {
	return uc.couponRepo.GetByID(id)
}

func (uc *DefaultCouponUsecase) ListCoupons() ([]*domain.Coupon, error) {
	return uc.couponRepo.List()
}
