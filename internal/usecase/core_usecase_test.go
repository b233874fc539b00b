package usecase

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arabyads/influencer-service/internal/domain"
)

type memCouponRepo struct {
	coupons map[string]*domain.Coupon
}

func newMemCouponRepo() *memCouponRepo {
	return &memCouponRepo{coupons: make(map[string]*domain.Coupon)}
}

func (r *memCouponRepo) Create(coupon *domain.Coupon) error {
	copied := *coupon
	r.coupons[coupon.ID] = &copied
	return nil
}

func (r *memCouponRepo) Update(coupon *domain.Coupon) error {
	if _, ok := r.coupons[coupon.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *coupon
	r.coupons[coupon.ID] = &copied
	return nil
}

func (r *memCouponRepo) GetByID(id string) (*domain.Coupon, error) {
	coupon, ok := r.coupons[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *coupon
	return &copied, nil
}

func (r *memCouponRepo) List() ([]*domain.Coupon, error) {
	out := make([]*domain.Coupon, 0, len(r.coupons))
	for _, coupon := range r.coupons {
		out = append(out, coupon)
	}
	return out, nil
}

func (r *memCouponRepo) SoftDelete(id string) error {
	if _, ok := r.coupons[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.coupons, id)
	return nil
}

var couponCodeRe = regexp.MustCompile(`^[A-Z]{4}[0-9]+$`)

func TestCreateCoupon_GeneratesReadableCode(t *testing.T) {
	uc := NewDefaultCouponUsecase(newMemCouponRepo(), NewAuditEmitter())

	coupon, err := uc.CreateCoupon("actor-1", &CreateCouponInput{Percentage: 20})
	require.NoError(t, err)

	assert.Regexp(t, couponCodeRe, coupon.Code)
	assert.True(t, strings.HasSuffix(coupon.Code, "20"), "code %q should end with the percentage", coupon.Code)
}

func TestCreateCoupon_RejectsPercentageOutOfRange(t *testing.T) {
	uc := NewDefaultCouponUsecase(newMemCouponRepo(), NewAuditEmitter())

	for _, percentage := range []int{0, -5, 101} {
		_, err := uc.CreateCoupon("actor-1", &CreateCouponInput{Percentage: percentage})
		verr, ok := domain.IsValidation(err)
		require.True(t, ok, "percentage %d should be rejected", percentage)
		assert.Contains(t, verr.Fields, "percentage")
	}
}

func TestUpdateCoupon_KeepsCodeWhenPercentageUnchanged(t *testing.T) {
	repo := newMemCouponRepo()
	uc := NewDefaultCouponUsecase(repo, NewAuditEmitter())

	created, err := uc.CreateCoupon("actor-1", &CreateCouponInput{Percentage: 15})
	require.NoError(t, err)

	updated, err := uc.UpdateCoupon("actor-1", &UpdateCouponInput{CouponID: created.ID, Percentage: 15})
	require.NoError(t, err)
	assert.Equal(t, created.Code, updated.Code)
}

func TestUpdateCoupon_RegeneratesCodeOnPercentageChange(t *testing.T) {
	repo := newMemCouponRepo()
	uc := NewDefaultCouponUsecase(repo, NewAuditEmitter())

	created, err := uc.CreateCoupon("actor-1", &CreateCouponInput{Percentage: 15})
	require.NoError(t, err)

	updated, err := uc.UpdateCoupon("actor-1", &UpdateCouponInput{CouponID: created.ID, Percentage: 30})
	require.NoError(t, err)
	assert.NotEqual(t, created.Code, updated.Code)
	assert.True(t, strings.HasSuffix(updated.Code, "30"), "code %q should end with the new percentage", updated.Code)
}

type memBankRepo struct {
	banks map[string]*domain.Bank
}

func newMemBankRepo() *memBankRepo {
	return &memBankRepo{banks: make(map[string]*domain.Bank)}
}

func (r *memBankRepo) Create(bank *domain.Bank) error {
	copied := *bank
	r.banks[bank.ID] = &copied
	return nil
}

func (r *memBankRepo) Update(bank *domain.Bank) error {
	if _, ok := r.banks[bank.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *bank
	r.banks[bank.ID] = &copied
	return nil
}

func (r *memBankRepo) GetByID(id string) (*domain.Bank, error) {
	bank, ok := r.banks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *bank
	return &copied, nil
}

func (r *memBankRepo) List() ([]*domain.Bank, error) {
	out := make([]*domain.Bank, 0, len(r.banks))
	for _, bank := range r.banks {
		out = append(out, bank)
	}
	return out, nil
}

func (r *memBankRepo) SwiftExists(swift, excludeID string) (bool, error) {
	for _, bank := range r.banks {
		if bank.Swift == swift && bank.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memBankRepo) SoftDelete(id string) error {
	if _, ok := r.banks[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.banks, id)
	return nil
}

func TestCreateBank_RejectsDuplicateSwift(t *testing.T) {
	repo := newMemBankRepo()
	uc := NewDefaultBankUsecase(repo, NewAuditEmitter())

	_, err := uc.CreateBank("actor-1", &CreateBankInput{Name: "First Bank", Swift: "FIRBAEAD"})
	require.NoError(t, err)

	_, err = uc.CreateBank("actor-1", &CreateBankInput{Name: "Second Bank", Swift: "FIRBAEAD"})
	verr, ok := domain.IsValidation(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "swift")
}

func TestUpdateBank_OwnSwiftIsNotADuplicate(t *testing.T) {
	repo := newMemBankRepo()
	uc := NewDefaultBankUsecase(repo, NewAuditEmitter())

	created, err := uc.CreateBank("actor-1", &CreateBankInput{Name: "First Bank", Swift: "FIRBAEAD"})
	require.NoError(t, err)

	updated, err := uc.UpdateBank("actor-1", &UpdateBankInput{BankID: created.ID, Name: "First Bank Renamed", Swift: "FIRBAEAD"})
	require.NoError(t, err)
	assert.Equal(t, "First Bank Renamed", updated.Name)
}

type memCategoryRepo struct {
	categories map[string]*domain.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: make(map[string]*domain.Category)}
}

func (r *memCategoryRepo) Create(category *domain.Category) error {
	copied := *category
	r.categories[category.ID] = &copied
	return nil
}

func (r *memCategoryRepo) Update(category *domain.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *category
	r.categories[category.ID] = &copied
	return nil
}

func (r *memCategoryRepo) GetByID(id string) (*domain.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *category
	return &copied, nil
}

func (r *memCategoryRepo) List() ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(r.categories))
	for _, category := range r.categories {
		out = append(out, category)
	}
	return out, nil
}

func (r *memCategoryRepo) SoftDelete(id string) error {
	if _, ok := r.categories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.categories, id)
	return nil
}

func TestCreateCategory_RejectsOverlongName(t *testing.T) {
	uc := NewDefaultCategoryUsecase(newMemCategoryRepo(), NewAuditEmitter())

	_, err := uc.CreateCategory("actor-1", strings.Repeat("x", 51))
	verr, ok := domain.IsValidation(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "name")
}

func TestUpdateCategory_MissingRow(t *testing.T) {
	uc := NewDefaultCategoryUsecase(newMemCategoryRepo(), NewAuditEmitter())

	_, err := uc.UpdateCategory("actor-1", "nope", "Fashion")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
