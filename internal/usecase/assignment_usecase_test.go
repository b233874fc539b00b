package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arabyads/influencer-service/internal/domain"
)

type memAccountRepo struct {
	accounts map[string]*domain.SocialAccount
}

func (r *memAccountRepo) Create(account *domain.SocialAccount) error { return nil }
func (r *memAccountRepo) Update(account *domain.SocialAccount) error { return nil }
func (r *memAccountRepo) GetByID(id string) (*domain.SocialAccount, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return account, nil
}
func (r *memAccountRepo) List() ([]*domain.SocialAccount, error) { return nil, nil }
func (r *memAccountRepo) ListByInfluencerID(string) ([]*domain.SocialAccount, error) {
	return nil, nil
}
func (r *memAccountRepo) SoftDelete(string) error { return nil }

type memInfluencerRepo struct {
	influencers map[string]*domain.Influencer
}

func (r *memInfluencerRepo) Create(*domain.Influencer) error { return nil }
func (r *memInfluencerRepo) Update(*domain.Influencer) error { return nil }
func (r *memInfluencerRepo) GetByID(id string) (*domain.Influencer, error) {
	influencer, ok := r.influencers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return influencer, nil
}
func (r *memInfluencerRepo) List() ([]*domain.Influencer, error)        { return nil, nil }
func (r *memInfluencerRepo) IBANExists(string, string) (bool, error)    { return false, nil }
func (r *memInfluencerRepo) SoftDelete(string) error                    { return nil }

type memCampaignRepo struct {
	campaigns map[string]*domain.Campaign
}

func (r *memCampaignRepo) Create(*domain.Campaign) error { return nil }
func (r *memCampaignRepo) Update(*domain.Campaign) error { return nil }
func (r *memCampaignRepo) GetByID(id string) (*domain.Campaign, error) {
	campaign, ok := r.campaigns[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return campaign, nil
}
func (r *memCampaignRepo) List(domain.ClientScope) ([]*domain.Campaign, error) { return nil, nil }
func (r *memCampaignRepo) ListByOfferID(string) ([]*domain.Campaign, error)    { return nil, nil }
func (r *memCampaignRepo) SoftDelete(string) error                             { return nil }

type memAssignmentRepo struct {
	created []*domain.AssignedInfluencer
}

func (r *memAssignmentRepo) Create(assignment *domain.AssignedInfluencer) error {
	r.created = append(r.created, assignment)
	return nil
}
func (r *memAssignmentRepo) Update(*domain.AssignedInfluencer) error { return nil }
func (r *memAssignmentRepo) GetByID(string) (*domain.AssignedInfluencer, error) {
	return nil, domain.ErrNotFound
}
func (r *memAssignmentRepo) List() ([]*domain.AssignedInfluencer, error) { return nil, nil }
func (r *memAssignmentRepo) ListByCampaignID(string) ([]*domain.AssignedInfluencer, error) {
	return nil, nil
}
func (r *memAssignmentRepo) ListByInfluencerID(string) ([]*domain.AssignedInfluencer, error) {
	return nil, nil
}
func (r *memAssignmentRepo) ListBySocialAccountID(string) ([]*domain.AssignedInfluencer, error) {
	return nil, nil
}
func (r *memAssignmentRepo) FindUnpaidBetween(start, end time.Time) ([]*domain.AssignedInfluencer, error) {
	return nil, nil
}
func (r *memAssignmentRepo) TotalSales(string, domain.HistoryDataType) (float64, error) {
	return 0, nil
}
func (r *memAssignmentRepo) SoftDelete(string) error { return nil }

func newTestAssignmentUsecase(t *testing.T) (*DefaultAssignmentUsecase, *memAssignmentRepo, *domain.Coupon) {
	t.Helper()

	accounts := &memAccountRepo{accounts: map[string]*domain.SocialAccount{
		"acc-1": {ID: "acc-1", InfluencerID: "inf-1", Username: "amira.style"},
	}}
	influencers := &memInfluencerRepo{influencers: map[string]*domain.Influencer{
		"inf-1": {ID: "inf-1", Name: "Amira"},
	}}
	campaigns := &memCampaignRepo{campaigns: map[string]*domain.Campaign{
		"camp-1": {ID: "camp-1", OfferID: "off-1"},
	}}

	couponRepo := newMemCouponRepo()
	couponUsecase := NewDefaultCouponUsecase(couponRepo, NewAuditEmitter())
	coupon, err := couponUsecase.CreateCoupon("actor-1", &CreateCouponInput{Percentage: 10})
	require.NoError(t, err)

	repo := &memAssignmentRepo{}
	uc := NewDefaultAssignmentUsecase(repo, accounts, influencers, campaigns, couponRepo, NewAuditEmitter())
	return uc, repo, coupon
}

func validAssignmentInput(couponID string) *CreateAssignmentInput {
	return &CreateAssignmentInput{
		SocialAccountID: "acc-1",
		InfluencerID:    "inf-1",
		CampaignID:      "camp-1",
		CouponID:        couponID,
		Billing:         string(domain.AssignmentFixedCost),
		Cost:            500,
		Day:             time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateAssignment_PersistsWithValidCoupon(t *testing.T) {
	uc, repo, coupon := newTestAssignmentUsecase(t)

	assignment, err := uc.CreateAssignment("actor-1", validAssignmentInput(coupon.ID))

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, coupon.ID, assignment.CouponID)
}

func TestCreateAssignment_RequiresCoupon(t *testing.T) {
	uc, repo, _ := newTestAssignmentUsecase(t)

	_, err := uc.CreateAssignment("actor-1", validAssignmentInput(""))

	verr, ok := domain.IsValidation(err)
	require.True(t, ok, "missing coupon must be a field-level rejection")
	assert.Contains(t, verr.Fields, "coupon")
	assert.Empty(t, repo.created, "nothing may reach the store without a coupon")
}

func TestCreateAssignment_RejectsUnknownCoupon(t *testing.T) {
	uc, repo, _ := newTestAssignmentUsecase(t)

	_, err := uc.CreateAssignment("actor-1", validAssignmentInput("nope"))

	verr, ok := domain.IsValidation(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "coupon")
	assert.Empty(t, repo.created)
}

func TestCreateAssignment_AccountMustBelongToInfluencer(t *testing.T) {
	uc, repo, coupon := newTestAssignmentUsecase(t)

	input := validAssignmentInput(coupon.ID)
	input.InfluencerID = "inf-1"
	input.SocialAccountID = "acc-1"
	uc.accountRepo.(*memAccountRepo).accounts["acc-1"].InfluencerID = "inf-other"

	_, err := uc.CreateAssignment("actor-1", input)

	verr, ok := domain.IsValidation(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "social_account")
	assert.Empty(t, repo.created)
}
