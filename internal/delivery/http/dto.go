package http

import (
	"time"

	"github.com/arabyads/influencer-service/internal/domain"
)

const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

type clientResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	AccountManagerID string    `json:"account_manager_id"`
	Phone            string    `json:"phone"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func toClientResponse(client *domain.Client) clientResponse {
	return clientResponse{
		ID:               client.ID,
		Name:             client.Name,
		Email:            client.Email,
		AccountManagerID: client.AccountManagerID,
		Phone:            client.Phone,
		CreatedAt:        client.CreatedAt,
		UpdatedAt:        client.UpdatedAt,
	}
}

func toClientResponses(clients []*domain.Client) []clientResponse {
	out := make([]clientResponse, len(clients))
	for i, client := range clients {
		out[i] = toClientResponse(client)
	}
	return out
}

type offerResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ClientID   string    `json:"client_id"`
	CategoryID string    `json:"category_id"`
	Billing    string    `json:"billing_method"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toOfferResponse(offer *domain.Offer) offerResponse {
	return offerResponse{
		ID:         offer.ID,
		Name:       offer.Name,
		ClientID:   offer.ClientID,
		CategoryID: offer.CategoryID,
		Billing:    string(offer.Billing),
		CreatedAt:  offer.CreatedAt,
		UpdatedAt:  offer.UpdatedAt,
	}
}

func toOfferResponses(offers []*domain.Offer) []offerResponse {
	out := make([]offerResponse, len(offers))
	for i, offer := range offers {
		out[i] = toOfferResponse(offer)
	}
	return out
}

type campaignResponse struct {
	ID               string     `json:"id"`
	OfferID          string     `json:"offer_id"`
	AccountManagerID string     `json:"account_manager_id"`
	CostFixed        float64    `json:"cost_fixed"`
	CostPercentage   float64    `json:"cost_percentage"`
	DiscountPercent  float64    `json:"discount_percent"`
	Start            *time.Time `json:"start"`
	End              *time.Time `json:"end"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func toCampaignResponse(campaign *domain.Campaign) campaignResponse {
	return campaignResponse{
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

func toCampaignResponses(campaigns []*domain.Campaign) []campaignResponse {
	out := make([]campaignResponse, len(campaigns))
	for i, campaign := range campaigns {
		out[i] = toCampaignResponse(campaign)
	}
	return out
}

type influencerResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Gender            string    `json:"gender"`
	CategoryID        string    `json:"category_id,omitempty"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	BankID            string    `json:"bank_id,omitempty"`
	IBAN              string    `json:"iban"`
	AccountHolderName string    `json:"account_holder_name"`
	City              string    `json:"city"`
	Branch            string    `json:"branch"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func toInfluencerResponse(influencer *domain.Influencer) influencerResponse {
	return influencerResponse{
		ID:                influencer.ID,
		Name:              influencer.Name,
		Gender:            string(influencer.Gender),
		CategoryID:        influencer.CategoryID,
		Phone:             influencer.Phone,
		Email:             influencer.Email,
		BankID:            influencer.BankID,
		IBAN:              influencer.IBAN,
		AccountHolderName: influencer.AccountHolderName,
		City:              influencer.City,
		Branch:            influencer.Branch,
		CreatedAt:         influencer.CreatedAt,
		UpdatedAt:         influencer.UpdatedAt,
	}
}

func toInfluencerResponses(influencers []*domain.Influencer) []influencerResponse {
	out := make([]influencerResponse, len(influencers))
	for i, influencer := range influencers {
		out[i] = toInfluencerResponse(influencer)
	}
	return out
}

type socialAccountResponse struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PlatformID   string    `json:"social_platform_id"`
	InfluencerID string    `json:"influencer_id"`
	Cost         float64   `json:"cost"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toSocialAccountResponse(account *domain.SocialAccount) socialAccountResponse {
	return socialAccountResponse{
		ID:           account.ID,
		Username:     account.Username,
		PlatformID:   account.PlatformID,
		InfluencerID: account.InfluencerID,
		Cost:         account.Cost,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}
}

func toSocialAccountResponses(accounts []*domain.SocialAccount) []socialAccountResponse {
	out := make([]socialAccountResponse, len(accounts))
	for i, account := range accounts {
		out[i] = toSocialAccountResponse(account)
	}
	return out
}

type namedResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toCategoryResponse(category *domain.Category) namedResponse {
	return namedResponse{ID: category.ID, Name: category.Name, CreatedAt: category.CreatedAt, UpdatedAt: category.UpdatedAt}
}

func toPlatformResponse(platform *domain.SocialPlatform) namedResponse {
	return namedResponse{ID: platform.ID, Name: platform.Name, CreatedAt: platform.CreatedAt, UpdatedAt: platform.UpdatedAt}
}

type bankResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Swift     string    `json:"swift"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toBankResponse(bank *domain.Bank) bankResponse {
	return bankResponse{ID: bank.ID, Name: bank.Name, Swift: bank.Swift, CreatedAt: bank.CreatedAt, UpdatedAt: bank.UpdatedAt}
}

type couponResponse struct {
	ID         string     `json:"id"`
	Percentage int        `json:"percentage"`
	Code       string     `json:"code"`
	Start      *time.Time `json:"start"`
	End        *time.Time `json:"end"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func toCouponResponse(coupon *domain.Coupon) couponResponse {
	return couponResponse{
		ID:         coupon.ID,
		Percentage: coupon.Percentage,
		Code:       coupon.Code,
		Start:      coupon.Start,
		End:        coupon.End,
		CreatedAt:  coupon.CreatedAt,
		UpdatedAt:  coupon.UpdatedAt,
	}
}

type assignmentResponse struct {
	ID              string    `json:"id"`
	SocialAccountID string    `json:"social_account_id"`
	InfluencerID    string    `json:"influencer_id"`
	InfluencerName  string    `json:"influencer_name,omitempty"`
	CampaignID      string    `json:"campaign_id"`
	CouponID        string    `json:"coupon_id,omitempty"`
	Billing         string    `json:"commission_type"`
	Cost            float64   `json:"cost"`
	Discount        int       `json:"discount"`
	Day             string    `json:"day"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toAssignmentResponse(assignment *domain.AssignedInfluencer) assignmentResponse {
	return assignmentResponse{
		ID:              assignment.ID,
		SocialAccountID: assignment.SocialAccountID,
		InfluencerID:    assignment.InfluencerID,
		InfluencerName:  assignment.InfluencerName,
		CampaignID:      assignment.CampaignID,
		CouponID:        assignment.CouponID,
		Billing:         string(assignment.Billing),
		Cost:            assignment.Cost,
		Discount:        assignment.Discount,
		Day:             formatDate(assignment.Day),
		CreatedAt:       assignment.CreatedAt,
		UpdatedAt:       assignment.UpdatedAt,
	}
}

func toAssignmentResponses(assignments []*domain.AssignedInfluencer) []assignmentResponse {
	out := make([]assignmentResponse, len(assignments))
	for i, assignment := range assignments {
		out[i] = toAssignmentResponse(assignment)
	}
	return out
}

type historyResponse struct {
	ID                   string    `json:"id"`
	AssignedInfluencerID string    `json:"assigned_influencer_id"`
	DataType             string    `json:"data_type"`
	NoSales              float64   `json:"no_sales"`
	DaySales             string    `json:"day_sales"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func toHistoryResponse(history *domain.InfluencerHistory) historyResponse {
	return historyResponse{
		ID:                   history.ID,
		AssignedInfluencerID: history.AssignedInfluencerID,
		DataType:             string(history.DataType),
		NoSales:              history.NoSales,
		DaySales:             formatDate(history.DaySales),
		CreatedAt:            history.CreatedAt,
		UpdatedAt:            history.UpdatedAt,
	}
}

type paymentResponse struct {
	ID                   string    `json:"id"`
	AssignedInfluencerID string    `json:"assigned_influencer_id"`
	Day                  string    `json:"day"`
	InvoiceURL           string    `json:"invoice_url"`
	BillingStatus        string    `json:"billing_status"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func toPaymentResponse(payment *domain.InfluencerPayment) paymentResponse {
	return paymentResponse{
		ID:                   payment.ID,
		AssignedInfluencerID: payment.AssignedInfluencerID,
		Day:                  formatDate(payment.Day),
		InvoiceURL:           payment.InvoiceURL,
		BillingStatus:        string(payment.BillingStatus),
		CreatedAt:            payment.CreatedAt,
		UpdatedAt:            payment.UpdatedAt,
	}
}

type notificationResponse struct {
	ID           string    `json:"id"`
	InfluencerID string    `json:"influencer_id"`
	Cost         float64   `json:"cost"`
	Day          string    `json:"day"`
	CreatedAt    time.Time `json:"created_at"`
}

func toNotificationResponse(notification *domain.InfluencerUnPaidNotification) notificationResponse {
	return notificationResponse{
		ID:           notification.ID,
		InfluencerID: notification.InfluencerID,
		Cost:         notification.Cost,
		Day:          formatDate(notification.Day),
		CreatedAt:    notification.CreatedAt,
	}
}

type userResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	IsStaff    bool      `json:"is_staff"`
	IsActive   bool      `json:"is_active"`
	DateJoined time.Time `json:"date_joined"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toUserResponse(user *domain.User) userResponse {
	return userResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		IsStaff:    user.IsStaff,
		IsActive:   user.IsActive,
		DateJoined: user.DateJoined,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

type auditEntryResponse struct {
	ID         uint      `json:"id"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Action     string    `json:"action"`
	ActorID    string    `json:"actor_id,omitempty"`
	Before     string    `json:"before"`
	After      string    `json:"after"`
	CreatedAt  time.Time `json:"created_at"`
}

func toAuditEntryResponse(entry *domain.AuditEntry) auditEntryResponse {
	return auditEntryResponse{
		ID:         entry.ID,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Action:     string(entry.Action),
		ActorID:    entry.ActorID,
		Before:     entry.Before,
		After:      entry.After,
		CreatedAt:  entry.CreatedAt,
	}
}
