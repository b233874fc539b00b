package mappers

import (
	"github.com/arabyads/influencer-service/internal/domain"
	"github.com/arabyads/influencer-service/internal/infrastructure/postgres/models"
)

func ToDomainAssignment(model *models.AssignedInfluencerModel) *domain.AssignedInfluencer {
	assignment := &domain.AssignedInfluencer{
		ID:              model.ID,
		SocialAccountID: model.SocialAccountID,
		InfluencerID:    model.InfluencerID,
		CampaignID:      model.CampaignID,
		CouponID:        model.CouponID,
		Billing:         model.Billing,
		Cost:            model.Cost,
		Discount:        model.Discount,
		Day:             model.Day,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
	if model.Influencer.ID != "" {
		assignment.InfluencerName = model.Influencer.Name
	}
	return assignment
}

func ToGORMAssignment(assignment *domain.AssignedInfluencer) *models.AssignedInfluencerModel {
	return &models.AssignedInfluencerModel{
		ID:              assignment.ID,
		SocialAccountID: assignment.SocialAccountID,
		InfluencerID:    assignment.InfluencerID,
		CampaignID:      assignment.CampaignID,
		CouponID:        assignment.CouponID,
		Billing:         assignment.Billing,
		Cost:            assignment.Cost,
		Discount:        assignment.Discount,
		Day:             assignment.Day,
		CreatedAt:       assignment.CreatedAt,
		UpdatedAt:       assignment.UpdatedAt,
	}
}

func ToDomainHistory(model *models.InfluencerHistoryModel) *domain.InfluencerHistory {
	return &domain.InfluencerHistory{
		ID:                   model.ID,
		AssignedInfluencerID: model.AssignedInfluencerID,
		DataType:             model.DataType,
		NoSales:              model.NoSales,
		DaySales:             model.DaySales,
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
	}
}

func ToGORMHistory(history *domain.InfluencerHistory) *models.InfluencerHistoryModel {
	return &models.InfluencerHistoryModel{
		ID:                   history.ID,
		AssignedInfluencerID: history.AssignedInfluencerID,
		DataType:             history.DataType,
		NoSales:              history.NoSales,
		DaySales:             history.DaySales,
		CreatedAt:            history.CreatedAt,
		UpdatedAt:            history.UpdatedAt,
	}
}

func ToDomainPayment(model *models.InfluencerPaymentModel) *domain.InfluencerPayment {
	return &domain.InfluencerPayment{
		ID:                   model.ID,
		AssignedInfluencerID: model.AssignedInfluencerID,
		Day:                  model.Day,
		InvoiceURL:           model.InvoiceURL,
		BillingStatus:        model.BillingStatus,
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
	}
}

func ToGORMPayment(payment *domain.InfluencerPayment) *models.InfluencerPaymentModel {
	return &models.InfluencerPaymentModel{
		ID:                   payment.ID,
		AssignedInfluencerID: payment.AssignedInfluencerID,
		Day:                  payment.Day,
		InvoiceURL:           payment.InvoiceURL,
		BillingStatus:        payment.BillingStatus,
		CreatedAt:            payment.CreatedAt,
		UpdatedAt:            payment.UpdatedAt,
	}
}

func ToDomainNotification(model *models.InfluencerUnPaidNotificationModel) *domain.InfluencerUnPaidNotification {
	return &domain.InfluencerUnPaidNotification{
		ID:           model.ID,
		InfluencerID: model.InfluencerID,
		Cost:         model.Cost,
		Day:          model.Day,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func ToGORMNotification(notification *domain.InfluencerUnPaidNotification) *models.InfluencerUnPaidNotificationModel {
	return &models.InfluencerUnPaidNotificationModel{
		ID:           notification.ID,
		InfluencerID: notification.InfluencerID,
		Cost:         notification.Cost,
		Day:          notification.Day,
		CreatedAt:    notification.CreatedAt,
		UpdatedAt:    notification.UpdatedAt,
	}
}
