package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/arabyads/influencer-service/internal/domain"
	"github.com/arabyads/influencer-service/internal/infrastructure/postgres/mappers"
	"github.com/arabyads/influencer-service/internal/infrastructure/postgres/models"
)

type DefaultAssignmentRepository struct {
	db *gorm.DB
}

func NewDefaultAssignmentRepository(db *gorm.DB) *DefaultAssignmentRepository {
	return &DefaultAssignmentRepository{db: db}
}

func (r *DefaultAssignmentRepository) Create(assignment *domain.AssignedInfluencer) error {
	return r.db.Create(mappers.ToGORMAssignment(assignment)).Error
}

func (r *DefaultAssignmentRepository) Update(assignment *domain.AssignedInfluencer) error {
	return r.db.Model(&models.AssignedInfluencerModel{ID: assignment.ID}).Updates(map[string]any{
		"social_account_id": assignment.SocialAccountID,
		"influencer_id":     assignment.InfluencerID,
		"campaign_id":       assignment.CampaignID,
		"coupon_id":         assignment.CouponID,
		"billing":           assignment.Billing,
		"cost":              assignment.Cost,
		"discount":          assignment.Discount,
		"day":               assignment.Day,
	}).Error
}

func (r *DefaultAssignmentRepository) GetByID(id string) (*domain.AssignedInfluencer, error) {
	var model models.AssignedInfluencerModel
	if err := r.db.Preload("Influencer").Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translateErr(err)
	}
	return mappers.ToDomainAssignment(&model), nil
}

func (r *DefaultAssignmentRepository) List() ([]*domain.AssignedInfluencer, error) {
	var assignmentModels []models.AssignedInfluencerModel
	if err := r.db.
		Joins("JOIN influencer_models ON influencer_models.id = assigned_influencer_models.influencer_id").
		Preload("Influencer").
		Order("influencer_models.name").
		Find(&assignmentModels).Error; err != nil {
		return nil, err
	}
	return toDomainAssignments(assignmentModels), nil
}

func (r *DefaultAssignmentRepository) ListByCampaignID(campaignID string) ([]*domain.AssignedInfluencer, error) {
	var assignmentModels []models.AssignedInfluencerModel
	if err := r.db.
		Joins("JOIN influencer_models ON influencer_models.id = assigned_influencer_models.influencer_id").
		Preload("Influencer").
		Where("assigned_influencer_models.campaign_id = ?", campaignID).
		Order("influencer_models.name").
		Find(&assignmentModels).Error; err != nil {
		return nil, err
	}
	return toDomainAssignments(assignmentModels), nil
}

func (r *DefaultAssignmentRepository) ListByInfluencerID(influencerID string) ([]*domain.AssignedInfluencer, error) {
	var assignmentModels []models.AssignedInfluencerModel
	if err := r.db.
		Preload("Influencer").
		Where("influencer_id = ?", influencerID).
		Order("day").
		Find(&assignmentModels).Error; err != nil {
		return nil, err
	}
	return toDomainAssignments(assignmentModels), nil
}

func (r *DefaultAssignmentRepository) ListBySocialAccountID(socialAccountID string) ([]*domain.AssignedInfluencer, error) {
	var assignmentModels []models.AssignedInfluencerModel
	if err := r.db.
		Preload("Influencer").
		Where("social_account_id = ?", socialAccountID).
		Order("day").
		Find(&assignmentModels).Error; err != nil {
		return nil, err
	}
	return toDomainAssignments(assignmentModels), nil
}

// FindUnpaidBetween selects assignments due in [start, end] that either have
// no payment row or an UNPAID one. The payment join is restricted to live
// rows so a soft-deleted payment counts as absent.
func (r *DefaultAssignmentRepository) FindUnpaidBetween(start, end time.Time) ([]*domain.AssignedInfluencer, error) {
	var assignmentModels []models.AssignedInfluencerModel
	if err := r.db.
		Joins("JOIN influencer_models ON influencer_models.id = assigned_influencer_models.influencer_id").
		Joins("LEFT JOIN influencer_payment_models ON influencer_payment_models.assigned_influencer_id = assigned_influencer_models.id AND influencer_payment_models.deleted_at IS NULL").
		Where("assigned_influencer_models.day BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Where("influencer_payment_models.id IS NULL OR influencer_payment_models.billing_status = ?", domain.BillingUnpaid).
		Preload("Influencer").
		Order("influencer_models.name").
		Find(&assignmentModels).Error; err != nil {
		return nil, err
	}
	return toDomainAssignments(assignmentModels), nil
}

func (r *DefaultAssignmentRepository) TotalSales(assignmentID string, dataType domain.HistoryDataType) (float64, error) {
	var total *float64
	if err := r.db.Model(&models.InfluencerHistoryModel{}).
		Select("SUM(no_sales)").
		Where("assigned_influencer_id = ? AND data_type = ?", assignmentID, dataType).
		Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (r *DefaultAssignmentRepository) SoftDelete(id string) error {
	result := r.db.Delete(&models.AssignedInfluencerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toDomainAssignments(assignmentModels []models.AssignedInfluencerModel) []*domain.AssignedInfluencer {
	assignments := make([]*domain.AssignedInfluencer, len(assignmentModels))
	for i, model := range assignmentModels {
		assignments[i] = mappers.ToDomainAssignment(&model)
	}
	return assignments
}

type DefaultHistoryRepository struct {
	db *gorm.DB
}

func NewDefaultHistoryRepository(db *gorm.DB) *DefaultHistoryRepository {
	return &DefaultHistoryRepository{db: db}
}

func (r *DefaultHistoryRepository) Create(history *domain.InfluencerHistory) error {
	return r.db.Create(mappers.ToGORMHistory(history)).Error
}

func (r *DefaultHistoryRepository) Update(history *domain.InfluencerHistory) error {
	return r.db.Model(&models.InfluencerHistoryModel{ID: history.ID}).Updates(map[string]any{
		"data_type": history.DataType,
		"no_sales":  history.NoSales,
		"day_sales": history.DaySales,
	}).Error
}

func (r *DefaultHistoryRepository) GetByID(id string) (*domain.InfluencerHistory, error) {
	var model models.InfluencerHistoryModel
	if err := r.db.Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translateErr(err)
	}
	return mappers.ToDomainHistory(&model), nil
}

func (r *DefaultHistoryRepository) ListByAssignmentID(assignmentID string) ([]*domain.InfluencerHistory, error) {
	var historyModels []models.InfluencerHistoryModel
	if err := r.db.Where("assigned_influencer_id = ?", assignmentID).Order("day_sales").Find(&historyModels).Error; err != nil {
		return nil, err
	}
	histories := make([]*domain.InfluencerHistory, len(historyModels))
	for i, model := range historyModels {
		histories[i] = mappers.ToDomainHistory(&model)
	}
	return histories, nil
}

func (r *DefaultHistoryRepository) SoftDelete(id string) error {
	result := r.db.Delete(&models.InfluencerHistoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type DefaultPaymentRepository struct {
	db *gorm.DB
}

func NewDefaultPaymentRepository(db *gorm.DB) *DefaultPaymentRepository {
	return &DefaultPaymentRepository{db: db}
}

func (r *DefaultPaymentRepository) Create(payment *domain.InfluencerPayment) error {
	return r.db.Create(mappers.ToGORMPayment(payment)).Error
}

func (r *DefaultPaymentRepository) Update(payment *domain.InfluencerPayment) error {
	return r.db.Model(&models.InfluencerPaymentModel{ID: payment.ID}).Updates(map[string]any{
		"day":            payment.Day,
		"invoice_url":    payment.InvoiceURL,
		"billing_status": payment.BillingStatus,
	}).Error
}

func (r *DefaultPaymentRepository) GetByID(id string) (*domain.InfluencerPayment, error) {
	var model models.InfluencerPaymentModel
	if err := r.db.Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translateErr(err)
	}
	return mappers.ToDomainPayment(&model), nil
}

func (r *DefaultPaymentRepository) GetByAssignmentID(assignmentID string) (*domain.InfluencerPayment, error) {
	var model models.InfluencerPaymentModel
	if err := r.db.Where("assigned_influencer_id = ?", assignmentID).First(&model).Error; err != nil {
		return nil, translateErr(err)
	}
	return mappers.ToDomainPayment(&model), nil
}

func (r *DefaultPaymentRepository) List() ([]*domain.InfluencerPayment, error) {
	var paymentModels []models.InfluencerPaymentModel
	if err := r.db.Order("day").Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	payments := make([]*domain.InfluencerPayment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = mappers.ToDomainPayment(&model)
	}
	return payments, nil
}

func (r *DefaultPaymentRepository) SoftDelete(id string) error {
	result := r.db.Delete(&models.InfluencerPaymentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type DefaultNotificationRepository struct {
	db *gorm.DB
}

func NewDefaultNotificationRepository(db *gorm.DB) *DefaultNotificationRepository {
	return &DefaultNotificationRepository{db: db}
}

func (r *DefaultNotificationRepository) Exists(influencerID string, cost float64, day time.Time) (bool, error) {
	var count int64
	if err := r.db.Model(&models.InfluencerUnPaidNotificationModel{}).
		Where("influencer_id = ? AND cost = ? AND day = ?", influencerID, cost, day.Format("2006-01-02")).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DefaultNotificationRepository) Create(notification *domain.InfluencerUnPaidNotification) error {
	if err := r.db.Create(mappers.ToGORMNotification(notification)).Error; err != nil {
		// The partial unique index on (influencer_id, cost, day) rejects
		// concurrent duplicate inserts; callers treat that as "already
		// recorded".
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateNotification
		}
		return err
	}
	return nil
}

func (r *DefaultNotificationRepository) GetByID(id string) (*domain.InfluencerUnPaidNotification, error) {
	var model models.InfluencerUnPaidNotificationModel
	if err := r.db.Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translateErr(err)
	}
	return mappers.ToDomainNotification(&model), nil
}

func (r *DefaultNotificationRepository) List() ([]*domain.InfluencerUnPaidNotification, error) {
	var notificationModels []models.InfluencerUnPaidNotificationModel
	if err := r.db.
		Joins("JOIN influencer_models ON influencer_models.id = influencer_un_paid_notification_models.influencer_id").
		Order("influencer_models.name").
		Find(&notificationModels).Error; err != nil {
		return nil, err
	}
	notifications := make([]*domain.InfluencerUnPaidNotification, len(notificationModels))
	for i, model := range notificationModels {
		notifications[i] = mappers.ToDomainNotification(&model)
	}
	return notifications, nil
}

func (r *DefaultNotificationRepository) SoftDelete(id string) error {
	result := r.db.Delete(&models.InfluencerUnPaidNotificationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
