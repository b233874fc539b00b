package repository

import (
	"gorm.io/gorm"

	"github.com/arabyads/influencer-service/internal/domain"
	"github.com/arabyads/influencer-service/internal/infrastructure/postgres/mappers"
	"github.com/arabyads/influencer-service/internal/infrastructure/postgres/models"
)

type DefaultCategoryRepository struct {
	db *gorm.DB
}

func NewDefaultCategoryRepository(db *gorm.DB) *DefaultCategoryRepository {
	return &DefaultCategoryRepository{db: db}
}

func (r *DefaultCategoryRepository) Create(category *domain.Category) error {
	return r.db.Create(mappers.ToGORMCategory(category)).Error
}

func (r *DefaultCategoryRepository) Update(category *domain.Category) error {
	return r.db.Model(&models.CategoryModel{ID: category.ID}).Update("name", category.Name).Error
}

func (r *DefaultCategoryRepository) GetByID(id string) (*domain.Category, error) {
	var model models.CategoryModel
	if err := r.db.Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translateErr(err)
	}
	return mappers.ToDomainCategory(&model), nil
}

func (r *DefaultCategoryRepository) List() ([]*domain.Category, error) {
	var categoryModels []models.CategoryModel
	if err := r.db.Order("name").Find(&categoryModels).Error; err != nil {
		return nil, err
	}
	categories := make([]*domain.Category, len(categoryModels))
	for i, model := range categoryModels {
		categories[i] = mappers.ToDomainCategory(&model)
	}
	return categories, nil
}

func (r *DefaultCategoryRepository) SoftDelete(id string) error {
	result := r.db.Delete(&models.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type DefaultSocialPlatformRepository struct {
	db *gorm.DB
}

func NewDefaultSocialPlatformRepository(db *gorm.DB) *DefaultSocialPlatformRepository {
	return &DefaultSocialPlatformRepository{db: db}
}

func (r *DefaultSocialPlatformRepository) Create(platform *domain.SocialPlatform) error {
	return r.db.Create(mappers.ToGORMPlatform(platform)).Error
}

func (r *DefaultSocialPlatformRepository) Update(platform *domain.SocialPlatform) error {
	return r.db.Model(&models.SocialPlatformModel{ID: platform.ID}).Update("name", platform.Name).Error
}

func (r *DefaultSocialPlatformRepository) GetByID(id string) (*domain.SocialPlatform, error) {
	var model models.SocialPlatformModel
	if err := r.db.Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translateErr(err)
	}
	return mappers.ToDomainPlatform(&model), nil
}

func (r *DefaultSocialPlatformRepository) List() ([]*domain.SocialPlatform, error) {
	var platformModels []models.SocialPlatformModel
	if err := r.db.Order("name").Find(&platformModels).Error; err != nil {
		return nil, err
	}
	platforms := make([]*domain.SocialPlatform, len(platformModels))
	for i, model := range platformModels {
		platforms[i] = mappers.ToDomainPlatform(&model)
	}
	return platforms, nil
}

func (r *DefaultSocialPlatformRepository) SoftDelete(id string) error {
	result := r.db.Delete(&models.SocialPlatformModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type DefaultBankRepository struct {
	db *gorm.DB
}

func NewDefaultBankRepository(db *gorm.DB) *DefaultBankRepository {
	return &DefaultBankRepository{db: db}
}

func (r *DefaultBankRepository) Create(bank *domain.Bank) error {
	return r.db.Create(mappers.ToGORMBank(bank)).Error
}

func (r *DefaultBankRepository) Update(bank *domain.Bank) error {
	return r.db.Model(&models.BankModel{ID: bank.ID}).Updates(map[string]any{
		"name":  bank.Name,
		"swift": bank.Swift,
	}).Error
}

func (r *DefaultBankRepository) GetByID(id string) (*domain.Bank, error) {
	var model models.BankModel
	if err := r.db.Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translateErr(err)
	}
	return mappers.ToDomainBank(&model), nil
}

func (r *DefaultBankRepository) List() ([]*domain.Bank, error) {
	var bankModels []models.BankModel
	if err := r.db.Order("name").Find(&bankModels).Error; err != nil {
		return nil, err
	}
	banks := make([]*domain.Bank, len(bankModels))
	for i, model := range bankModels {
		banks[i] = mappers.ToDomainBank(&model)
	}
	return banks, nil
}

func (r *DefaultBankRepository) SwiftExists(swift, excludeID string) (bool, error) {
	query := r.db.Model(&models.BankModel{}).Where("swift = ?", swift)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DefaultBankRepository) SoftDelete(id string) error {
	result := r.db.Delete(&models.BankModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type DefaultCouponRepository struct {
	db *gorm.DB
}

func NewDefaultCouponRepository(db *gorm.DB) *DefaultCouponRepository {
	return &DefaultCouponRepository{db: db}
}

func (r *DefaultCouponRepository) Create(coupon *domain.Coupon) error {
	return r.db.Create(mappers.ToGORMCoupon(coupon)).Error
}

func (r *DefaultCouponRepository) Update(coupon *domain.Coupon) error {
	return r.db.Model(&models.CouponModel{ID: coupon.ID}).Updates(map[string]any{
		"percentage": coupon.Percentage,
		"start":      coupon.Start,
		"end":        coupon.End,
	}).Error
}

func (r *DefaultCouponRepository) GetByID(id string) (*domain.Coupon, error) {
	var model models.CouponModel
	if err := r.db.Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translateErr(err)
	}
	return mappers.ToDomainCoupon(&model), nil
}

func (r *DefaultCouponRepository) List() ([]*domain.Coupon, error) {
	var couponModels []models.CouponModel
	if err := r.db.Order("code").Find(&couponModels).Error; err != nil {
		return nil, err
	}
	coupons := make([]*domain.Coupon, len(couponModels))
	for i, model := range couponModels {
		coupons[i] = mappers.ToDomainCoupon(&model)
	}
	return coupons, nil
}

func (r *DefaultCouponRepository) SoftDelete(id string) error {
	result := r.db.Delete(&models.CouponModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
