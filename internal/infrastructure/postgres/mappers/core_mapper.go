package mappers

import (
	"github.com/arabyads/influencer-service/internal/domain"
	"github.com/arabyads/influencer-service/internal/infrastructure/postgres/models"
)

func ToDomainCategory(model *models.CategoryModel) *domain.Category {
	return &domain.Category{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMCategory(category *domain.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

func ToDomainPlatform(model *models.SocialPlatformModel) *domain.SocialPlatform {
	return &domain.SocialPlatform{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMPlatform(platform *domain.SocialPlatform) *models.SocialPlatformModel {
	return &models.SocialPlatformModel{
		ID:        platform.ID,
		Name:      platform.Name,
		CreatedAt: platform.CreatedAt,
		UpdatedAt: platform.UpdatedAt,
	}
}

func ToDomainBank(model *models.BankModel) *domain.Bank {
	return &domain.Bank{
		ID:        model.ID,
		Name:      model.Name,
		Swift:     model.Swift,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMBank(bank *domain.Bank) *models.BankModel {
	return &models.BankModel{
		ID:        bank.ID,
		Name:      bank.Name,
		Swift:     bank.Swift,
		CreatedAt: bank.CreatedAt,
		UpdatedAt: bank.UpdatedAt,
	}
}

func ToDomainCoupon(model *models.CouponModel) *domain.Coupon {
	return &domain.Coupon{
		ID:         model.ID,
		Percentage: model.Percentage,
		Code:       model.Code,
		Start:      model.Start,
		End:        model.End,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

func ToGORMCoupon(coupon *domain.Coupon) *models.CouponModel {
	return &models.CouponModel{
		ID:         coupon.ID,
		Percentage: coupon.Percentage,
		Code:       coupon.Code,
		Start:      coupon.Start,
		End:        coupon.End,
		CreatedAt:  coupon.CreatedAt,
		UpdatedAt:  coupon.UpdatedAt,
	}
}
