package mappers

import (
	"github.com/arabyads/influencer-service/internal/domain"
	"github.com/arabyads/influencer-service/internal/infrastructure/postgres/models"
)

func ToDomainUser(model *models.UserModel) *domain.User {
	return &domain.User{
		ID:           model.ID,
		Name:         model.Name,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		IsStaff:      model.IsStaff,
		IsActive:     model.IsActive,
		DateJoined:   model.DateJoined,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func ToGORMUser(user *domain.User) *models.UserModel {
	return &models.UserModel{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		IsStaff:      user.IsStaff,
		IsActive:     user.IsActive,
		DateJoined:   user.DateJoined,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func ToDomainPermission(model *models.PermissionModel) *domain.Permission {
	return &domain.Permission{
		ID:   model.ID,
		Code: model.Code,
		Name: model.Name,
	}
}

func ToDomainAuditEntry(model *models.AuditEntryModel) *domain.AuditEntry {
	return &domain.AuditEntry{
		ID:         model.ID,
		EntityType: model.EntityType,
		EntityID:   model.EntityID,
		Action:     domain.AuditAction(model.Action),
		ActorID:    model.ActorID,
		Before:     model.Before,
		After:      model.After,
		CreatedAt:  model.CreatedAt,
	}
}
