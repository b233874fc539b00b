package repository

import (
	"gorm.io/gorm"

	"github.com/arabyads/influencer-service/internal/domain"
	"github.com/arabyads/influencer-service/internal/infrastructure/postgres/mappers"
	"github.com/arabyads/influencer-service/internal/infrastructure/postgres/models"
)

type DefaultUserRepository struct {
	db *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{db: db}
}

func (r *DefaultUserRepository) Create(user *domain.User) error {
	return r.db.Create(mappers.ToGORMUser(user)).Error
}

func (r *DefaultUserRepository) Update(user *domain.User) error {
	return r.db.Model(&models.UserModel{ID: user.ID}).Updates(map[string]any{
		"name":          user.Name,
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"is_staff":      user.IsStaff,
		"is_active":     user.IsActive,
	}).Error
}

func (r *DefaultUserRepository) GetByID(id string) (*domain.User, error) {
	var model models.UserModel
	if err := r.db.Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translateErr(err)
	}
	return mappers.ToDomainUser(&model), nil
}

func (r *DefaultUserRepository) GetByEmail(email string) (*domain.User, error) {
	var model models.UserModel
	if err := r.db.Where("email = ?", email).First(&model).Error; err != nil {
		return nil, translateErr(err)
	}
	return mappers.ToDomainUser(&model), nil
}

func (r *DefaultUserRepository) List() ([]*domain.User, error) {
	var userModels []models.UserModel
	if err := r.db.Order("email").Find(&userModels).Error; err != nil {
		return nil, err
	}
	users := make([]*domain.User, len(userModels))
	for i, model := range userModels {
		users[i] = mappers.ToDomainUser(&model)
	}
	return users, nil
}

func (r *DefaultUserRepository) EmailExists(email, excludeID string) (bool, error) {
	query := r.db.Model(&models.UserModel{}).Where("email = ?", email)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DefaultUserRepository) HasPermission(userID, permissionCode string) (bool, error) {
	var count int64
	err := r.db.Raw(`
		SELECT COUNT(*) FROM permission_models pm
		WHERE pm.code = ?
		AND (
			pm.id IN (SELECT permission_model_id FROM user_permissions WHERE user_model_id = ?)
			OR pm.id IN (
				SELECT gp.permission_model_id FROM group_permissions gp
				JOIN user_groups ug ON ug.group_model_id = gp.group_model_id
				WHERE ug.user_model_id = ?
			)
		)`, permissionCode, userID, userID).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// EmailsWithPermission resolves addresses of live users holding the
// permission either directly or through group membership. DISTINCT collapses
// users that qualify both ways. An unknown code simply matches nothing.
func (r *DefaultUserRepository) EmailsWithPermission(permissionCode string) ([]string, error) {
	var emails []string
	err := r.db.Raw(`
		SELECT DISTINCT u.email FROM user_models u
		LEFT JOIN user_permissions up ON up.user_model_id = u.id
		LEFT JOIN user_groups ug ON ug.user_model_id = u.id
		LEFT JOIN group_permissions gp ON gp.group_model_id = ug.group_model_id
		JOIN permission_models pm
			ON pm.id = up.permission_model_id OR pm.id = gp.permission_model_id
		WHERE pm.code = ? AND u.deleted_at IS NULL
		ORDER BY u.email`, permissionCode).Scan(&emails).Error
	if err != nil {
		return nil, err
	}
	return emails, nil
}

func (r *DefaultUserRepository) ListPermissions() ([]*domain.Permission, error) {
	var permissionModels []models.PermissionModel
	if err := r.db.Order("code").Find(&permissionModels).Error; err != nil {
		return nil, err
	}
	permissions := make([]*domain.Permission, len(permissionModels))
	for i, model := range permissionModels {
		permissions[i] = mappers.ToDomainPermission(&model)
	}
	return permissions, nil
}

func (r *DefaultUserRepository) SoftDelete(id string) error {
	result := r.db.Delete(&models.UserModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type DefaultAuditLogRepository struct {
	db *gorm.DB
}

func NewDefaultAuditLogRepository(db *gorm.DB) *DefaultAuditLogRepository {
	return &DefaultAuditLogRepository{db: db}
}

func (r *DefaultAuditLogRepository) List(page, limit int) ([]*domain.AuditEntry, int64, error) {
	var total int64
	if err := r.db.Model(&models.AuditEntryModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var entryModels []models.AuditEntryModel
	if err := r.db.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&entryModels).Error; err != nil {
		return nil, 0, err
	}
	entries := make([]*domain.AuditEntry, len(entryModels))
	for i, model := range entryModels {
		entries[i] = mappers.ToDomainAuditEntry(&model)
	}
	return entries, total, nil
}
