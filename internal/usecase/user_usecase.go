package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"

	"github.com/arabyads/influencer-service/internal/domain"
	"github.com/arabyads/influencer-service/internal/infrastructure/security"
)

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	IsStaff  bool
	IsActive bool
}

type UpdateUserInput struct {
	UserID   string
	Name     string
	Email    string
	Password string
	IsStaff  bool
	IsActive bool
}

type LoginOutput struct {
	Token string
	User  *domain.User
}

type UserUsecase interface {
	Login(email, password string) (*LoginOutput, error)
	CreateUser(actorID string, input *CreateUserInput) (*domain.User, error)
	UpdateUser(actorID string, input *UpdateUserInput) (*domain.User, error)
	GetUserByID(id string) (*domain.User, error)
	ListUsers() ([]*domain.User, error)
	HasPermission(userID, permissionCode string) (bool, error)
	ListPermissions() ([]*domain.Permission, error)
}

type DefaultUserUsecase struct {
	userRepo domain.UserRepository
	tokens   *security.TokenManager
	audit    *AuditEmitter
}

func NewDefaultUserUsecase(userRepo domain.UserRepository, tokens *security.TokenManager, audit *AuditEmitter) *DefaultUserUsecase {
	return &DefaultUserUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		audit:    audit,
	}
}

// Login resolves credentials to a signed access token. Inactive users are
// rejected with the same error as a bad password so the response does not
// leak account state.
func (uc *DefaultUserUsecase) Login(email, password string) (*LoginOutput, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := uc.tokens.Sign(user.ID, user.Email, user.IsStaff)
	if err != nil {
		return nil, err
	}
	return &LoginOutput{Token: token, User: user}, nil
}

func (uc *DefaultUserUsecase) validate(name, email, password, excludeID string, passwordRequired bool) error {
	verr := domain.NewValidationError()
	if name == "" {
		verr.Add("name", "name is required")
	}
	if email == "" {
		verr.Add("email", "email is required")
	} else if !validEmail(email) {
		verr.Add("email", "enter a valid email address")
	} else {
		taken, err := uc.userRepo.EmailExists(email, excludeID)
		if err != nil {
			return err
		}
		if taken {
			verr.Add("email", "a user with this email already exists")
		}
	}
	if passwordRequired && len(password) < 8 {
		verr.Add("password", "password must be at least 8 characters")
	}
	if !passwordRequired && password != "" && len(password) < 8 {
		verr.Add("password", "password must be at least 8 characters")
	}
	return verr.ErrOrNil()
}

func (uc *DefaultUserUsecase) CreateUser(actorID string, input *CreateUserInput) (*domain.User, error) {
	if err := uc.validate(input.Name, input.Email, input.Password, "", true); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		IsStaff:      input.IsStaff,
		IsActive:     input.IsActive,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	uc.audit.Emit("user", user.ID, domain.AuditCreate, actorID, nil, sanitizeUser(user))
	return user, nil
}

func (uc *DefaultUserUsecase) UpdateUser(actorID string, input *UpdateUserInput) (*domain.User, error) {
	before, err := uc.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if err := uc.validate(input.Name, input.Email, input.Password, input.UserID, false); err != nil {
		return nil, err
	}
	hash := before.PasswordHash
	if input.Password != "" {
		newHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(newHash)
	}
	user := &domain.User{
		ID:           input.UserID,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		IsStaff:      input.IsStaff,
		IsActive:     input.IsActive,
	}
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	updated, err := uc.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	uc.audit.Emit("user", user.ID, domain.AuditUpdate, actorID, sanitizeUser(before), sanitizeUser(updated))
	return updated, nil
}

func (uc *DefaultUserUsecase) GetUserByID(id string) (*domain.User, error) {
	return uc.userRepo.GetByID(id)
}

func (uc *DefaultUserUsecase) ListUsers() ([]*domain.User, error) {
	return uc.userRepo.List()
}

func (uc *DefaultUserUsecase) HasPermission(userID, permissionCode string) (bool, error) {
	return uc.userRepo.HasPermission(userID, permissionCode)
}

func (uc *DefaultUserUsecase) ListPermissions() ([]*domain.Permission, error) {
	return uc.userRepo.ListPermissions()
}

// sanitizeUser strips the password hash before the snapshot reaches the
// audit trail.
func sanitizeUser(user *domain.User) *domain.User {
	clean := *user
	clean.PasswordHash = ""
	return &clean
}

type AuditLogUsecase interface {
	ListAuditEntries(page, limit int) ([]*domain.AuditEntry, int64, error)
}

type DefaultAuditLogUsecase struct {
	auditLogRepo domain.AuditLogRepository
}

func NewDefaultAuditLogUsecase(auditLogRepo domain.AuditLogRepository) *DefaultAuditLogUsecase {
	return &DefaultAuditLogUsecase{auditLogRepo: auditLogRepo}
}

func (uc *DefaultAuditLogUsecase) ListAuditEntries(page, limit int) ([]*domain.AuditEntry, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}
	return uc.auditLogRepo.List(page, limit)
}
