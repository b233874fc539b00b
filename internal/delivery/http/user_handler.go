package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/arabyads/influencer-service/internal/usecase"
	"github.com/arabyads/influencer-service/internal/usecase/cascade"
)

type UserHandler struct {
	users   usecase.UserUsecase
	cascade *cascade.Engine
}

func NewUserHandler(users usecase.UserUsecase, cascadeEngine *cascade.Engine) *UserHandler {
	return &UserHandler{users: users, cascade: cascadeEngine}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	out, err := h.users.Login(req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"token": out.Token,
		"user":  toUserResponse(out.User),
	})
}

type userRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsStaff  bool   `json:"is_staff"`
	IsActive bool   `json:"is_active"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	user, err := h.users.CreateUser(ActorFromContext(r.Context()), &usecase.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		IsStaff:  req.IsStaff,
		IsActive: req.IsActive,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	user, err := h.users.UpdateUser(ActorFromContext(r.Context()), &usecase.UpdateUserInput{
		UserID:   chi.URLParam(r, "id"),
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		IsStaff:  req.IsStaff,
		IsActive: req.IsActive,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.GetUserByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers()
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]userResponse, len(users))
	for i, user := range users {
		out[i] = toUserResponse(user)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.cascade.SoftDelete("user", chi.URLParam(r, "id"), ActorFromContext(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *UserHandler) CheckPermission(w http.ResponseWriter, r *http.Request) {
	has, err := h.users.HasPermission(chi.URLParam(r, "id"), chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"has_permission": has})
}

func (h *UserHandler) ListPermissions(w http.ResponseWriter, r *http.Request) {
	permissions, err := h.users.ListPermissions()
	if err != nil {
		writeError(w, err)
		return
	}
	type permissionResponse struct {
		ID   string `json:"id"`
		Code string `json:"code"`
		Name string `json:"name"`
	}
	out := make([]permissionResponse, len(permissions))
	for i, permission := range permissions {
		out[i] = permissionResponse{ID: permission.ID, Code: permission.Code, Name: permission.Name}
	}
	writeJSON(w, http.StatusOK, out)
}

type AuditHandler struct {
	auditLog usecase.AuditLogUsecase
}

func NewAuditHandler(auditLog usecase.AuditLogUsecase) *AuditHandler {
	return &AuditHandler{auditLog: auditLog}
}

func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, total, err := h.auditLog.ListAuditEntries(page, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]auditEntryResponse, len(entries))
	for i, entry := range entries {
		out[i] = toAuditEntryResponse(entry)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"entries": out,
		"total":   total,
	})
}
