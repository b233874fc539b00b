package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arabyads/influencer-service/internal/domain"
	"github.com/arabyads/influencer-service/internal/infrastructure/security"
)

type fakeCategoryUsecase struct {
	categories map[string]*domain.Category
	created    []string
}

func newFakeCategoryUsecase() *fakeCategoryUsecase {
	return &fakeCategoryUsecase{categories: make(map[string]*domain.Category)}
}

func (f *fakeCategoryUsecase) CreateCategory(actorID, name string) (*domain.Category, error) {
	if name == "" {
		verr := domain.NewValidationError()
		verr.Add("name", "name is required")
		return nil, verr
	}
	category := &domain.Category{ID: "cat-" + name, Name: name, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	f.categories[category.ID] = category
	f.created = append(f.created, actorID)
	return category, nil
}

func (f *fakeCategoryUsecase) UpdateCategory(actorID, id, name string) (*domain.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	category.Name = name
	return category, nil
}

func (f *fakeCategoryUsecase) GetCategoryByID(id string) (*domain.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

func (f *fakeCategoryUsecase) ListCategories() ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(f.categories))
	for _, category := range f.categories {
		out = append(out, category)
	}
	return out, nil
}

func newCategoryRouter(categories *fakeCategoryUsecase) chi.Router {
	handler := NewCoreHandler(categories, nil, nil, nil, nil)
	r := chi.NewRouter()
	r.Post("/categories", handler.CreateCategory)
	r.Get("/categories/{id}", handler.GetCategory)
	r.Put("/categories/{id}", handler.UpdateCategory)
	return r
}

func TestCreateCategory_ReturnsCreated(t *testing.T) {
	router := newCategoryRouter(newFakeCategoryUsecase())

	body := bytes.NewBufferString(`{"name": "Fashion"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/categories", body))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp namedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Fashion", resp.Name)
	assert.NotEmpty(t, resp.ID)
}

func TestCreateCategory_ValidationFailureIsBadRequest(t *testing.T) {
	router := newCategoryRouter(newFakeCategoryUsecase())

	body := bytes.NewBufferString(`{"name": ""}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/categories", body))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "name")
}

func TestCreateCategory_MalformedBodyIsBadRequest(t *testing.T) {
	router := newCategoryRouter(newFakeCategoryUsecase())

	body := bytes.NewBufferString(`{"name": `)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/categories", body))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "body")
}

func TestGetCategory_MissingRowIsNotFound(t *testing.T) {
	router := newCategoryRouter(newFakeCategoryUsecase())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categories/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateCategory_RoundTrip(t *testing.T) {
	categories := newFakeCategoryUsecase()
	router := newCategoryRouter(categories)

	created, err := categories.CreateCategory("", "Beauty")
	require.NoError(t, err)

	body := bytes.NewBufferString(`{"name": "Lifestyle"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/categories/"+created.ID, body))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp namedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Lifestyle", resp.Name)
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"user_id": ActorFromContext(r.Context())})
}

func TestAuthenticate_RejectsMissingToken(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", time.Minute)
	handler := Authenticate(tokens)(http.HandlerFunc(okHandler))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_RejectsForgedToken(t *testing.T) {
	signer := security.NewTokenManager("real-secret", time.Minute)
	verifier := security.NewTokenManager("other-secret", time.Minute)

	token, err := signer.Sign("user-1", "user@arabyads.com", false)
	require.NoError(t, err)

	handler := Authenticate(verifier)(http.HandlerFunc(okHandler))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_StoresClaimsOnContext(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", time.Minute)
	token, err := tokens.Sign("user-1", "user@arabyads.com", false)
	require.NoError(t, err)

	handler := Authenticate(tokens)(http.HandlerFunc(okHandler))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp["user_id"])
}

func TestRequireStaff_BlocksNonStaff(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", time.Minute)
	handler := Authenticate(tokens)(RequireStaff(http.HandlerFunc(okHandler)))

	for _, tc := range []struct {
		name    string
		isStaff bool
		want    int
	}{
		{"staff passes", true, http.StatusOK},
		{"non-staff blocked", false, http.StatusForbidden},
	} {
		t.Run(tc.name, func(t *testing.T) {
			token, err := tokens.Sign("user-1", "user@arabyads.com", tc.isStaff)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+token)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}
