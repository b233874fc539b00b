package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/arabyads/influencer-service/internal/domain"
	"github.com/arabyads/influencer-service/internal/usecase"
	"github.com/arabyads/influencer-service/internal/usecase/cascade"
)

// parseDate reads an optional "2006-01-02" field, collecting a validation
// error on bad input.
func parseDate(verr *domain.ValidationError, field, value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		verr.Add(field, "date must be formatted YYYY-MM-DD")
		return nil
	}
	return &parsed
}

// CoreHandler serves the reference data: categories, social platforms, banks
// and coupons.
type CoreHandler struct {
	categories usecase.CategoryUsecase
	platforms  usecase.SocialPlatformUsecase
	banks      usecase.BankUsecase
	coupons    usecase.CouponUsecase
	cascade    *cascade.Engine
}

func NewCoreHandler(
	categories usecase.CategoryUsecase,
	platforms usecase.SocialPlatformUsecase,
	banks usecase.BankUsecase,
	coupons usecase.CouponUsecase,
	cascadeEngine *cascade.Engine,
) *CoreHandler {
	return &CoreHandler{
		categories: categories,
		platforms:  platforms,
		banks:      banks,
		coupons:    coupons,
		cascade:    cascadeEngine,
	}
}

type nameRequest struct {
	Name string `json:"name"`
}

func (h *CoreHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	category, err := h.categories.CreateCategory(ActorFromContext(r.Context()), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryResponse(category))
}

func (h *CoreHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	category, err := h.categories.UpdateCategory(ActorFromContext(r.Context()), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(category))
}

func (h *CoreHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.categories.GetCategoryByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(category))
}

func (h *CoreHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.ListCategories()
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]namedResponse, len(categories))
	for i, category := range categories {
		out[i] = toCategoryResponse(category)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *CoreHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.cascade.SoftDelete("category", chi.URLParam(r, "id"), ActorFromContext(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *CoreHandler) CreatePlatform(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	platform, err := h.platforms.CreateSocialPlatform(ActorFromContext(r.Context()), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPlatformResponse(platform))
}

func (h *CoreHandler) UpdatePlatform(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	platform, err := h.platforms.UpdateSocialPlatform(ActorFromContext(r.Context()), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlatformResponse(platform))
}

func (h *CoreHandler) GetPlatform(w http.ResponseWriter, r *http.Request) {
	platform, err := h.platforms.GetSocialPlatformByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlatformResponse(platform))
}

func (h *CoreHandler) ListPlatforms(w http.ResponseWriter, r *http.Request) {
	platforms, err := h.platforms.ListSocialPlatforms()
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]namedResponse, len(platforms))
	for i, platform := range platforms {
		out[i] = toPlatformResponse(platform)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *CoreHandler) DeletePlatform(w http.ResponseWriter, r *http.Request) {
	if err := h.cascade.SoftDelete("social_platform", chi.URLParam(r, "id"), ActorFromContext(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type bankRequest struct {
	Name  string `json:"name"`
	Swift string `json:"swift"`
}

func (h *CoreHandler) CreateBank(w http.ResponseWriter, r *http.Request) {
	var req bankRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	bank, err := h.banks.CreateBank(ActorFromContext(r.Context()), &usecase.CreateBankInput{Name: req.Name, Swift: req.Swift})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBankResponse(bank))
}

func (h *CoreHandler) UpdateBank(w http.ResponseWriter, r *http.Request) {
	var req bankRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	bank, err := h.banks.UpdateBank(ActorFromContext(r.Context()), &usecase.UpdateBankInput{
		BankID: chi.URLParam(r, "id"),
		Name:   req.Name,
		Swift:  req.Swift,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBankResponse(bank))
}

func (h *CoreHandler) GetBank(w http.ResponseWriter, r *http.Request) {
	bank, err := h.banks.GetBankByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBankResponse(bank))
}

func (h *CoreHandler) ListBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.banks.ListBanks()
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]bankResponse, len(banks))
	for i, bank := range banks {
		out[i] = toBankResponse(bank)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *CoreHandler) DeleteBank(w http.ResponseWriter, r *http.Request) {
	if err := h.cascade.SoftDelete("bank", chi.URLParam(r, "id"), ActorFromContext(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type couponRequest struct {
	Percentage int    `json:"percentage"`
	Start      string `json:"start"`
	End        string `json:"end"`
}

func (h *CoreHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	var req couponRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	verr := domain.NewValidationError()
	start := parseDate(verr, "start", req.Start)
	end := parseDate(verr, "end", req.End)
	if err := verr.ErrOrNil(); err != nil {
		writeError(w, err)
		return
	}
	coupon, err := h.coupons.CreateCoupon(ActorFromContext(r.Context()), &usecase.CreateCouponInput{
		Percentage: req.Percentage,
		Start:      start,
		End:        end,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCouponResponse(coupon))
}

func (h *CoreHandler) UpdateCoupon(w http.ResponseWriter, r *http.Request) {
	var req couponRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	verr := domain.NewValidationError()
	start := parseDate(verr, "start", req.Start)
	end := parseDate(verr, "end", req.End)
	if err := verr.ErrOrNil(); err != nil {
		writeError(w, err)
		return
	}
	coupon, err := h.coupons.UpdateCoupon(ActorFromContext(r.Context()), &usecase.UpdateCouponInput{
		CouponID:   chi.URLParam(r, "id"),
		Percentage: req.Percentage,
		Start:      start,
		End:        end,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCouponResponse(coupon))
}

func (h *CoreHandler) GetCoupon(w http.ResponseWriter, r *http.Request) {
	coupon, err := h.coupons.GetCouponByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCouponResponse(coupon))
}

func (h *CoreHandler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.coupons.ListCoupons()
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]couponResponse, len(coupons))
	for i, coupon := range coupons {
		out[i] = toCouponResponse(coupon)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *CoreHandler) DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	if err := h.cascade.SoftDelete("coupon", chi.URLParam(r, "id"), ActorFromContext(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
