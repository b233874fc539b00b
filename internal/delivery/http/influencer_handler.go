package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arabyads/influencer-service/internal/usecase"
	"github.com/arabyads/influencer-service/internal/usecase/cascade"
)

type InfluencerHandler struct {
	influencers usecase.InfluencerUsecase
	accounts    usecase.SocialAccountUsecase
	cascade     *cascade.Engine
}

func NewInfluencerHandler(
	influencers usecase.InfluencerUsecase,
	accounts usecase.SocialAccountUsecase,
	cascadeEngine *cascade.Engine,
) *InfluencerHandler {
	return &InfluencerHandler{
		influencers: influencers,
		accounts:    accounts,
		cascade:     cascadeEngine,
	}
}

type influencerRequest struct {
	Name              string `json:"name"`
	Gender            string `json:"gender"`
	CategoryID        string `json:"category_id"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	BankID            string `json:"bank_id"`
	IBAN              string `json:"iban"`
	AccountHolderName string `json:"account_holder_name"`
	City              string `json:"city"`
	Branch            string `json:"branch"`
}

func (req *influencerRequest) toInput() usecase.CreateInfluencerInput {
	return usecase.CreateInfluencerInput{
		Name:              req.Name,
		Gender:            req.Gender,
		CategoryID:        req.CategoryID,
		Phone:             req.Phone,
		Email:             req.Email,
		BankID:            req.BankID,
		IBAN:              req.IBAN,
		AccountHolderName: req.AccountHolderName,
		City:              req.City,
		Branch:            req.Branch,
	}
}

func (h *InfluencerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req influencerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	input := req.toInput()
	influencer, err := h.influencers.CreateInfluencer(ActorFromContext(r.Context()), &input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toInfluencerResponse(influencer))
}

func (h *InfluencerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req influencerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	influencer, err := h.influencers.UpdateInfluencer(ActorFromContext(r.Context()), &usecase.UpdateInfluencerInput{
		InfluencerID:          chi.URLParam(r, "id"),
		CreateInfluencerInput: req.toInput(),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toInfluencerResponse(influencer))
}

func (h *InfluencerHandler) Get(w http.ResponseWriter, r *http.Request) {
	influencer, err := h.influencers.GetInfluencerByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toInfluencerResponse(influencer))
}

func (h *InfluencerHandler) List(w http.ResponseWriter, r *http.Request) {
	influencers, err := h.influencers.ListInfluencers()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toInfluencerResponses(influencers))
}

func (h *InfluencerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.cascade.SoftDelete("influencer", chi.URLParam(r, "id"), ActorFromContext(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *InfluencerHandler) ListAccountsForInfluencer(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accounts.ListSocialAccountsByInfluencerID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSocialAccountResponses(accounts))
}

type socialAccountRequest struct {
	Username     string  `json:"username"`
	PlatformID   string  `json:"social_platform_id"`
	InfluencerID string  `json:"influencer_id"`
	Cost         float64 `json:"cost"`
}

func (h *InfluencerHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req socialAccountRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	account, err := h.accounts.CreateSocialAccount(ActorFromContext(r.Context()), &usecase.CreateSocialAccountInput{
		Username:     req.Username,
		PlatformID:   req.PlatformID,
		InfluencerID: req.InfluencerID,
		Cost:         req.Cost,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSocialAccountResponse(account))
}

func (h *InfluencerHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	var req socialAccountRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	account, err := h.accounts.UpdateSocialAccount(ActorFromContext(r.Context()), &usecase.UpdateSocialAccountInput{
		SocialAccountID: chi.URLParam(r, "id"),
		CreateSocialAccountInput: usecase.CreateSocialAccountInput{
			Username:     req.Username,
			PlatformID:   req.PlatformID,
			InfluencerID: req.InfluencerID,
			Cost:         req.Cost,
		},
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSocialAccountResponse(account))
}

func (h *InfluencerHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.accounts.GetSocialAccountByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSocialAccountResponse(account))
}

func (h *InfluencerHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accounts.ListSocialAccounts()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSocialAccountResponses(accounts))
}

func (h *InfluencerHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.cascade.SoftDelete("social_account", chi.URLParam(r, "id"), ActorFromContext(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
