package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arabyads/influencer-service/internal/domain"
	"github.com/arabyads/influencer-service/internal/usecase"
	"github.com/arabyads/influencer-service/internal/usecase/cascade"
)

// ClientHandler serves the client area. Non-staff users only see rows whose
// account manager is themselves; the scoping is applied by the repositories.
type ClientHandler struct {
	clients   usecase.ClientUsecase
	offers    usecase.OfferUsecase
	campaigns usecase.CampaignUsecase
	cascade   *cascade.Engine
}

func NewClientHandler(
	clients usecase.ClientUsecase,
	offers usecase.OfferUsecase,
	campaigns usecase.CampaignUsecase,
	cascadeEngine *cascade.Engine,
) *ClientHandler {
	return &ClientHandler{
		clients:   clients,
		offers:    offers,
		campaigns: campaigns,
		cascade:   cascadeEngine,
	}
}

type clientRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	AccountManagerID string `json:"account_manager_id"`
	Phone            string `json:"phone"`
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	client, err := h.clients.CreateClient(ActorFromContext(r.Context()), &usecase.CreateClientInput{
		Name:             req.Name,
		Email:            req.Email,
		AccountManagerID: req.AccountManagerID,
		Phone:            req.Phone,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toClientResponse(client))
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	client, err := h.clients.UpdateClient(ActorFromContext(r.Context()), &usecase.UpdateClientInput{
		ClientID:         chi.URLParam(r, "id"),
		Name:             req.Name,
		Email:            req.Email,
		AccountManagerID: req.AccountManagerID,
		Phone:            req.Phone,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toClientResponse(client))
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	client, err := h.clients.GetClientByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	scope := ScopeFromContext(r.Context())
	if !scope.Staff && client.AccountManagerID != scope.UserID {
		writeError(w, domain.ErrForbidden)
		return
	}
	writeJSON(w, http.StatusOK, toClientResponse(client))
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.ListClients(ScopeFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toClientResponses(clients))
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.cascade.SoftDelete("client", chi.URLParam(r, "id"), ActorFromContext(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ClientHandler) ListOffersForClient(w http.ResponseWriter, r *http.Request) {
	offers, err := h.offers.ListOffersByClientID(chi.URLParam(r, "id"), ScopeFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOfferResponses(offers))
}

type offerRequest struct {
	Name       string `json:"name"`
	ClientID   string `json:"client_id"`
	CategoryID string `json:"category_id"`
	Billing    string `json:"billing_method"`
}

func (h *ClientHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var req offerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	offer, err := h.offers.CreateOffer(ActorFromContext(r.Context()), &usecase.CreateOfferInput{
		Name:       req.Name,
		ClientID:   req.ClientID,
		CategoryID: req.CategoryID,
		Billing:    req.Billing,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toOfferResponse(offer))
}

func (h *ClientHandler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	var req offerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	offer, err := h.offers.UpdateOffer(ActorFromContext(r.Context()), &usecase.UpdateOfferInput{
		OfferID:    chi.URLParam(r, "id"),
		Name:       req.Name,
		ClientID:   req.ClientID,
		CategoryID: req.CategoryID,
		Billing:    req.Billing,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOfferResponse(offer))
}

func (h *ClientHandler) GetOffer(w http.ResponseWriter, r *http.Request) {
	offer, err := h.offers.GetOfferByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOfferResponse(offer))
}

func (h *ClientHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.offers.ListOffers(ScopeFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOfferResponses(offers))
}

func (h *ClientHandler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	if err := h.cascade.SoftDelete("offer", chi.URLParam(r, "id"), ActorFromContext(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ClientHandler) ListCampaignsForOffer(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaigns.ListCampaignsByOfferID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignResponses(campaigns))
}

type campaignRequest struct {
	OfferID          string  `json:"offer_id"`
	AccountManagerID string  `json:"account_manager_id"`
	CostFixed        float64 `json:"cost_fixed"`
	CostPercentage   float64 `json:"cost_percentage"`
	DiscountPercent  float64 `json:"discount_percent"`
	Start            string  `json:"start"`
	End              string  `json:"end"`
}

func (h *ClientHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
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
	campaign, err := h.campaigns.CreateCampaign(ActorFromContext(r.Context()), &usecase.CreateCampaignInput{
		OfferID:          req.OfferID,
		AccountManagerID: req.AccountManagerID,
		CostFixed:        req.CostFixed,
		CostPercentage:   req.CostPercentage,
		DiscountPercent:  req.DiscountPercent,
		Start:            start,
		End:              end,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCampaignResponse(campaign))
}

func (h *ClientHandler) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
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
	campaign, err := h.campaigns.UpdateCampaign(ActorFromContext(r.Context()), &usecase.UpdateCampaignInput{
		CampaignID:       chi.URLParam(r, "id"),
		OfferID:          req.OfferID,
		AccountManagerID: req.AccountManagerID,
		CostFixed:        req.CostFixed,
		CostPercentage:   req.CostPercentage,
		DiscountPercent:  req.DiscountPercent,
		Start:            start,
		End:              end,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignResponse(campaign))
}

func (h *ClientHandler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.campaigns.GetCampaignByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignResponse(campaign))
}

func (h *ClientHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaigns.ListCampaigns(ScopeFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignResponses(campaigns))
}

func (h *ClientHandler) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.cascade.SoftDelete("campaign", chi.URLParam(r, "id"), ActorFromContext(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
