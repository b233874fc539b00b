package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/arabyads/influencer-service/internal/domain"
	"github.com/arabyads/influencer-service/internal/usecase"
	"github.com/arabyads/influencer-service/internal/usecase/cascade"
)

type AssignmentHandler struct {
	assignments   usecase.AssignmentUsecase
	histories     usecase.HistoryUsecase
	payments      usecase.PaymentUsecase
	notifications usecase.NotificationUsecase
	cascade       *cascade.Engine
}

func NewAssignmentHandler(
	assignments usecase.AssignmentUsecase,
	histories usecase.HistoryUsecase,
	payments usecase.PaymentUsecase,
	notifications usecase.NotificationUsecase,
	cascadeEngine *cascade.Engine,
) *AssignmentHandler {
	return &AssignmentHandler{
		assignments:   assignments,
		histories:     histories,
		payments:      payments,
		notifications: notifications,
		cascade:       cascadeEngine,
	}
}

type assignmentRequest struct {
	SocialAccountID string  `json:"social_account_id"`
	InfluencerID    string  `json:"influencer_id"`
	CampaignID      string  `json:"campaign_id"`
	CouponID        string  `json:"coupon_id"`
	Billing         string  `json:"commission_type"`
	Cost            float64 `json:"cost"`
	Discount        int     `json:"discount"`
	Day             string  `json:"day"`
}

func (req *assignmentRequest) toInput() (usecase.CreateAssignmentInput, error) {
	verr := domain.NewValidationError()
	var day time.Time
	if parsed := parseDate(verr, "day", req.Day); parsed != nil {
		day = *parsed
	}
	if err := verr.ErrOrNil(); err != nil {
		return usecase.CreateAssignmentInput{}, err
	}
	return usecase.CreateAssignmentInput{
		SocialAccountID: req.SocialAccountID,
		InfluencerID:    req.InfluencerID,
		CampaignID:      req.CampaignID,
		CouponID:        req.CouponID,
		Billing:         req.Billing,
		Cost:            req.Cost,
		Discount:        req.Discount,
		Day:             day,
	}, nil
}

func (h *AssignmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req assignmentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(w, err)
		return
	}
	assignment, err := h.assignments.CreateAssignment(ActorFromContext(r.Context()), &input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAssignmentResponse(assignment))
}

func (h *AssignmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req assignmentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(w, err)
		return
	}
	assignment, err := h.assignments.UpdateAssignment(ActorFromContext(r.Context()), &usecase.UpdateAssignmentInput{
		AssignmentID:          chi.URLParam(r, "id"),
		CreateAssignmentInput: input,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssignmentResponse(assignment))
}

func (h *AssignmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	assignment, err := h.assignments.GetAssignmentByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssignmentResponse(assignment))
}

func (h *AssignmentHandler) List(w http.ResponseWriter, r *http.Request) {
	// The campaign filter drives the per-campaign calendar view.
	if campaignID := r.URL.Query().Get("campaign_id"); campaignID != "" {
		assignments, err := h.assignments.ListAssignmentsByCampaignID(campaignID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAssignmentResponses(assignments))
		return
	}
	assignments, err := h.assignments.ListAssignments()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssignmentResponses(assignments))
}

func (h *AssignmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.cascade.SoftDelete("assigned_influencer", chi.URLParam(r, "id"), ActorFromContext(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *AssignmentHandler) Earnings(w http.ResponseWriter, r *http.Request) {
	earnings, err := h.assignments.AssignmentEarnings(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"earnings": earnings})
}

func (h *AssignmentHandler) ListHistoryForAssignment(w http.ResponseWriter, r *http.Request) {
	histories, err := h.histories.ListHistoryByAssignmentID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]historyResponse, len(histories))
	for i, history := range histories {
		out[i] = toHistoryResponse(history)
	}
	writeJSON(w, http.StatusOK, out)
}

type historyRequest struct {
	AssignedInfluencerID string  `json:"assigned_influencer_id"`
	DataType             string  `json:"data_type"`
	NoSales              float64 `json:"no_sales"`
	DaySales             string  `json:"day_sales"`
}

func (req *historyRequest) toInput() (usecase.CreateHistoryInput, error) {
	verr := domain.NewValidationError()
	var daySales time.Time
	if parsed := parseDate(verr, "day_sales", req.DaySales); parsed != nil {
		daySales = *parsed
	}
	if err := verr.ErrOrNil(); err != nil {
		return usecase.CreateHistoryInput{}, err
	}
	return usecase.CreateHistoryInput{
		AssignedInfluencerID: req.AssignedInfluencerID,
		DataType:             req.DataType,
		NoSales:              req.NoSales,
		DaySales:             daySales,
	}, nil
}

func (h *AssignmentHandler) CreateHistory(w http.ResponseWriter, r *http.Request) {
	var req historyRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(w, err)
		return
	}
	history, err := h.histories.CreateHistory(ActorFromContext(r.Context()), &input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toHistoryResponse(history))
}

func (h *AssignmentHandler) UpdateHistory(w http.ResponseWriter, r *http.Request) {
	var req historyRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(w, err)
		return
	}
	history, err := h.histories.UpdateHistory(ActorFromContext(r.Context()), &usecase.UpdateHistoryInput{
		HistoryID:          chi.URLParam(r, "id"),
		CreateHistoryInput: input,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryResponse(history))
}

func (h *AssignmentHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.histories.GetHistoryByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryResponse(history))
}

func (h *AssignmentHandler) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.cascade.SoftDelete("influencer_history", chi.URLParam(r, "id"), ActorFromContext(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type paymentRequest struct {
	AssignedInfluencerID string `json:"assigned_influencer_id"`
	Day                  string `json:"day"`
	InvoiceURL           string `json:"invoice_url"`
	BillingStatus        string `json:"billing_status"`
}

func (req *paymentRequest) toInput() (usecase.CreatePaymentInput, error) {
	verr := domain.NewValidationError()
	var day time.Time
	if parsed := parseDate(verr, "day", req.Day); parsed != nil {
		day = *parsed
	}
	if err := verr.ErrOrNil(); err != nil {
		return usecase.CreatePaymentInput{}, err
	}
	return usecase.CreatePaymentInput{
		AssignedInfluencerID: req.AssignedInfluencerID,
		Day:                  day,
		InvoiceURL:           req.InvoiceURL,
		BillingStatus:        req.BillingStatus,
	}, nil
}

func (h *AssignmentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(w, err)
		return
	}
	payment, err := h.payments.CreatePayment(ActorFromContext(r.Context()), &input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPaymentResponse(payment))
}

func (h *AssignmentHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(w, err)
		return
	}
	payment, err := h.payments.UpdatePayment(ActorFromContext(r.Context()), &usecase.UpdatePaymentInput{
		PaymentID:          chi.URLParam(r, "id"),
		CreatePaymentInput: input,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentResponse(payment))
}

func (h *AssignmentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	payment, err := h.payments.GetPaymentByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentResponse(payment))
}

func (h *AssignmentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.payments.ListPayments()
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]paymentResponse, len(payments))
	for i, payment := range payments {
		out[i] = toPaymentResponse(payment)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *AssignmentHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	if err := h.cascade.SoftDelete("influencer_payment", chi.URLParam(r, "id"), ActorFromContext(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *AssignmentHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notifications.ListNotifications()
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]notificationResponse, len(notifications))
	for i, notification := range notifications {
		out[i] = toNotificationResponse(notification)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *AssignmentHandler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	if err := h.cascade.SoftDelete("influencer_unpaid_notification", chi.URLParam(r, "id"), ActorFromContext(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
