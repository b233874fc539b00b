package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arabyads/influencer-service/internal/infrastructure/security"
)

type Handlers struct {
	Users          *UserHandler
	Core           *CoreHandler
	Influencers    *InfluencerHandler
	Clients        *ClientHandler
	Assignments    *AssignmentHandler
	Audit          *AuditHandler
	Reconciliation *ReconciliationHandler
}

// NewRouter assembles the API. Everything except login, health and metrics
// requires a bearer token; user administration, the audit trail and
// reconciliation triggers are staff only.
func NewRouter(tokens *security.TokenManager, h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/auth/login", h.Users.Login)

	r.Group(func(r chi.Router) {
		r.Use(Authenticate(tokens))

		r.Route("/users", func(r chi.Router) {
			r.Use(RequireStaff)
			r.Post("/", h.Users.Create)
			r.Get("/", h.Users.List)
			r.Get("/{id}", h.Users.Get)
			r.Put("/{id}", h.Users.Update)
			r.Delete("/{id}", h.Users.Delete)
			r.Get("/{id}/permissions/{code}", h.Users.CheckPermission)
		})
		r.With(RequireStaff).Get("/permissions", h.Users.ListPermissions)
		r.With(RequireStaff).Get("/audit", h.Audit.List)

		r.Route("/core", func(r chi.Router) {
			r.Route("/categories", func(r chi.Router) {
				r.Post("/", h.Core.CreateCategory)
				r.Get("/", h.Core.ListCategories)
				r.Get("/{id}", h.Core.GetCategory)
				r.Put("/{id}", h.Core.UpdateCategory)
				r.With(RequireStaff).Delete("/{id}", h.Core.DeleteCategory)
			})
			r.Route("/social-platforms", func(r chi.Router) {
				r.Post("/", h.Core.CreatePlatform)
				r.Get("/", h.Core.ListPlatforms)
				r.Get("/{id}", h.Core.GetPlatform)
				r.Put("/{id}", h.Core.UpdatePlatform)
				r.With(RequireStaff).Delete("/{id}", h.Core.DeletePlatform)
			})
			r.Route("/banks", func(r chi.Router) {
				r.Post("/", h.Core.CreateBank)
				r.Get("/", h.Core.ListBanks)
				r.Get("/{id}", h.Core.GetBank)
				r.Put("/{id}", h.Core.UpdateBank)
				r.With(RequireStaff).Delete("/{id}", h.Core.DeleteBank)
			})
			r.Route("/coupons", func(r chi.Router) {
				r.Post("/", h.Core.CreateCoupon)
				r.Get("/", h.Core.ListCoupons)
				r.Get("/{id}", h.Core.GetCoupon)
				r.Put("/{id}", h.Core.UpdateCoupon)
				r.With(RequireStaff).Delete("/{id}", h.Core.DeleteCoupon)
			})
		})

		r.Route("/influencers", func(r chi.Router) {
			r.Post("/", h.Influencers.Create)
			r.Get("/", h.Influencers.List)
			r.Get("/{id}", h.Influencers.Get)
			r.Put("/{id}", h.Influencers.Update)
			r.With(RequireStaff).Delete("/{id}", h.Influencers.Delete)
			r.Get("/{id}/social-accounts", h.Influencers.ListAccountsForInfluencer)
		})
		r.Route("/social-accounts", func(r chi.Router) {
			r.Post("/", h.Influencers.CreateAccount)
			r.Get("/", h.Influencers.ListAccounts)
			r.Get("/{id}", h.Influencers.GetAccount)
			r.Put("/{id}", h.Influencers.UpdateAccount)
			r.With(RequireStaff).Delete("/{id}", h.Influencers.DeleteAccount)
		})

		r.Route("/clients", func(r chi.Router) {
			r.Post("/", h.Clients.Create)
			r.Get("/", h.Clients.List)
			r.Get("/{id}", h.Clients.Get)
			r.Put("/{id}", h.Clients.Update)
			r.With(RequireStaff).Delete("/{id}", h.Clients.Delete)
			r.Get("/{id}/offers", h.Clients.ListOffersForClient)
		})
		r.Route("/offers", func(r chi.Router) {
			r.Post("/", h.Clients.CreateOffer)
			r.Get("/", h.Clients.ListOffers)
			r.Get("/{id}", h.Clients.GetOffer)
			r.Put("/{id}", h.Clients.UpdateOffer)
			r.With(RequireStaff).Delete("/{id}", h.Clients.DeleteOffer)
			r.Get("/{id}/campaigns", h.Clients.ListCampaignsForOffer)
		})
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.Clients.CreateCampaign)
			r.Get("/", h.Clients.ListCampaigns)
			r.Get("/{id}", h.Clients.GetCampaign)
			r.Put("/{id}", h.Clients.UpdateCampaign)
			r.With(RequireStaff).Delete("/{id}", h.Clients.DeleteCampaign)
		})

		r.Route("/assignments", func(r chi.Router) {
			r.Post("/", h.Assignments.Create)
			r.Get("/", h.Assignments.List)
			r.Get("/{id}", h.Assignments.Get)
			r.Put("/{id}", h.Assignments.Update)
			r.With(RequireStaff).Delete("/{id}", h.Assignments.Delete)
			r.Get("/{id}/earnings", h.Assignments.Earnings)
			r.Get("/{id}/history", h.Assignments.ListHistoryForAssignment)
		})
		r.Route("/history", func(r chi.Router) {
			r.Post("/", h.Assignments.CreateHistory)
			r.Get("/{id}", h.Assignments.GetHistory)
			r.Put("/{id}", h.Assignments.UpdateHistory)
			r.With(RequireStaff).Delete("/{id}", h.Assignments.DeleteHistory)
		})
		r.Route("/payments", func(r chi.Router) {
			r.Post("/", h.Assignments.CreatePayment)
			r.Get("/", h.Assignments.ListPayments)
			r.Get("/{id}", h.Assignments.GetPayment)
			r.Put("/{id}", h.Assignments.UpdatePayment)
			r.With(RequireStaff).Delete("/{id}", h.Assignments.DeletePayment)
		})
		r.Route("/unpaid-notifications", func(r chi.Router) {
			r.Get("/", h.Assignments.ListNotifications)
			r.With(RequireStaff).Delete("/{id}", h.Assignments.DeleteNotification)
		})

		r.Route("/reconciliation", func(r chi.Router) {
			r.Use(RequireStaff)
			r.Get("/unpaid", h.Reconciliation.ListUnpaid)
			r.Post("/notifications", h.Reconciliation.RunNotifications)
			r.Post("/mail", h.Reconciliation.RunMail)
		})
	})

	return r
}
