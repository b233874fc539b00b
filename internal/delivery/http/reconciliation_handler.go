package http

import (
	"net/http"

	"github.com/arabyads/influencer-service/internal/usecase/reconciliation"
)

// ReconciliationHandler exposes the scheduled jobs for on-demand runs by
// staff, mirroring what the cron triggers at 09:00.
type ReconciliationHandler struct {
	reconciler *reconciliation.Usecase
}

func NewReconciliationHandler(reconciler *reconciliation.Usecase) *ReconciliationHandler {
	return &ReconciliationHandler{reconciler: reconciler}
}

func (h *ReconciliationHandler) ListUnpaid(w http.ResponseWriter, r *http.Request) {
	unpaid, err := h.reconciler.UnpaidAssignments()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssignmentResponses(unpaid))
}

func (h *ReconciliationHandler) RunNotifications(w http.ResponseWriter, r *http.Request) {
	inserted, skipped, err := h.reconciler.SaveUnpaidNotifications()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{
		"inserted": inserted,
		"skipped":  skipped,
	})
}

func (h *ReconciliationHandler) RunMail(w http.ResponseWriter, r *http.Request) {
	if err := h.reconciler.MailFinance(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
