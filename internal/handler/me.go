package handler

import (
	"net/http"

	"github.com/Derda24/wodenstockai-sub000/internal/domain"
)

func (h *Handler) GetMyInfo(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	h.successResponse(w, r, "account info", myInfo)
}

// GetAdvisory exposes the roster store's degraded-load banner. Empty
// data means the last loads were healthy.
func (h *Handler) GetAdvisory(w http.ResponseWriter, r *http.Request) {
	advisory := h.store.Advisory()
	if advisory == "" {
		h.successResponse(w, r, "no advisory", nil)
		return
	}
	h.successResponse(w, r, "advisory active", advisory)
}
