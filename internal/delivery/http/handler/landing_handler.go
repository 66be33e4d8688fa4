package handler

import (
	"net/http"

	"hospital-portal/internal/view"
)

type LandingHandler struct {
	pages *PageSupport
}

func NewLandingHandler(pages *PageSupport) *LandingHandler {
	return &LandingHandler{pages: pages}
}

// Show clears role and token unconditionally, so arriving at the landing page
// always starts a fresh role selection. A pending flash message survives.
func (h *LandingHandler) Show(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	flash := sess.TakeFlash()
	sess.Clear()
	sess.Flash = flash

	h.pages.renderPage(w, r, view.PageLanding, "Select Role", []string{"adminLogin", "doctorLogin"}, nil)
}
