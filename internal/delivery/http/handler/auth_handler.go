package handler

import (
	"net/http"

	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/usecase"
	"hospital-portal/pkg/response"

	"github.com/gorilla/mux"
)

type AuthHandler struct {
	pages       *PageSupport
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(pages *PageSupport, authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		pages:       pages,
		authUsecase: authUsecase,
	}
}

// SelectRole handles the anonymous role buttons of the landing page
// @Router /role/{role} [post]
func (h *AuthHandler) SelectRole(w http.ResponseWriter, r *http.Request) {
	redirect, err := h.authUsecase.SelectRole(r.Context(), session(r), mux.Vars(r)["role"])
	if err != nil {
		h.pages.writeError(w, err)
		return
	}
	response.SuccessRedirect(w, "", redirect)
}

// AdminLogin handles the admin login modal
// @Accept json
// @Param request body dto.AdminLoginRequest true "Admin Login Request"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /login/admin [post]
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminLoginRequest
	if !h.pages.decode(w, r, &req) {
		return
	}

	redirect, err := h.authUsecase.AdminLogin(r.Context(), session(r), &req)
	if err != nil {
		h.pages.writeError(w, err)
		return
	}
	response.SuccessRedirect(w, "", redirect)
}

// DoctorLogin handles the doctor login modal
// @Accept json
// @Param request body dto.LoginRequest true "Login Request"
// @Router /login/doctor [post]
func (h *AuthHandler) DoctorLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !h.pages.decode(w, r, &req) {
		return
	}

	redirect, err := h.authUsecase.DoctorLogin(r.Context(), session(r), &req)
	if err != nil {
		h.pages.writeError(w, err)
		return
	}
	response.SuccessRedirect(w, "", redirect)
}

// PatientLogin handles the patient login modal
// @Accept json
// @Param request body dto.LoginRequest true "Login Request"
// @Router /login/patient [post]
func (h *AuthHandler) PatientLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !h.pages.decode(w, r, &req) {
		return
	}

	redirect, err := h.authUsecase.PatientLogin(r.Context(), session(r), &req)
	if err != nil {
		h.pages.writeError(w, err)
		return
	}
	response.SuccessRedirect(w, "", redirect)
}

// PatientSignup handles the signup modal. The backend message is shown either way.
// @Accept json
// @Param request body dto.PatientSignupRequest true "Signup Request"
// @Router /signup/patient [post]
func (h *AuthHandler) PatientSignup(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientSignupRequest
	if !h.pages.decode(w, r, &req) {
		return
	}

	writeResult(w, h.authUsecase.PatientSignup(r.Context(), &req))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	response.SuccessRedirect(w, "", h.authUsecase.Logout(r.Context(), session(r)))
}

func (h *AuthHandler) LogoutPatient(w http.ResponseWriter, r *http.Request) {
	response.SuccessRedirect(w, "", h.authUsecase.LogoutPatient(r.Context(), session(r)))
}
