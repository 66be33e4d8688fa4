package http

import (
	"net/http"

	"hospital-portal/internal/delivery/http/handler"
	"hospital-portal/internal/delivery/http/middleware"
	"hospital-portal/internal/view"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router            *mux.Router
	log               *logrus.Logger
	landingHandler    *handler.LandingHandler
	authHandler       *handler.AuthHandler
	adminHandler      *handler.AdminHandler
	doctorHandler     *handler.DoctorHandler
	patientHandler    *handler.PatientHandler
	healthHandler     *handler.HealthHandler
	sessionMiddleware *middleware.SessionMiddleware
	rateLimiter       *middleware.RateLimiter
}

func NewRouter(
	log *logrus.Logger,
	landingHandler *handler.LandingHandler,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	healthHandler *handler.HealthHandler,
	sessionMiddleware *middleware.SessionMiddleware,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		log:               log,
		landingHandler:    landingHandler,
		authHandler:       authHandler,
		adminHandler:      adminHandler,
		doctorHandler:     doctorHandler,
		patientHandler:    patientHandler,
		healthHandler:     healthHandler,
		sessionMiddleware: sessionMiddleware,
		rateLimiter:       rateLimiter,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Use(middleware.RequestLogger(r.log))

	// Health check and static assets (no session)
	r.router.HandleFunc("/health", r.healthHandler.Check).Methods(http.MethodGet)
	r.router.PathPrefix("/assets/").Handler(http.FileServer(http.FS(view.Assets))).Methods(http.MethodGet)

	pages := r.router.NewRoute().Subrouter()
	pages.Use(r.sessionMiddleware.Load)

	// Landing and role selection
	pages.HandleFunc("/", r.landingHandler.Show).Methods(http.MethodGet)
	pages.HandleFunc("/role/{role}", r.authHandler.SelectRole).Methods(http.MethodPost)
	pages.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	pages.HandleFunc("/logout/patient", r.authHandler.LogoutPatient).Methods(http.MethodPost)

	// Credential forms (rate limited)
	auth := pages.NewRoute().Subrouter()
	auth.Use(r.rateLimiter.Limit)
	auth.HandleFunc("/login/admin", r.authHandler.AdminLogin).Methods(http.MethodPost)
	auth.HandleFunc("/login/doctor", r.authHandler.DoctorLogin).Methods(http.MethodPost)
	auth.HandleFunc("/login/patient", r.authHandler.PatientLogin).Methods(http.MethodPost)
	auth.HandleFunc("/signup/patient", r.authHandler.PatientSignup).Methods(http.MethodPost)

	// Admin routes
	admin := pages.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/dashboard", r.adminHandler.Dashboard).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/fragment", r.adminHandler.DoctorsFragment).Methods(http.MethodGet)
	admin.HandleFunc("/doctors", r.adminHandler.AddDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", r.adminHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Doctor routes
	doctor := pages.PathPrefix("/doctor").Subrouter()
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/dashboard", r.doctorHandler.Dashboard).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments/fragment", r.doctorHandler.AppointmentsFragment).Methods(http.MethodGet)

	// Patient routes, anonymous or logged in
	patient := pages.PathPrefix("/patient").Subrouter()
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/dashboard", r.patientHandler.Dashboard).Methods(http.MethodGet)
	patient.HandleFunc("/doctors/fragment", r.patientHandler.DoctorsFragment).Methods(http.MethodGet)

	// Patient routes acting on the patient's own data
	loggedPatient := pages.PathPrefix("/patient").Subrouter()
	loggedPatient.Use(middleware.RequireLoggedPatient)
	loggedPatient.HandleFunc("/booking/{doctorId}", r.patientHandler.BookingOverlay).Methods(http.MethodGet)
	loggedPatient.HandleFunc("/appointments", r.patientHandler.Book).Methods(http.MethodPost)
	loggedPatient.HandleFunc("/appointments", r.patientHandler.Appointments).Methods(http.MethodGet)
	loggedPatient.HandleFunc("/appointments/fragment", r.patientHandler.AppointmentsFragment).Methods(http.MethodGet)
	loggedPatient.HandleFunc("/appointments/{id}", r.patientHandler.CancelAppointment).Methods(http.MethodDelete)

	return r.router
}
