package handler

import (
	"context"
	"net/http"

	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/usecase"
	"hospital-portal/internal/view"
	"hospital-portal/pkg/response"
)

const (
	patientDoctorsView      = "patient-doctors"
	patientAppointmentsView = "patient-appointments"
)

type PatientHandler struct {
	pages          *PageSupport
	patientUsecase usecase.PatientDashboardUsecase
}

func NewPatientHandler(pages *PageSupport, patientUsecase usecase.PatientDashboardUsecase) *PatientHandler {
	return &PatientHandler{
		pages:          pages,
		patientUsecase: patientUsecase,
	}
}

func (h *PatientHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	list := h.patientUsecase.Load(r.Context(), sess)

	var modals []string
	if sess.Role == entity.RolePatient {
		modals = []string{"patientLogin", "patientSignup"}
	}
	h.pages.renderPage(w, r, view.PagePatient, "Patient Dashboard", modals, view.PatientPage{Doctors: list})
}

// DoctorsFragment re-renders the card list from the filter inputs
// @Router /patient/doctors/fragment [get]
func (h *PatientHandler) DoctorsFragment(w http.ResponseWriter, r *http.Request) {
	query := doctorFilterQuery(r)
	if err := h.pages.validator.Validate(&query); err != nil {
		h.pages.renderFragment(w, view.FragmentDoctorList, view.BuildDoctorList(view.DoctorListState{Filtered: true, Failed: true}))
		return
	}

	h.pages.sequenced(w, r, patientDoctorsView, view.FragmentDoctorList, func(ctx context.Context) (interface{}, error) {
		return h.patientUsecase.Filter(ctx, session(r), &query), nil
	})
}

// BookingOverlay renders the booking form for one doctor
// @Router /patient/booking/{doctorId} [get]
func (h *PatientHandler) BookingOverlay(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "doctorId")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	overlay, err := h.patientUsecase.BookingOverlay(r.Context(), session(r), id)
	if err != nil {
		h.pages.writeError(w, err)
		return
	}
	h.pages.renderFragment(w, view.FragmentBookingOverlay, overlay)
}

// Book handles the booking overlay form
// @Accept json
// @Param request body dto.CreateBookingRequest true "Booking Request"
// @Router /patient/appointments [post]
func (h *PatientHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if !h.pages.decode(w, r, &req) {
		return
	}

	result, err := h.patientUsecase.Book(r.Context(), session(r), &req)
	if err != nil {
		h.pages.writeError(w, err)
		return
	}
	writeResult(w, result)
}

func (h *PatientHandler) Appointments(w http.ResponseWriter, r *http.Request) {
	list, err := h.patientUsecase.Appointments(r.Context(), session(r), &dto.PatientAppointmentQuery{})
	if err != nil {
		h.pages.writeError(w, err)
		return
	}
	h.pages.renderPage(w, r, view.PagePatientAppointments, "Your Appointments", nil, view.PatientAppointmentsPage{List: list})
}

// AppointmentsFragment re-renders the patient's own appointment rows
// @Param condition query string false "past or future"
// @Param name query string false "Doctor name"
// @Router /patient/appointments/fragment [get]
func (h *PatientHandler) AppointmentsFragment(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := dto.PatientAppointmentQuery{Condition: q.Get("condition"), Name: q.Get("name")}
	if err := h.pages.validator.Validate(&query); err != nil {
		h.pages.renderFragment(w, view.FragmentPatientAppointments, view.BuildPatientAppointments(view.PatientAppointmentsState{Failed: true}))
		return
	}

	h.pages.sequenced(w, r, patientAppointmentsView, view.FragmentPatientAppointments, func(ctx context.Context) (interface{}, error) {
		return h.patientUsecase.Appointments(ctx, session(r), &query)
	})
}

// CancelAppointment cancels one upcoming appointment
// @Router /patient/appointments/{id} [delete]
func (h *PatientHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	result, err := h.patientUsecase.CancelAppointment(r.Context(), session(r), id)
	if err != nil {
		h.pages.writeError(w, err)
		return
	}
	writeResult(w, result)
}
