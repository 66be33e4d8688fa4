package handler

import (
	"context"
	"net/http"

	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/usecase"
	"hospital-portal/internal/view"
)

const doctorAppointmentsView = "doctor-appointments"

type DoctorHandler struct {
	pages         *PageSupport
	doctorUsecase usecase.DoctorDashboardUsecase
}

func NewDoctorHandler(pages *PageSupport, doctorUsecase usecase.DoctorDashboardUsecase) *DoctorHandler {
	return &DoctorHandler{
		pages:         pages,
		doctorUsecase: doctorUsecase,
	}
}

func (h *DoctorHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	query := appointmentQuery(r)
	if err := h.pages.validator.Validate(&query); err != nil {
		query = dto.AppointmentQuery{}
	}

	page, err := h.doctorUsecase.Load(r.Context(), session(r), &query)
	if err != nil {
		h.pages.writeError(w, err)
		return
	}
	h.pages.renderPage(w, r, view.PageDoctor, "Doctor Dashboard", nil, page)
}

// AppointmentsFragment re-renders the patient table body
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Param name query string false "Patient name"
// @Router /doctor/appointments/fragment [get]
func (h *DoctorHandler) AppointmentsFragment(w http.ResponseWriter, r *http.Request) {
	query := appointmentQuery(r)
	if err := h.pages.validator.Validate(&query); err != nil {
		h.pages.renderFragment(w, view.FragmentAppointmentTable, view.BuildAppointmentTable(view.AppointmentTableState{Failed: true}))
		return
	}

	h.pages.sequenced(w, r, doctorAppointmentsView, view.FragmentAppointmentTable, func(ctx context.Context) (interface{}, error) {
		page, err := h.doctorUsecase.Load(ctx, session(r), &query)
		if err != nil {
			return nil, err
		}
		return page.Table, nil
	})
}

func appointmentQuery(r *http.Request) dto.AppointmentQuery {
	q := r.URL.Query()
	return dto.AppointmentQuery{
		Date:        q.Get("date"),
		PatientName: q.Get("name"),
	}
}
