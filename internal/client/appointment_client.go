package client

import (
	"context"
	"net/http"
	"strconv"

	"hospital-portal/internal/domain/entity"
)

const appointmentResource = "appointments"

type AppointmentService interface {
	ListForDoctor(ctx context.Context, query entity.AppointmentQuery, token string) []entity.Appointment
	Book(ctx context.Context, booking entity.BookingRequest, token string) entity.Result
	Cancel(ctx context.Context, id int64, token string) entity.Result
}

type appointmentService struct {
	api *APIClient
}

func NewAppointmentService(api *APIClient) AppointmentService {
	return &appointmentService{api: api}
}

// ListForDoctor returns the doctor's appointments for one date, optionally narrowed by patient name.
func (s *appointmentService) ListForDoctor(ctx context.Context, query entity.AppointmentQuery, token string) []entity.Appointment {
	target := s.api.URL(appointmentResource, query.Date, entity.OrSentinel(query.PatientName), token)

	var body appointmentsBody
	if !s.api.read(ctx, target, &body, "doctor appointments") {
		return []entity.Appointment{}
	}
	return nonNilAppointments(body.Appointments)
}

func (s *appointmentService) Book(ctx context.Context, booking entity.BookingRequest, token string) entity.Result {
	return s.api.write(ctx, http.MethodPost, s.api.URL(appointmentResource, token), booking, "Failed to book appointment")
}

func (s *appointmentService) Cancel(ctx context.Context, id int64, token string) entity.Result {
	target := s.api.URL(appointmentResource, strconv.FormatInt(id, 10), token)
	return s.api.write(ctx, http.MethodDelete, target, nil, "Failed to cancel appointment")
}
