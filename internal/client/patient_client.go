package client

import (
	"context"
	"net/http"
	"strconv"

	"hospital-portal/internal/domain/entity"
)

const patientResource = "patient"

// PatientLoginResponse is handed back unjudged; the caller checks OK and reads the token.
type PatientLoginResponse struct {
	StatusCode int
	Token      string
}

func (r *PatientLoginResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type PatientService interface {
	Signup(ctx context.Context, signup entity.PatientSignup) entity.Result
	Login(ctx context.Context, credentials entity.Credentials) (*PatientLoginResponse, error)
	GetPatientData(ctx context.Context, token string) *entity.Patient
	GetPatientAppointments(ctx context.Context, id int64, token, user string) []entity.Appointment
	FilterAppointments(ctx context.Context, filter entity.AppointmentFilter, token string) []entity.Appointment
}

type patientService struct {
	api *APIClient
}

func NewPatientService(api *APIClient) PatientService {
	return &patientService{api: api}
}

func (s *patientService) Signup(ctx context.Context, signup entity.PatientSignup) entity.Result {
	return s.api.write(ctx, http.MethodPost, s.api.URL(patientResource), signup, "Failed to sign up")
}

// Login only fails on transport errors. A rejected login is a response with a non-OK status.
func (s *patientService) Login(ctx context.Context, credentials entity.Credentials) (*PatientLoginResponse, error) {
	resp, err := s.api.do(ctx, http.MethodPost, s.api.URL(patientResource, "login"), credentials)
	if err != nil {
		s.api.log.WithError(err).Error("Error :: patientLogin")
		return nil, err
	}

	result := &PatientLoginResponse{StatusCode: resp.StatusCode}
	if resp.OK() {
		var body tokenBody
		if err := resp.Decode(&body); err != nil {
			s.api.log.WithError(err).Warn("Invalid patient login payload")
		}
		result.Token = body.Token
	}
	return result, nil
}

type patientBody struct {
	Patient *entity.Patient `json:"patient"`
}

func (s *patientService) GetPatientData(ctx context.Context, token string) *entity.Patient {
	var body patientBody
	if !s.api.read(ctx, s.api.URL(patientResource, token), &body, "patient data") {
		return nil
	}
	return body.Patient
}

type appointmentsBody struct {
	Appointments []entity.Appointment `json:"appointments"`
}

func (s *patientService) GetPatientAppointments(ctx context.Context, id int64, token, user string) []entity.Appointment {
	target := s.api.URL(patientResource, strconv.FormatInt(id, 10), user, token)

	var body appointmentsBody
	if !s.api.read(ctx, target, &body, "appointments") {
		return []entity.Appointment{}
	}
	return nonNilAppointments(body.Appointments)
}

func (s *patientService) FilterAppointments(ctx context.Context, filter entity.AppointmentFilter, token string) []entity.Appointment {
	target := s.api.URL(patientResource, "filter",
		entity.OrSentinel(filter.Condition), entity.OrSentinel(filter.Name), token)

	var body appointmentsBody
	if !s.api.read(ctx, target, &body, "filtered appointments") {
		return []entity.Appointment{}
	}
	return nonNilAppointments(body.Appointments)
}

func nonNilAppointments(appointments []entity.Appointment) []entity.Appointment {
	if appointments == nil {
		return []entity.Appointment{}
	}
	return appointments
}
