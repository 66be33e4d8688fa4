package client

import (
	"context"
	"net/http"
	"strconv"

	"hospital-portal/internal/domain/entity"
)

const doctorResource = "doctor"

type DoctorService interface {
	GetDoctors(ctx context.Context) []entity.Doctor
	FilterDoctors(ctx context.Context, filter entity.DoctorFilter) []entity.Doctor
	SaveDoctor(ctx context.Context, doctor entity.Doctor, token string) entity.Result
	DeleteDoctor(ctx context.Context, id int64, token string) entity.Result
	Login(ctx context.Context, credentials entity.Credentials) (string, error)
}

type doctorService struct {
	api *APIClient
}

func NewDoctorService(api *APIClient) DoctorService {
	return &doctorService{api: api}
}

type doctorsBody struct {
	Doctors []entity.Doctor `json:"doctors"`
}

func (s *doctorService) GetDoctors(ctx context.Context) []entity.Doctor {
	var body doctorsBody
	if !s.api.read(ctx, s.api.URL(doctorResource), &body, "doctors") {
		return []entity.Doctor{}
	}
	return nonNilDoctors(body.Doctors)
}

// FilterDoctors encodes every empty filter field as the sentinel, so an empty
// filter hits /doctor/filter/null/null/null.
func (s *doctorService) FilterDoctors(ctx context.Context, filter entity.DoctorFilter) []entity.Doctor {
	segments := append([]string{doctorResource, "filter"}, filter.PathSegments()...)

	var body doctorsBody
	if !s.api.read(ctx, s.api.URL(segments...), &body, "filtered doctors") {
		return []entity.Doctor{}
	}
	return nonNilDoctors(body.Doctors)
}

func (s *doctorService) SaveDoctor(ctx context.Context, doctor entity.Doctor, token string) entity.Result {
	return s.api.write(ctx, http.MethodPost, s.api.URL(doctorResource, token), doctor, "Failed to save doctor")
}

func (s *doctorService) DeleteDoctor(ctx context.Context, id int64, token string) entity.Result {
	target := s.api.URL(doctorResource, strconv.FormatInt(id, 10), token)
	return s.api.write(ctx, http.MethodDelete, target, nil, "Failed to delete doctor")
}

func (s *doctorService) Login(ctx context.Context, credentials entity.Credentials) (string, error) {
	return s.api.login(ctx, s.api.URL(doctorResource, "login"), credentials)
}

func nonNilDoctors(doctors []entity.Doctor) []entity.Doctor {
	if doctors == nil {
		return []entity.Doctor{}
	}
	return doctors
}
