package converter

import (
	"strings"

	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
)

// CreateDoctorRequestToEntity converts the add-doctor form to the backend payload
func CreateDoctorRequestToEntity(req *dto.CreateDoctorRequest) entity.Doctor {
	availability := make([]string, 0, len(req.Availability))
	availability = append(availability, req.Availability...)

	return entity.Doctor{
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.TrimSpace(req.Email),
		Phone:          strings.TrimSpace(req.Phone),
		Password:       req.Password,
		Specialty:      req.Specialty,
		AvailableTimes: availability,
	}
}

// DoctorFilterQueryToEntity trims every input; blank values become "no filter"
func DoctorFilterQueryToEntity(q *dto.DoctorFilterQuery) entity.DoctorFilter {
	return entity.DoctorFilter{
		Name:      strings.TrimSpace(q.Name),
		Time:      strings.TrimSpace(q.Time),
		Specialty: strings.TrimSpace(q.Specialty),
	}
}
