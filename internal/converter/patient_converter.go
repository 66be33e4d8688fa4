package converter

import (
	"strings"

	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
)

func PatientSignupRequestToEntity(req *dto.PatientSignupRequest) entity.PatientSignup {
	return entity.PatientSignup{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		Phone:    strings.TrimSpace(req.Phone),
		Address:  strings.TrimSpace(req.Address),
	}
}

func LoginRequestToCredentials(req *dto.LoginRequest) entity.Credentials {
	return entity.Credentials{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}
}

func AdminLoginRequestToCredentials(req *dto.AdminLoginRequest) entity.AdminCredentials {
	return entity.AdminCredentials{
		Username: strings.TrimSpace(req.Username),
		Password: req.Password,
	}
}

func AppointmentQueryToEntity(q *dto.AppointmentQuery) entity.AppointmentQuery {
	return entity.AppointmentQuery{
		Date:        strings.TrimSpace(q.Date),
		PatientName: strings.TrimSpace(q.PatientName),
	}
}

func PatientAppointmentQueryToEntity(q *dto.PatientAppointmentQuery) entity.AppointmentFilter {
	return entity.AppointmentFilter{
		Condition: strings.TrimSpace(q.Condition),
		Name:      strings.TrimSpace(q.Name),
	}
}
