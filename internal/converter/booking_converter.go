package converter

import (
	"strings"

	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
)

// CreateBookingRequestToEntity converts the booking form to the backend payload.
// A slot like "09:00-10:00" books its start time.
func CreateBookingRequestToEntity(req *dto.CreateBookingRequest) entity.BookingRequest {
	start, _, _ := strings.Cut(req.Time, "-")
	start = strings.TrimSpace(start)
	if len(start) == 5 {
		start += ":00"
	}

	return entity.BookingRequest{
		Doctor:          entity.BookingRef{ID: req.DoctorID},
		Patient:         entity.BookingRef{ID: req.PatientID},
		AppointmentTime: req.Date + "T" + start,
		Status:          entity.AppointmentStatusScheduled,
	}
}
