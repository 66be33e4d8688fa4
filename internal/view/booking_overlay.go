package view

import "hospital-portal/internal/domain/entity"

const MsgBookingInfoFailed = "Failed to load booking info."

// BookingOverlay is the form a logged-in patient fills to book a doctor.
type BookingOverlay struct {
	DoctorID     int64
	DoctorName   string
	Specialty    string
	PatientID    int64
	PatientName  string
	PatientEmail string
	Slots        []string
	MinDate      string
	Message      string
}

// BuildBookingOverlay needs both records; a missing one yields the failure message only.
func BuildBookingOverlay(doctor *entity.Doctor, patient *entity.Patient, minDate string) BookingOverlay {
	if doctor == nil || patient == nil {
		return BookingOverlay{Message: MsgBookingInfoFailed}
	}
	return BookingOverlay{
		DoctorID:     doctor.ID,
		DoctorName:   doctor.Name,
		Specialty:    doctor.Specialty,
		PatientID:    patient.ID,
		PatientName:  patient.Name,
		PatientEmail: patient.Email,
		Slots:        append([]string(nil), doctor.AvailableTimes...),
		MinDate:      minDate,
	}
}
