package dto

// Request DTOs

type CreateBookingRequest struct {
	DoctorID  int64  `json:"doctor_id,string" validate:"required,min=1"`
	PatientID int64  `json:"patient_id,string" validate:"required,min=1"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required"`
}
