package entity

import (
	"strings"
	"time"
)

// AppointmentStatus mirrors the backend's integer status
type AppointmentStatus int

const (
	AppointmentStatusScheduled AppointmentStatus = 0
	AppointmentStatusCompleted AppointmentStatus = 1
)

func (s AppointmentStatus) String() string {
	if s == AppointmentStatusCompleted {
		return "Completed"
	}
	return "Scheduled"
}

// Appointment as rendered in the dashboards. The backend sends either a
// nested patient/doctor object or flattened fields, both are accepted.
type Appointment struct {
	ID              int64             `json:"id"`
	Patient         *Patient          `json:"patient,omitempty"`
	Doctor          *Doctor           `json:"doctor,omitempty"`
	AppointmentTime string            `json:"appointmentTime"`
	Status          AppointmentStatus `json:"status"`

	PatientID    int64  `json:"patientId,omitempty"`
	PatientName  string `json:"patientName,omitempty"`
	PatientEmail string `json:"patientEmail,omitempty"`
	PatientPhone string `json:"patientPhone,omitempty"`
	DoctorID     int64  `json:"doctorId,omitempty"`
	DoctorName   string `json:"doctorName,omitempty"`
}

// PatientInfo returns the nested patient, or one built from the flattened fields.
func (a Appointment) PatientInfo() Patient {
	if a.Patient != nil {
		return *a.Patient
	}
	return Patient{
		ID:    a.PatientID,
		Name:  a.PatientName,
		Email: a.PatientEmail,
		Phone: a.PatientPhone,
	}
}

func (a Appointment) DoctorLabel() string {
	if a.Doctor != nil {
		return a.Doctor.Name
	}
	return a.DoctorName
}

// Date returns the YYYY-MM-DD part of the appointment time.
func (a Appointment) Date() string {
	date, _, _ := strings.Cut(a.AppointmentTime, "T")
	return date
}

// Clock returns the HH:MM part of the appointment time.
func (a Appointment) Clock() string {
	_, clock, ok := strings.Cut(a.AppointmentTime, "T")
	if !ok {
		return ""
	}
	if len(clock) > 5 {
		clock = clock[:5]
	}
	return clock
}

// IsUpcoming reports whether the appointment is still scheduled and in the future.
func (a Appointment) IsUpcoming(now time.Time) bool {
	if a.Status != AppointmentStatusScheduled {
		return false
	}
	at, err := time.ParseInLocation("2006-01-02T15:04:05", a.AppointmentTime, now.Location())
	if err != nil {
		at, err = time.ParseInLocation("2006-01-02T15:04", a.AppointmentTime, now.Location())
		if err != nil {
			return false
		}
	}
	return at.After(now)
}

// AppointmentQuery is the doctor dashboard's filter state.
type AppointmentQuery struct {
	Date        string // YYYY-MM-DD
	PatientName string
}

// AppointmentFilter is the patient's own appointment filter.
type AppointmentFilter struct {
	Condition string // "past" or "future"
	Name      string // doctor name
}

func (f AppointmentFilter) IsEmpty() bool {
	return f.Condition == "" && f.Name == ""
}

// BookingRequest is the payload posted to book an appointment.
type BookingRequest struct {
	Doctor          BookingRef        `json:"doctor"`
	Patient         BookingRef        `json:"patient"`
	AppointmentTime string            `json:"appointmentTime"`
	Status          AppointmentStatus `json:"status"`
}

type BookingRef struct {
	ID int64 `json:"id"`
}

// Result is the normalized outcome of a write call against the backend.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
