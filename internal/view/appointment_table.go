package view

import (
	"fmt"
	"time"

	"hospital-portal/internal/domain/entity"
)

// AppointmentColumns is the column count of the doctor's patient table.
const AppointmentColumns = 5

const (
	MsgNoAppointments          = "No Appointments found for today."
	MsgLoadAppointmentsFailed  = "Error loading appointments. Try again later."
	MsgNoPatientAppointments   = "No appointments found."
	MsgPatientAppointmentsFail = "Failed to load appointments. Please try again later."
)

// PatientRow is one row of the doctor dashboard table.
type PatientRow struct {
	AppointmentID int64
	PatientID     int64
	Name          string
	Phone         string
	Email         string
	Time          string
}

func BuildPatientRow(appointment entity.Appointment) PatientRow {
	patient := appointment.PatientInfo()
	return PatientRow{
		AppointmentID: appointment.ID,
		PatientID:     patient.ID,
		Name:          patient.Name,
		Phone:         patient.Phone,
		Email:         patient.Email,
		Time:          appointment.Clock(),
	}
}

type AppointmentTableState struct {
	Appointments []entity.Appointment
	Failed       bool
}

// AppointmentTable renders either rows or one message row spanning Columns.
type AppointmentTable struct {
	Rows    []PatientRow
	Message string
	Columns int
}

func BuildAppointmentTable(state AppointmentTableState) AppointmentTable {
	table := AppointmentTable{Columns: AppointmentColumns}
	switch {
	case state.Failed:
		table.Message = MsgLoadAppointmentsFailed
	case len(state.Appointments) == 0:
		table.Message = MsgNoAppointments
	default:
		table.Rows = make([]PatientRow, len(state.Appointments))
		for i, appointment := range state.Appointments {
			table.Rows[i] = BuildPatientRow(appointment)
		}
	}
	return table
}

// PatientAppointmentRow is one entry of the patient's own appointment list.
type PatientAppointmentRow struct {
	ID        int64
	DOMID     string
	Doctor    string
	Date      string
	Time      string
	Status    string
	CancelURL string
}

type PatientAppointmentsState struct {
	Appointments []entity.Appointment
	Now          time.Time
	Failed       bool
}

type PatientAppointments struct {
	Rows    []PatientAppointmentRow
	Message string
}

// BuildPatientAppointments offers a cancel action on upcoming appointments only.
func BuildPatientAppointments(state PatientAppointmentsState) PatientAppointments {
	if state.Failed {
		return PatientAppointments{Message: MsgPatientAppointmentsFail}
	}
	if len(state.Appointments) == 0 {
		return PatientAppointments{Message: MsgNoPatientAppointments}
	}

	rows := make([]PatientAppointmentRow, len(state.Appointments))
	for i, appointment := range state.Appointments {
		row := PatientAppointmentRow{
			ID:     appointment.ID,
			DOMID:  fmt.Sprintf("appointment-%d", appointment.ID),
			Doctor: appointment.DoctorLabel(),
			Date:   appointment.Date(),
			Time:   appointment.Clock(),
			Status: appointment.Status.String(),
		}
		if appointment.IsUpcoming(state.Now) {
			row.CancelURL = fmt.Sprintf("/patient/appointments/%d", appointment.ID)
		}
		rows[i] = row
	}
	return PatientAppointments{Rows: rows}
}
