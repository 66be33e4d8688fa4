package view

import (
	"testing"
	"time"

	"hospital-portal/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAppointmentTable_EmptyRendersSingleSpanningRow(t *testing.T) {
	table := BuildAppointmentTable(AppointmentTableState{Appointments: []entity.Appointment{}})

	assert.Empty(t, table.Rows)
	assert.Equal(t, MsgNoAppointments, table.Message)
	assert.Equal(t, AppointmentColumns, table.Columns)
}

func TestBuildAppointmentTable_Failure(t *testing.T) {
	table := BuildAppointmentTable(AppointmentTableState{Failed: true})
	assert.Equal(t, MsgLoadAppointmentsFailed, table.Message)
}

func TestBuildAppointmentTable_Rows(t *testing.T) {
	table := BuildAppointmentTable(AppointmentTableState{Appointments: []entity.Appointment{
		{ID: 10, Patient: &entity.Patient{ID: 4, Name: "Ann", Phone: "0123456789", Email: "ann@x.io"}, AppointmentTime: "2025-03-04T09:00:00"},
		{ID: 11, PatientID: 5, PatientName: "Bob", AppointmentTime: "2025-03-04T10:00:00"},
	}})

	require.Len(t, table.Rows, 2)
	assert.Empty(t, table.Message)
	assert.Equal(t, PatientRow{AppointmentID: 10, PatientID: 4, Name: "Ann", Phone: "0123456789", Email: "ann@x.io", Time: "09:00"}, table.Rows[0])
	assert.Equal(t, "Bob", table.Rows[1].Name)
}

func TestBuildPatientAppointments(t *testing.T) {
	now := time.Date(2025, 3, 4, 12, 0, 0, 0, time.Local)

	list := BuildPatientAppointments(PatientAppointmentsState{
		Now: now,
		Appointments: []entity.Appointment{
			{ID: 1, DoctorName: "Lee", AppointmentTime: "2025-03-05T09:00:00"},
			{ID: 2, Doctor: &entity.Doctor{Name: "Kim"}, AppointmentTime: "2025-03-01T09:00:00", Status: entity.AppointmentStatusCompleted},
		},
	})

	require.Len(t, list.Rows, 2)
	assert.Equal(t, "appointment-1", list.Rows[0].DOMID)
	assert.Equal(t, "Lee", list.Rows[0].Doctor)
	assert.Equal(t, "/patient/appointments/1", list.Rows[0].CancelURL)
	assert.Equal(t, "Kim", list.Rows[1].Doctor)
	assert.Equal(t, "Completed", list.Rows[1].Status)
	assert.Empty(t, list.Rows[1].CancelURL)
}

func TestBuildPatientAppointments_Messages(t *testing.T) {
	assert.Equal(t, MsgNoPatientAppointments, BuildPatientAppointments(PatientAppointmentsState{}).Message)
	assert.Equal(t, MsgPatientAppointmentsFail, BuildPatientAppointments(PatientAppointmentsState{Failed: true}).Message)
}

func TestBuildBookingOverlay(t *testing.T) {
	doctor := sampleDoctor()
	patient := &entity.Patient{ID: 3, Name: "Ann", Email: "ann@x.io"}

	overlay := BuildBookingOverlay(&doctor, patient, "2025-03-04")
	assert.Equal(t, int64(7), overlay.DoctorID)
	assert.Equal(t, int64(3), overlay.PatientID)
	assert.Equal(t, doctor.AvailableTimes, overlay.Slots)
	assert.Equal(t, "2025-03-04", overlay.MinDate)
	assert.Empty(t, overlay.Message)

	assert.Equal(t, MsgBookingInfoFailed, BuildBookingOverlay(nil, patient, "2025-03-04").Message)
	assert.Equal(t, MsgBookingInfoFailed, BuildBookingOverlay(&doctor, nil, "2025-03-04").Message)
}
