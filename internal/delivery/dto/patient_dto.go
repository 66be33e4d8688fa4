package dto

// AppointmentQuery is read from the doctor dashboard's date picker and search bar.
type AppointmentQuery struct {
	Date        string `validate:"omitempty,datetime=2006-01-02"`
	PatientName string `validate:"omitempty,max=100"`
}

// PatientAppointmentQuery narrows the patient's own appointments.
type PatientAppointmentQuery struct {
	Condition string `validate:"omitempty,oneof=past future"`
	Name      string `validate:"omitempty,max=100"`
}
