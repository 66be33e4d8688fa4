package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
)

const (
	PageLanding             = "landing"
	PageAdmin               = "admin"
	PageDoctor              = "doctor"
	PagePatient             = "patient"
	PagePatientAppointments = "patientAppointments"
)

const (
	FragmentDoctorList          = "doctorList"
	FragmentAppointmentTable    = "appointmentTable"
	FragmentPatientAppointments = "patientAppointmentList"
	FragmentBookingOverlay      = "bookingOverlay"
)

// Specialties offered in the filter and add-doctor forms.
var Specialties = []string{
	"Cardiologist", "Dermatologist", "Neurologist", "Pediatrician", "Orthopedic",
	"Gynecologist", "Psychiatrist", "Dentist", "Ophthalmologist", "ENT",
}

// Slots offered as doctor availability.
var Slots = []string{
	"09:00-10:00", "10:00-11:00", "11:00-12:00", "12:00-13:00",
	"14:00-15:00", "15:00-16:00", "16:00-17:00",
}

// Page is the serializable view state of a full page.
type Page struct {
	Title   string
	Header  Header
	Footer  Footer
	Flash   string
	Modals  []string
	Content interface{}
}

type AdminPage struct {
	Doctors DoctorList
}

type PatientPage struct {
	Doctors DoctorList
}

type DoctorPage struct {
	Date  string
	Table AppointmentTable
}

type PatientAppointmentsPage struct {
	List PatientAppointments
}

// Renderer parses every template once at startup.
type Renderer struct {
	base  *template.Template
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"specialties": func() []string { return Specialties },
		"slots":       func() []string { return Slots },
	}

	base, err := template.New("base").Funcs(funcs).Parse(layoutTemplate + scriptTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	bodies := map[string]string{
		PageLanding:             landingTemplate,
		PageAdmin:               adminTemplate,
		PageDoctor:              doctorTemplate,
		PagePatient:             patientTemplate,
		PagePatientAppointments: patientAppointmentsTemplate,
	}

	pages := make(map[string]*template.Template, len(bodies))
	for name, body := range bodies {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := clone.Parse(body); err != nil {
			return nil, fmt.Errorf("failed to parse page %s: %w", name, err)
		}
		pages[name] = clone
	}

	return &Renderer{base: base, pages: pages}, nil
}

// Page renders a whole page into w. Output is buffered so a template error
// never leaves a half-written response.
func (r *Renderer) Page(w io.Writer, name string, page Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// Fragment renders one named fragment for a partial refresh.
func (r *Renderer) Fragment(w io.Writer, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := r.base.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
