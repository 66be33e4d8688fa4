package usecase

import (
	"context"
	"io"
	"sync"

	"hospital-portal/internal/client"
	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/service"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

var _ client.DoctorService = (*MockDoctorService)(nil)

type MockDoctorService struct {
	GetDoctorsFunc    func(ctx context.Context) []entity.Doctor
	FilterDoctorsFunc func(ctx context.Context, filter entity.DoctorFilter) []entity.Doctor
	SaveDoctorFunc    func(ctx context.Context, doctor entity.Doctor, token string) entity.Result
	DeleteDoctorFunc  func(ctx context.Context, id int64, token string) entity.Result
	LoginFunc         func(ctx context.Context, credentials entity.Credentials) (string, error)

	SaveDoctorCalls int
}

func (m *MockDoctorService) GetDoctors(ctx context.Context) []entity.Doctor {
	if m.GetDoctorsFunc != nil {
		return m.GetDoctorsFunc(ctx)
	}
	return []entity.Doctor{}
}

func (m *MockDoctorService) FilterDoctors(ctx context.Context, filter entity.DoctorFilter) []entity.Doctor {
	if m.FilterDoctorsFunc != nil {
		return m.FilterDoctorsFunc(ctx, filter)
	}
	return []entity.Doctor{}
}

func (m *MockDoctorService) SaveDoctor(ctx context.Context, doctor entity.Doctor, token string) entity.Result {
	m.SaveDoctorCalls++
	if m.SaveDoctorFunc != nil {
		return m.SaveDoctorFunc(ctx, doctor, token)
	}
	return entity.Result{Success: true, Message: "saved"}
}

func (m *MockDoctorService) DeleteDoctor(ctx context.Context, id int64, token string) entity.Result {
	if m.DeleteDoctorFunc != nil {
		return m.DeleteDoctorFunc(ctx, id, token)
	}
	return entity.Result{Success: true, Message: "deleted"}
}

func (m *MockDoctorService) Login(ctx context.Context, credentials entity.Credentials) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, credentials)
	}
	return "", client.ErrInvalidCredentials
}

var _ client.AdminService = (*MockAdminService)(nil)

type MockAdminService struct {
	LoginFunc func(ctx context.Context, credentials entity.AdminCredentials) (string, error)
}

func (m *MockAdminService) Login(ctx context.Context, credentials entity.AdminCredentials) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, credentials)
	}
	return "", client.ErrInvalidCredentials
}

var _ client.PatientService = (*MockPatientService)(nil)

type MockPatientService struct {
	SignupFunc                 func(ctx context.Context, signup entity.PatientSignup) entity.Result
	LoginFunc                  func(ctx context.Context, credentials entity.Credentials) (*client.PatientLoginResponse, error)
	GetPatientDataFunc         func(ctx context.Context, token string) *entity.Patient
	GetPatientAppointmentsFunc func(ctx context.Context, id int64, token, user string) []entity.Appointment
	FilterAppointmentsFunc     func(ctx context.Context, filter entity.AppointmentFilter, token string) []entity.Appointment
}

func (m *MockPatientService) Signup(ctx context.Context, signup entity.PatientSignup) entity.Result {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, signup)
	}
	return entity.Result{Success: true, Message: "Signup successful"}
}

func (m *MockPatientService) Login(ctx context.Context, credentials entity.Credentials) (*client.PatientLoginResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, credentials)
	}
	return &client.PatientLoginResponse{StatusCode: 401}, nil
}

func (m *MockPatientService) GetPatientData(ctx context.Context, token string) *entity.Patient {
	if m.GetPatientDataFunc != nil {
		return m.GetPatientDataFunc(ctx, token)
	}
	return nil
}

func (m *MockPatientService) GetPatientAppointments(ctx context.Context, id int64, token, user string) []entity.Appointment {
	if m.GetPatientAppointmentsFunc != nil {
		return m.GetPatientAppointmentsFunc(ctx, id, token, user)
	}
	return []entity.Appointment{}
}

func (m *MockPatientService) FilterAppointments(ctx context.Context, filter entity.AppointmentFilter, token string) []entity.Appointment {
	if m.FilterAppointmentsFunc != nil {
		return m.FilterAppointmentsFunc(ctx, filter, token)
	}
	return []entity.Appointment{}
}

var _ client.AppointmentService = (*MockAppointmentService)(nil)

type MockAppointmentService struct {
	ListForDoctorFunc func(ctx context.Context, query entity.AppointmentQuery, token string) []entity.Appointment
	BookFunc          func(ctx context.Context, booking entity.BookingRequest, token string) entity.Result
	CancelFunc        func(ctx context.Context, id int64, token string) entity.Result
}

func (m *MockAppointmentService) ListForDoctor(ctx context.Context, query entity.AppointmentQuery, token string) []entity.Appointment {
	if m.ListForDoctorFunc != nil {
		return m.ListForDoctorFunc(ctx, query, token)
	}
	return []entity.Appointment{}
}

func (m *MockAppointmentService) Book(ctx context.Context, booking entity.BookingRequest, token string) entity.Result {
	if m.BookFunc != nil {
		return m.BookFunc(ctx, booking, token)
	}
	return entity.Result{Success: true, Message: "Appointment Booked Successfully"}
}

func (m *MockAppointmentService) Cancel(ctx context.Context, id int64, token string) entity.Result {
	if m.CancelFunc != nil {
		return m.CancelFunc(ctx, id, token)
	}
	return entity.Result{Success: true, Message: "Appointment cancelled"}
}

var _ service.AuditService = (*MockAuditService)(nil)

type auditCall struct {
	Action  string
	Target  string
	Success bool
}

type MockAuditService struct {
	mu    sync.Mutex
	Calls []auditCall
}

func (m *MockAuditService) LogAction(ctx context.Context, sess *entity.Session, action, target string, result entity.Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, auditCall{Action: action, Target: target, Success: result.Success})
}
