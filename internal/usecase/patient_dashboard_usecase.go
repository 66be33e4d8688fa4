package usecase

import (
	"context"
	"strconv"
	"time"

	"hospital-portal/internal/client"
	"hospital-portal/internal/converter"
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/service"
	"hospital-portal/internal/view"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// patientUserKind is the user segment of the patient appointments path.
const patientUserKind = "patient"

type PatientDashboardUsecase interface {
	Load(ctx context.Context, sess *entity.Session) view.DoctorList
	Filter(ctx context.Context, sess *entity.Session, query *dto.DoctorFilterQuery) view.DoctorList
	BookingOverlay(ctx context.Context, sess *entity.Session, doctorID int64) (view.BookingOverlay, error)
	Book(ctx context.Context, sess *entity.Session, req *dto.CreateBookingRequest) (entity.Result, error)
	Appointments(ctx context.Context, sess *entity.Session, query *dto.PatientAppointmentQuery) (view.PatientAppointments, error)
	CancelAppointment(ctx context.Context, sess *entity.Session, id int64) (entity.Result, error)
}

type patientDashboardUsecase struct {
	log                *logrus.Logger
	doctorService      client.DoctorService
	patientService     client.PatientService
	appointmentService client.AppointmentService
	auditService       service.AuditService
	now                func() time.Time
}

func NewPatientDashboardUsecase(
	log *logrus.Logger,
	doctorService client.DoctorService,
	patientService client.PatientService,
	appointmentService client.AppointmentService,
	auditService service.AuditService,
) PatientDashboardUsecase {
	return &patientDashboardUsecase{
		log:                log,
		doctorService:      doctorService,
		patientService:     patientService,
		appointmentService: appointmentService,
		auditService:       auditService,
		now:                time.Now,
	}
}

func (u *patientDashboardUsecase) Load(ctx context.Context, sess *entity.Session) view.DoctorList {
	return loadDoctorList(ctx, u.doctorService, sess.Role)
}

func (u *patientDashboardUsecase) Filter(ctx context.Context, sess *entity.Session, query *dto.DoctorFilterQuery) view.DoctorList {
	return filterDoctorList(ctx, u.doctorService, sess.Role, converter.DoctorFilterQueryToEntity(query))
}

// BookingOverlay loads the doctor listing and the patient profile in parallel.
func (u *patientDashboardUsecase) BookingOverlay(ctx context.Context, sess *entity.Session, doctorID int64) (view.BookingOverlay, error) {
	token, ok := sess.GetToken()
	if !ok {
		return view.BookingOverlay{}, ErrUnauthorized
	}

	var (
		doctors []entity.Doctor
		patient *entity.Patient
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		doctors = u.doctorService.GetDoctors(gctx)
		return nil
	})
	g.Go(func() error {
		patient = u.patientService.GetPatientData(gctx, token)
		return nil
	})
	if err := g.Wait(); err != nil {
		return view.BookingOverlay{}, err
	}

	doctor, found := entity.FindDoctor(doctors, doctorID)
	if !found {
		u.log.Warnf("Doctor %d not found for booking", doctorID)
	}
	if patient == nil {
		u.log.Warn("Patient data unavailable for booking")
	}
	return view.BuildBookingOverlay(doctor, patient, u.now().Format(dateLayout)), nil
}

func (u *patientDashboardUsecase) Book(ctx context.Context, sess *entity.Session, req *dto.CreateBookingRequest) (entity.Result, error) {
	token, ok := sess.GetToken()
	if !ok {
		return entity.Result{}, ErrUnauthorized
	}

	booking := converter.CreateBookingRequestToEntity(req)
	result := u.appointmentService.Book(ctx, booking, token)
	u.auditService.LogAction(ctx, sess, service.AuditActionBookAppointment, booking.AppointmentTime, result)
	return result, nil
}

// Appointments lists the patient's own appointments. Without a filter the
// patient id is looked up first; with one the filter endpoint is used.
func (u *patientDashboardUsecase) Appointments(ctx context.Context, sess *entity.Session, query *dto.PatientAppointmentQuery) (view.PatientAppointments, error) {
	token, ok := sess.GetToken()
	if !ok {
		return view.PatientAppointments{}, ErrUnauthorized
	}

	state := view.PatientAppointmentsState{Now: u.now()}
	filter := converter.PatientAppointmentQueryToEntity(query)
	if filter.IsEmpty() {
		patient := u.patientService.GetPatientData(ctx, token)
		if patient == nil {
			state.Failed = true
			return view.BuildPatientAppointments(state), nil
		}
		state.Appointments = u.patientService.GetPatientAppointments(ctx, patient.ID, token, patientUserKind)
	} else {
		state.Appointments = u.patientService.FilterAppointments(ctx, filter, token)
	}
	state.Failed = ctx.Err() != nil
	return view.BuildPatientAppointments(state), nil
}

func (u *patientDashboardUsecase) CancelAppointment(ctx context.Context, sess *entity.Session, id int64) (entity.Result, error) {
	token, ok := sess.GetToken()
	if !ok {
		return entity.Result{}, ErrUnauthorized
	}

	result := u.appointmentService.Cancel(ctx, id, token)
	u.auditService.LogAction(ctx, sess, service.AuditActionCancelAppointment, strconv.FormatInt(id, 10), result)
	return result, nil
}
