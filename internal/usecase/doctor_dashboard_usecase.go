package usecase

import (
	"context"
	"time"

	"hospital-portal/internal/client"
	"hospital-portal/internal/converter"
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/view"

	"github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

type DoctorDashboardUsecase interface {
	Load(ctx context.Context, sess *entity.Session, query *dto.AppointmentQuery) (*view.DoctorPage, error)
}

type doctorDashboardUsecase struct {
	log                *logrus.Logger
	appointmentService client.AppointmentService
	now                func() time.Time
}

func NewDoctorDashboardUsecase(log *logrus.Logger, appointmentService client.AppointmentService) DoctorDashboardUsecase {
	return &doctorDashboardUsecase{
		log:                log,
		appointmentService: appointmentService,
		now:                time.Now,
	}
}

// Load fetches the doctor's appointments for one day. The date defaults to
// today and an empty patient name is sent as the sentinel.
func (u *doctorDashboardUsecase) Load(ctx context.Context, sess *entity.Session, query *dto.AppointmentQuery) (*view.DoctorPage, error) {
	token, ok := sess.GetToken()
	if !ok {
		return nil, ErrUnauthorized
	}

	q := converter.AppointmentQueryToEntity(query)
	if q.Date == "" {
		q.Date = u.now().Format(dateLayout)
	}

	appointments := u.appointmentService.ListForDoctor(ctx, q, token)
	u.log.WithFields(logrus.Fields{"date": q.Date, "count": len(appointments)}).Debug("Loaded doctor appointments")

	return &view.DoctorPage{
		Date: q.Date,
		Table: view.BuildAppointmentTable(view.AppointmentTableState{
			Appointments: appointments,
			Failed:       ctx.Err() != nil,
		}),
	}, nil
}
