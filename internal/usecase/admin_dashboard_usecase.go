package usecase

import (
	"context"
	"strconv"

	"hospital-portal/internal/client"
	"hospital-portal/internal/converter"
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/service"
	"hospital-portal/internal/view"

	"github.com/sirupsen/logrus"
)

type AdminDashboardUsecase interface {
	Load(ctx context.Context, sess *entity.Session) view.DoctorList
	Filter(ctx context.Context, sess *entity.Session, query *dto.DoctorFilterQuery) view.DoctorList
	AddDoctor(ctx context.Context, sess *entity.Session, req *dto.CreateDoctorRequest) (entity.Result, error)
	DeleteDoctor(ctx context.Context, sess *entity.Session, id int64, query *dto.DoctorFilterQuery) (entity.Result, view.DoctorList, error)
}

type adminDashboardUsecase struct {
	log           *logrus.Logger
	doctorService client.DoctorService
	auditService  service.AuditService
}

func NewAdminDashboardUsecase(
	log *logrus.Logger,
	doctorService client.DoctorService,
	auditService service.AuditService,
) AdminDashboardUsecase {
	return &adminDashboardUsecase{
		log:           log,
		doctorService: doctorService,
		auditService:  auditService,
	}
}

func (u *adminDashboardUsecase) Load(ctx context.Context, sess *entity.Session) view.DoctorList {
	return loadDoctorList(ctx, u.doctorService, sess.Role)
}

func (u *adminDashboardUsecase) Filter(ctx context.Context, sess *entity.Session, query *dto.DoctorFilterQuery) view.DoctorList {
	return filterDoctorList(ctx, u.doctorService, sess.Role, converter.DoctorFilterQueryToEntity(query))
}

// AddDoctor requires the admin token; without it nothing is sent to the backend.
func (u *adminDashboardUsecase) AddDoctor(ctx context.Context, sess *entity.Session, req *dto.CreateDoctorRequest) (entity.Result, error) {
	token, ok := sess.GetToken()
	if !ok {
		u.log.Warn("Add doctor attempted without token")
		return entity.Result{}, ErrUnauthorized
	}

	doctor := converter.CreateDoctorRequestToEntity(req)
	result := u.doctorService.SaveDoctor(ctx, doctor, token)
	u.auditService.LogAction(ctx, sess, service.AuditActionAddDoctor, doctor.Email, result)
	return result, nil
}

// DeleteDoctor removes one doctor and, on success, returns the listing under
// the active filter minus that doctor's card, even if the backend still lists it.
func (u *adminDashboardUsecase) DeleteDoctor(ctx context.Context, sess *entity.Session, id int64, query *dto.DoctorFilterQuery) (entity.Result, view.DoctorList, error) {
	token, ok := sess.GetToken()
	if !ok {
		return entity.Result{}, view.DoctorList{}, ErrUnauthorized
	}

	result := u.doctorService.DeleteDoctor(ctx, id, token)
	u.auditService.LogAction(ctx, sess, service.AuditActionDeleteDoctor, strconv.FormatInt(id, 10), result)
	if !result.Success {
		return result, view.DoctorList{}, nil
	}

	list := filterDoctorList(ctx, u.doctorService, sess.Role, converter.DoctorFilterQueryToEntity(query))
	return result, list.Without(id), nil
}

// loadDoctorList renders every doctor for the given role.
func loadDoctorList(ctx context.Context, doctors client.DoctorService, role entity.Role) view.DoctorList {
	list := doctors.GetDoctors(ctx)
	return view.BuildDoctorList(view.DoctorListState{
		Role:    role,
		Doctors: list,
		Failed:  ctx.Err() != nil,
	})
}

// filterDoctorList re-derives the whole listing from the filter inputs.
// An empty filter is still sent, with every position as the sentinel.
func filterDoctorList(ctx context.Context, doctors client.DoctorService, role entity.Role, filter entity.DoctorFilter) view.DoctorList {
	list := doctors.FilterDoctors(ctx, filter)
	return view.BuildDoctorList(view.DoctorListState{
		Role:     role,
		Doctors:  list,
		Filtered: !filter.IsEmpty(),
		Failed:   ctx.Err() != nil,
	})
}
