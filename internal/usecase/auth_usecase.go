package usecase

import (
	"context"
	"errors"

	"hospital-portal/internal/client"
	"hospital-portal/internal/converter"
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginFailed        = errors.New("login failed")
	ErrRoleNotSelectable  = errors.New("role cannot be selected without login")
	ErrUnauthorized       = errors.New("unauthorized")
)

// Dashboard entry points per role
const (
	AdminDashboardPath   = "/admin/dashboard"
	DoctorDashboardPath  = "/doctor/dashboard"
	PatientDashboardPath = "/patient/dashboard"
	LandingPath          = "/"
)

type AuthUsecase interface {
	SelectRole(ctx context.Context, sess *entity.Session, tag string) (string, error)
	AdminLogin(ctx context.Context, sess *entity.Session, req *dto.AdminLoginRequest) (string, error)
	DoctorLogin(ctx context.Context, sess *entity.Session, req *dto.LoginRequest) (string, error)
	PatientLogin(ctx context.Context, sess *entity.Session, req *dto.LoginRequest) (string, error)
	PatientSignup(ctx context.Context, req *dto.PatientSignupRequest) entity.Result
	Logout(ctx context.Context, sess *entity.Session) string
	LogoutPatient(ctx context.Context, sess *entity.Session) string
}

type authUsecase struct {
	log            *logrus.Logger
	adminService   client.AdminService
	doctorService  client.DoctorService
	patientService client.PatientService
}

func NewAuthUsecase(
	log *logrus.Logger,
	adminService client.AdminService,
	doctorService client.DoctorService,
	patientService client.PatientService,
) AuthUsecase {
	return &authUsecase{
		log:            log,
		adminService:   adminService,
		doctorService:  doctorService,
		patientService: patientService,
	}
}

// SelectRole stores an anonymous role. Only the patient role can be picked
// without credentials; admin and doctor go through their login forms.
func (u *authUsecase) SelectRole(ctx context.Context, sess *entity.Session, tag string) (string, error) {
	role, err := entity.ParseRole(tag)
	if err != nil {
		return "", err
	}
	if role != entity.RolePatient {
		return "", ErrRoleNotSelectable
	}

	sess.SetSession(entity.RolePatient, "")
	return PatientDashboardPath, nil
}

func (u *authUsecase) AdminLogin(ctx context.Context, sess *entity.Session, req *dto.AdminLoginRequest) (string, error) {
	token, err := u.adminService.Login(ctx, converter.AdminLoginRequestToCredentials(req))
	if err != nil {
		return "", u.loginError("admin", err)
	}

	sess.SetSession(entity.RoleAdmin, token)
	return AdminDashboardPath, nil
}

func (u *authUsecase) DoctorLogin(ctx context.Context, sess *entity.Session, req *dto.LoginRequest) (string, error) {
	token, err := u.doctorService.Login(ctx, converter.LoginRequestToCredentials(req))
	if err != nil {
		return "", u.loginError("doctor", err)
	}

	sess.SetSession(entity.RoleDoctor, token)
	return DoctorDashboardPath, nil
}

// PatientLogin leaves the session untouched unless the backend accepts the
// credentials and returns a token.
func (u *authUsecase) PatientLogin(ctx context.Context, sess *entity.Session, req *dto.LoginRequest) (string, error) {
	resp, err := u.patientService.Login(ctx, converter.LoginRequestToCredentials(req))
	if err != nil {
		return "", u.loginError("patient", err)
	}
	if !resp.OK() {
		u.log.WithField("status", resp.StatusCode).Warn("Patient login rejected")
		return "", ErrInvalidCredentials
	}
	if resp.Token == "" {
		return "", u.loginError("patient", client.ErrUnexpectedStatus)
	}

	sess.SetSession(entity.RoleLoggedPatient, resp.Token)
	return PatientDashboardPath, nil
}

func (u *authUsecase) PatientSignup(ctx context.Context, req *dto.PatientSignupRequest) entity.Result {
	return u.patientService.Signup(ctx, converter.PatientSignupRequestToEntity(req))
}

// Logout ends the session; it is removed from the store once the request completes.
func (u *authUsecase) Logout(ctx context.Context, sess *entity.Session) string {
	sess.End()
	return LandingPath
}

// LogoutPatient drops the token but keeps the visitor on the patient dashboard.
func (u *authUsecase) LogoutPatient(ctx context.Context, sess *entity.Session) string {
	sess.SetSession(entity.RolePatient, "")
	return PatientDashboardPath
}

func (u *authUsecase) loginError(who string, err error) error {
	if errors.Is(err, client.ErrInvalidCredentials) {
		u.log.Warnf("Invalid %s credentials", who)
		return ErrInvalidCredentials
	}
	u.log.WithError(err).Errorf("Failed to login %s", who)
	return ErrLoginFailed
}
