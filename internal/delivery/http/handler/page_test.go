package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hospital-portal/internal/delivery/http/middleware"
	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/service"
	"hospital-portal/internal/usecase"
	"hospital-portal/internal/view"
	"hospital-portal/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPageSupport(t *testing.T) *PageSupport {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	renderer, err := view.NewRenderer()
	require.NoError(t, err)
	sequencer := service.NewRequestSequencer(log)
	t.Cleanup(sequencer.Stop)

	return NewPageSupport(log, renderer, sequencer, validator.NewValidator())
}

func sessionRequest(method, target string, sess *entity.Session) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(middleware.WithSession(req.Context(), sess))
}

func TestPageSupport_SequencedRendersCurrent(t *testing.T) {
	p := newTestPageSupport(t)
	req := sessionRequest(http.MethodGet, "/admin/doctors/fragment", entity.NewSession("s1"))
	rec := httptest.NewRecorder()

	p.sequenced(rec, req, adminDoctorsView, view.FragmentDoctorList, func(ctx context.Context) (interface{}, error) {
		return view.BuildDoctorList(view.DoctorListState{}), nil
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), view.MsgNoDoctors)
	assert.Empty(t, rec.Header().Get("X-Stale-Response"))
}

func TestPageSupport_SequencedDropsSupersededResponse(t *testing.T) {
	p := newTestPageSupport(t)
	sess := entity.NewSession("s1")
	req := sessionRequest(http.MethodGet, "/admin/doctors/fragment", sess)
	rec := httptest.NewRecorder()

	p.sequenced(rec, req, adminDoctorsView, view.FragmentDoctorList, func(ctx context.Context) (interface{}, error) {
		newer := p.sequencer.Begin(context.Background(), sess.ID+":"+adminDoctorsView)
		defer newer.Finish()
		return view.BuildDoctorList(view.DoctorListState{}), nil
	})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "true", rec.Header().Get("X-Stale-Response"))
	assert.Empty(t, rec.Body.String())
}

func TestPageSupport_SequencedKeysAreScopedPerSession(t *testing.T) {
	p := newTestPageSupport(t)
	req := sessionRequest(http.MethodGet, "/admin/doctors/fragment", entity.NewSession("s1"))
	rec := httptest.NewRecorder()

	p.sequenced(rec, req, adminDoctorsView, view.FragmentDoctorList, func(ctx context.Context) (interface{}, error) {
		other := p.sequencer.Begin(context.Background(), "s2:"+adminDoctorsView)
		defer other.Finish()
		return view.BuildDoctorList(view.DoctorListState{}), nil
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPageSupport_WriteError(t *testing.T) {
	p := newTestPageSupport(t)

	tests := []struct {
		err    error
		status int
		body   string
	}{
		{usecase.ErrUnauthorized, http.StatusUnauthorized, MsgUnauthorized},
		{usecase.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials!"},
		{usecase.ErrLoginFailed, http.StatusInternalServerError, "Something went wrong"},
		{usecase.ErrRoleNotSelectable, http.StatusBadRequest, "valid role"},
		{entity.ErrUnknownRole, http.StatusBadRequest, "valid role"},
		{context.Canceled, http.StatusNoContent, ""},
		{errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			p.writeError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
}

func TestPageSupport_Decode(t *testing.T) {
	p := newTestPageSupport(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login/patient", strings.NewReader(`{`))
	var malformed struct{}
	assert.False(t, p.decode(rec, req, &malformed))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}

func TestWriteResult(t *testing.T) {
	rec := httptest.NewRecorder()
	writeResult(rec, entity.Result{Success: false, Message: "Doctor already exists"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Doctor already exists")

	rec = httptest.NewRecorder()
	writeResult(rec, entity.Result{Success: true, Message: "Doctor added to db"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLandingHandler_ClearsRoleKeepsFlash(t *testing.T) {
	p := newTestPageSupport(t)
	h := NewLandingHandler(p)

	sess := entity.NewSession("s1")
	sess.SetSession(entity.RoleAdmin, "tok")
	sess.Flash = "Session expired"
	rec := httptest.NewRecorder()

	h.Show(rec, sessionRequest(http.MethodGet, "/", sess))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.RoleNone, sess.Role)
	assert.Empty(t, sess.Token)
	assert.Contains(t, rec.Body.String(), "Session expired")
}
