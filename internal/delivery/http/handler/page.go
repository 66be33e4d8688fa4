package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"hospital-portal/internal/delivery/http/middleware"
	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/service"
	"hospital-portal/internal/usecase"
	"hospital-portal/internal/view"
	"hospital-portal/pkg/response"
	"hospital-portal/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// MsgUnauthorized is shown when a write is attempted without a token
const MsgUnauthorized = "Unauthorized! Please login again."

// PageSupport bundles what every page handler needs to render pages and fragments.
type PageSupport struct {
	log       *logrus.Logger
	renderer  *view.Renderer
	sequencer *service.RequestSequencer
	validator *validator.CustomValidator
}

func NewPageSupport(
	log *logrus.Logger,
	renderer *view.Renderer,
	sequencer *service.RequestSequencer,
	validator *validator.CustomValidator,
) *PageSupport {
	return &PageSupport{
		log:       log,
		renderer:  renderer,
		sequencer: sequencer,
		validator: validator,
	}
}

// renderPage derives header and footer from the session and renders a full page.
func (p *PageSupport) renderPage(w http.ResponseWriter, r *http.Request, name, title string, modals []string, content interface{}) {
	sess := session(r)
	page := view.Page{
		Title:   title,
		Header:  view.BuildHeader(r.URL.Path, sess.Role),
		Footer:  view.BuildFooter(),
		Flash:   sess.TakeFlash(),
		Modals:  modals,
		Content: content,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.renderer.Page(w, name, page); err != nil {
		p.log.WithError(err).Errorf("Failed to render page %s", name)
		response.InternalServerError(w, "Failed to render page")
	}
}

func (p *PageSupport) renderFragment(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.renderer.Fragment(w, name, data); err != nil {
		p.log.WithError(err).Errorf("Failed to render fragment %s", name)
		response.InternalServerError(w, "Failed to render fragment")
	}
}

// fragmentHTML renders a fragment for embedding in a JSON answer.
func (p *PageSupport) fragmentHTML(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := p.renderer.Fragment(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// sequenced runs build under a ticket of the view's sequencer key. When a
// newer request for the same view arrived meanwhile, the result is dropped
// and the client keeps the newer content.
func (p *PageSupport) sequenced(w http.ResponseWriter, r *http.Request, viewName, fragment string, build func(ctx context.Context) (interface{}, error)) {
	sess := session(r)
	ticket := p.sequencer.Begin(r.Context(), sess.ID+":"+viewName)
	defer ticket.Finish()

	data, err := build(ticket.Context())
	if !ticket.Current() {
		p.log.WithFields(logrus.Fields{"view": viewName, "seq": ticket.Seq}).Debug("Discarding stale response")
		response.Stale(w)
		return
	}
	if err != nil {
		p.writeError(w, err)
		return
	}
	p.renderFragment(w, fragment, data)
}

// decode reads a JSON form body and validates it. It writes the error
// response itself and reports whether the handler may continue.
func (p *PageSupport) decode(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}
	if err := p.validator.Validate(req); err != nil {
		response.Error(w, http.StatusBadRequest, p.validator.Summary(err), p.validator.FormatValidationErrors(err))
		return false
	}
	return true
}

// writeError maps usecase errors to the JSON answer the page script alerts.
func (p *PageSupport) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		response.ErrorRedirect(w, http.StatusUnauthorized, MsgUnauthorized, middleware.LandingPath)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		response.Error(w, http.StatusUnauthorized, "Invalid credentials!", nil)
	case errors.Is(err, usecase.ErrLoginFailed):
		response.InternalServerError(w, "Something went wrong. Please try again.")
	case errors.Is(err, usecase.ErrRoleNotSelectable), errors.Is(err, entity.ErrUnknownRole):
		response.Error(w, http.StatusBadRequest, "Please choose a valid role", nil)
	case errors.Is(err, context.Canceled):
		response.Stale(w)
	default:
		p.log.WithError(err).Error("Unhandled error")
		response.InternalServerError(w, "")
	}
}

// writeResult answers a backend write result. A failed write keeps its
// backend message and is reported with 400 so the script treats it as failed.
func writeResult(w http.ResponseWriter, result entity.Result) {
	if !result.Success {
		response.Error(w, http.StatusBadRequest, result.Message, nil)
		return
	}
	response.Success(w, http.StatusOK, result.Message, nil)
}

// session returns the request's session. SessionMiddleware always sets one;
// a fresh anonymous session is used when a handler is mounted without it.
func session(r *http.Request) *entity.Session {
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		return sess
	}
	return entity.NewSession("")
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
