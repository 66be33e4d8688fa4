package handler

import (
	"context"
	"net/http"

	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/usecase"
	"hospital-portal/internal/view"
	"hospital-portal/pkg/response"
)

const adminDoctorsView = "admin-doctors"

type AdminHandler struct {
	pages        *PageSupport
	adminUsecase usecase.AdminDashboardUsecase
}

func NewAdminHandler(pages *PageSupport, adminUsecase usecase.AdminDashboardUsecase) *AdminHandler {
	return &AdminHandler{
		pages:        pages,
		adminUsecase: adminUsecase,
	}
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	list := h.adminUsecase.Load(r.Context(), session(r))
	h.pages.renderPage(w, r, view.PageAdmin, "Admin Dashboard", []string{"addDoctor"}, view.AdminPage{Doctors: list})
}

// DoctorsFragment re-renders the card list from the filter inputs
// @Param name query string false "Doctor name"
// @Param time query string false "AM or PM"
// @Param specialty query string false "Specialty"
// @Router /admin/doctors/fragment [get]
func (h *AdminHandler) DoctorsFragment(w http.ResponseWriter, r *http.Request) {
	query := doctorFilterQuery(r)
	if err := h.pages.validator.Validate(&query); err != nil {
		h.pages.renderFragment(w, view.FragmentDoctorList, view.BuildDoctorList(view.DoctorListState{Filtered: true, Failed: true}))
		return
	}

	h.pages.sequenced(w, r, adminDoctorsView, view.FragmentDoctorList, func(ctx context.Context) (interface{}, error) {
		return h.adminUsecase.Filter(ctx, session(r), &query), nil
	})
}

// AddDoctor handles the add-doctor modal
// @Accept json
// @Param request body dto.CreateDoctorRequest true "Create Doctor Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /admin/doctors [post]
func (h *AdminHandler) AddDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if !h.pages.decode(w, r, &req) {
		return
	}

	result, err := h.adminUsecase.AddDoctor(r.Context(), session(r), &req)
	if err != nil {
		h.pages.writeError(w, err)
		return
	}
	writeResult(w, result)
}

// DeleteDoctor removes one doctor. On success the answer carries the re-rendered
// card list for the filter inputs sent along; the script swaps it in.
// @Param name query string false "Doctor name"
// @Param time query string false "AM or PM"
// @Param specialty query string false "Specialty"
// @Router /admin/doctors/{id} [delete]
func (h *AdminHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	query := doctorFilterQuery(r)
	if err := h.pages.validator.Validate(&query); err != nil {
		query = dto.DoctorFilterQuery{}
	}

	result, list, err := h.adminUsecase.DeleteDoctor(r.Context(), session(r), id, &query)
	if err != nil {
		h.pages.writeError(w, err)
		return
	}
	if !result.Success {
		writeResult(w, result)
		return
	}

	html, err := h.pages.fragmentHTML(view.FragmentDoctorList, list)
	if err != nil {
		// The script falls back to removing the single card.
		h.pages.log.WithError(err).Error("Failed to render doctor list after delete")
		writeResult(w, result)
		return
	}
	response.Success(w, http.StatusOK, result.Message, map[string]string{"html": html})
}

func doctorFilterQuery(r *http.Request) dto.DoctorFilterQuery {
	q := r.URL.Query()
	return dto.DoctorFilterQuery{
		Name:      q.Get("name"),
		Time:      q.Get("time"),
		Specialty: q.Get("specialty"),
	}
}
