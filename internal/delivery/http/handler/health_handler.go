package handler

import (
	"net/http"

	"hospital-portal/pkg/response"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "OK", map[string]string{"status": "healthy"})
}
