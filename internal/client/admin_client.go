package client

import (
	"context"

	"hospital-portal/internal/domain/entity"
)

type AdminService interface {
	Login(ctx context.Context, credentials entity.AdminCredentials) (string, error)
}

type adminService struct {
	api *APIClient
}

func NewAdminService(api *APIClient) AdminService {
	return &adminService{api: api}
}

func (s *adminService) Login(ctx context.Context, credentials entity.AdminCredentials) (string, error) {
	return s.api.login(ctx, s.api.URL("admin"), credentials)
}
