package repository

import (
	"context"

	"hospital-portal/internal/domain/entity"
)

type SessionRepository interface {
	Find(ctx context.Context, id string) (*entity.Session, error)
	Save(ctx context.Context, session *entity.Session) error
	Delete(ctx context.Context, id string) error
}
