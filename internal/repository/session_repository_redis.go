package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hospital-portal/internal/domain/entity"
	domainRepo "hospital-portal/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

type redisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) domainRepo.SessionRepository {
	return &redisSessionRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *redisSessionRepository) Find(ctx context.Context, id string) (*entity.Session, error) {
	data, err := r.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, entity.ErrSessionNotFound
		}
		return nil, err
	}

	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// Save writes the session and refreshes its TTL.
func (r *redisSessionRepository) Save(ctx context.Context, session *entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return r.client.Set(ctx, sessionKeyPrefix+session.ID, data, r.ttl).Err()
}

func (r *redisSessionRepository) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionKeyPrefix+id).Err()
}
