package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/game"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix      = "session:"
	sessionLockKeyPrefix  = "session_lock:"
	sessionLockTTL        = 5 * time.Second
	sessionLockRetryDelay = 20 * time.Millisecond
)

// unlockScript deletes the lock only if it still holds our token, so an expired lock taken over
// by another process is left alone.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisSessionRepository stores sessions as JSON in Redis, so all server processes share them.
type RedisSessionRepository struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewRedisSessionRepository creates a repository on top of a Redis connection.
func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{
		redis: client,
		ttl:   ttl,
	}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func sessionLockKey(id string) string {
	return sessionLockKeyPrefix + id
}

func (repo *RedisSessionRepository) Create(ctx context.Context, policy game.TurnPolicy) (Session, error) {
	session := newSession(policy, time.Now())

	if err := repo.save(ctx, session); err != nil {
		return Session{}, err
	}

	return session, nil
}

func (repo *RedisSessionRepository) Get(ctx context.Context, id string) (Session, error) {
	jsonData, err := repo.redis.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Session{}, ErrSessionNotFound
		}
		return Session{}, fmt.Errorf("error getting session: %w", err)
	}

	var session Session
	if err = json.Unmarshal(jsonData, &session); err != nil {
		return Session{}, fmt.Errorf("error unmarshaling session: %w", err)
	}

	return session, nil
}

func (repo *RedisSessionRepository) Update(ctx context.Context, id string, fn func(*game.Controller) error) (Session, error) {
	token, err := repo.lock(ctx, id)
	if err != nil {
		return Session{}, err
	}

	// Ensure lock is released
	defer repo.unlock(context.WithoutCancel(ctx), id, token)

	session, err := repo.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}

	session, err = applyUpdate(session, fn, time.Now())
	if err != nil {
		return Session{}, err
	}

	if err = repo.save(ctx, session); err != nil {
		return Session{}, err
	}

	return session, nil
}

func (repo *RedisSessionRepository) Delete(ctx context.Context, id string) error {
	deleted, err := repo.redis.Del(ctx, sessionKey(id)).Result()
	if err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}

	if deleted == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// save stores the session and resets its TTL.
func (repo *RedisSessionRepository) save(ctx context.Context, session Session) error {
	jsonData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error marshaling session: %w", err)
	}

	if err = repo.redis.Set(ctx, sessionKey(session.ID), jsonData, repo.ttl).Err(); err != nil {
		return fmt.Errorf("error storing session: %w", err)
	}

	return nil
}

// lock waits until this process holds the lock of the session or ctx is done.
// It returns the token that identifies this holder to unlock.
func (repo *RedisSessionRepository) lock(ctx context.Context, id string) (string, error) {
	token := uuid.New().String()

	for {
		lockAcquired, err := repo.redis.SetNX(ctx, sessionLockKey(id), token, sessionLockTTL).Result()
		if err != nil {
			return "", fmt.Errorf("error acquiring session lock: %w", err)
		}

		if lockAcquired {
			return token, nil
		}

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("error acquiring session lock: %w", ctx.Err())
		case <-time.After(sessionLockRetryDelay):
		}
	}
}

// unlock releases the lock if it is still held with token.
func (repo *RedisSessionRepository) unlock(ctx context.Context, id, token string) {
	if err := unlockScript.Run(ctx, repo.redis, []string{sessionLockKey(id)}, token).Err(); err != nil {
		slog.Error("error releasing session lock", "id", id, "error", err)
	}
}
