package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"event-checkout/internal/domain/checkout"
	"event-checkout/internal/pkg/errs"
	"event-checkout/internal/usecase/commands"
	"event-checkout/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const lockTTL = 30 * time.Second

// RedisStore keeps each wizard as one JSON value with a sliding TTL.
type RedisStore struct {
	client    redis.UniversalClient
	ttl       time.Duration
	keyPrefix string
	logger    *slog.Logger
}

func NewRedisStore(client redis.UniversalClient, ttl time.Duration, keyPrefix string, logger *slog.Logger) *RedisStore {
	return &RedisStore{
		client:    client,
		ttl:       ttl,
		keyPrefix: keyPrefix,
		logger:    logger,
	}
}

var (
	_ commands.SessionStore = (*RedisStore)(nil)
	_ queries.SessionReader = (*RedisStore)(nil)
)

func (s *RedisStore) key(id uuid.UUID) string {
	return s.keyPrefix + id.String()
}

func (s *RedisStore) lockKey(id uuid.UUID) string {
	return s.keyPrefix + id.String() + ":lock"
}

func (s *RedisStore) Get(ctx context.Context, id uuid.UUID) (*checkout.State, error) {
	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, commands.ErrSessionNotFound
		}
		return nil, errs.Wrap(err, "failed to read checkout session")
	}

	var state checkout.State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, errs.Wrap(err, "failed to decode checkout session")
	}
	return &state, nil
}

func (s *RedisStore) Save(ctx context.Context, state *checkout.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return errs.Wrap(err, "failed to encode checkout session")
	}
	if err := s.client.Set(ctx, s.key(state.ID), raw, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write checkout session")
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return errs.Wrap(err, "failed to delete checkout session")
	}
	return nil
}

// Lock is a SET NX lease owned by a random token. The lease expires on its
// own if the holder dies.
func (s *RedisStore) Lock(ctx context.Context, id uuid.UUID) (func(), error) {
	token := uuid.NewString()
	ok, err := s.client.SetNX(ctx, s.lockKey(id), token, lockTTL).Result()
	if err != nil {
		return nil, errs.Wrap(err, "failed to lock checkout session")
	}
	if !ok {
		return nil, commands.ErrSessionBusy
	}

	unlock := func() {
		// Released even when the request was cancelled.
		ctx := context.WithoutCancel(ctx)
		if err := releaseScript.Run(ctx, s.client, []string{s.lockKey(id)}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
			s.logger.WarnContext(ctx, "failed to release checkout session lock", "checkout_id", id.String(), "error", err.Error())
		}
	}
	return unlock, nil
}

// Deletes the lock only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0`)
