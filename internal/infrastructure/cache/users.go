package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/rateorant/client-gateway/internal/api/metrics"
	"github.com/rateorant/client-gateway/internal/core/domain"
	"github.com/rateorant/client-gateway/internal/core/ports"
)

const defaultUserTTL = 10 * time.Minute

// Users is a read-through cache over a ports.UserAPI.
// Key format: user:<id>
type Users struct {
	client *redis.Client
	next   ports.UserAPI
	ttl    time.Duration
	log    zerolog.Logger
}

func NewUsers(client *redis.Client, next ports.UserAPI, ttl time.Duration, log zerolog.Logger) *Users {
	if ttl <= 0 {
		ttl = defaultUserTTL
	}
	return &Users{
		client: client,
		next:   next,
		ttl:    ttl,
		log:    log.With().Str("component", "user_cache").Logger(),
	}
}

func (u *Users) Get(ctx context.Context, id domain.ID) (*domain.User, error) {
	key := u.key(id)

	if data, err := u.client.Get(ctx, key).Bytes(); err == nil {
		var user domain.User
		if json.Unmarshal(data, &user) == nil {
			metrics.UserCacheTotal.WithLabelValues("hit").Inc()
			return &user, nil
		}
	}
	metrics.UserCacheTotal.WithLabelValues("miss").Inc()

	user, err := u.next.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(user); err == nil {
		// Best effort: a failed cache write only costs the next lookup.
		if err := u.client.Set(ctx, key, data, u.ttl).Err(); err != nil {
			u.log.Warn().Err(err).Str("user_id", id.String()).Msg("user cache write failed")
		}
	}
	return user, nil
}

func (u *Users) key(id domain.ID) string {
	return "user:" + id.String()
}
