package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/trainerhub/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

var ErrNotLogged = errors.New("not logged in")

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
	nowFunc     func() time.Time
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
		nowFunc:     time.Now,
	}
}

// TrainerID resolves a session token to the id of the logged trainer.
// ErrNotLogged is returned for unknown or expired tokens.
func (c *LoginChecker) TrainerID(ctx context.Context, token string) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.loginChecker.trainerID")
	defer func() {
		if errors.Is(err, ErrNotLogged) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	val, err := c.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNotLogged
		}
		return 0, fmt.Errorf("get session: %w", err)
	}

	s, err := parseSession(val)
	if err != nil {
		return 0, ErrNotLogged
	}
	if s.Expired(c.ttl, c.nowFunc()) {
		return 0, ErrNotLogged
	}

	return s.TrainerID, nil
}
