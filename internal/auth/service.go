package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/trainerhub/internal/telemetry/tracing"
	"github.com/2beens/trainerhub/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "trainerhub-session||"
	tokensSetKey     = "trainerhub-sessions"
	tokenLength      = 35
)

var ErrWrongCredentials = errors.New("wrong credentials")

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=auth

type trainerGetter interface {
	GetByEmail(ctx context.Context, email string) (*Trainer, error)
}

type Service struct {
	redisClient *redis.Client
	trainers    trainerGetter
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(
	trainers trainerGetter,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		trainers:       trainers,
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

// Login checks the trainer credentials and opens a new session.
func (as *Service) Login(ctx context.Context, email, password string, createdAt time.Time) (_ string, _ *Trainer, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.service.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	trainer, err := as.trainers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrTrainerNotFound) {
			return "", nil, ErrWrongCredentials
		}
		return "", nil, fmt.Errorf("get trainer: %w", err)
	}

	if !pkg.CheckPasswordHash(password, trainer.PasswordHash) {
		return "", nil, ErrWrongCredentials
	}
	span.SetAttributes(attribute.Int64("trainer.id", trainer.ID))

	token, err := as.RandStringFunc(tokenLength)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	s := session{TrainerID: trainer.ID, CreatedAt: createdAt}
	if err := as.redisClient.Set(ctx, sessionKeyPrefix+token, s.String(), 0).Err(); err != nil {
		return "", nil, fmt.Errorf("store session: %w", err)
	}

	// add token to list of sessions
	if err := as.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", nil, fmt.Errorf("add session token: %w", err)
	}

	return token, trainer, nil
}

// Logout removes the session, returning false if it did not exist.
func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	val, err := as.redisClient.Get(ctx, sessionKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := as.redisClient.Del(ctx, sessionKey).Err(); err != nil {
		return false, err
	}

	// remove token from the list of sessions
	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, err
	}

	_, err = parseSession(val)
	return err == nil, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	sessionTokens, err := as.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("auth service, scan and clean, get sessions: %s", err)
		return
	}

	if len(sessionTokens) == 0 {
		log.Debugln("auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	now := time.Now()
	var toRemove []string
	for _, token := range sessionTokens {
		val, err := as.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
		if errors.Is(err, redis.Nil) {
			// dangling token in the set
			toRemove = append(toRemove, token)
			continue
		}
		if err != nil {
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			continue
		}

		s, err := parseSession(val)
		if err != nil || s.Expired(as.ttl, now) {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
			continue
		}

		// remove token from the list of sessions
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
			continue
		}
	}
	log.Debugf("auth service, scan and clean removed %d sessions", len(toRemove))
}
