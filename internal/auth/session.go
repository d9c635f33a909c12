package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidSession = errors.New("invalid session value")

// session is stored in redis as "<trainerID>|<createdAtUnix>"
type session struct {
	TrainerID int64
	CreatedAt time.Time
}

func (s session) String() string {
	return fmt.Sprintf("%d|%d", s.TrainerID, s.CreatedAt.Unix())
}

func (s session) Expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(s.CreatedAt) > ttl
}

func parseSession(val string) (session, error) {
	idStr, createdAtStr, found := strings.Cut(val, "|")
	if !found {
		return session{}, ErrInvalidSession
	}

	trainerID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || trainerID <= 0 {
		return session{}, ErrInvalidSession
	}
	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return session{}, ErrInvalidSession
	}

	return session{
		TrainerID: trainerID,
		CreatedAt: time.Unix(createdAtUnix, 0),
	}, nil
}
