package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/trainerhub/internal/telemetry/tracing"
	"github.com/2beens/trainerhub/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrTrainerNotFound = errors.New("trainer not found")
	ErrTrainerExists   = errors.New("trainer with that email already exists")
)

type Trainer struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type TrainerRepo struct {
	db *pgxpool.Pool
}

func NewTrainerRepo(db *pgxpool.Pool) *TrainerRepo {
	return &TrainerRepo{
		db: db,
	}
}

func (r *TrainerRepo) Add(ctx context.Context, trainer *Trainer) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainer.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO trainer (email, name, password_hash, created_at)
			VALUES ($1, $2, $3, $4)
		RETURNING id;`,
		normalizeEmail(trainer.Email), trainer.Name, trainer.PasswordHash, trainer.CreatedAt,
	).Scan(&trainer.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrTrainerExists
		}
		return fmt.Errorf("insert trainer: %w", err)
	}

	span.SetAttributes(attribute.Int64("trainer.id", trainer.ID))
	return nil
}

func (r *TrainerRepo) GetByEmail(ctx context.Context, email string) (_ *Trainer, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainer.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var t Trainer
	err = r.db.QueryRow(
		ctx,
		`SELECT id, email, name, password_hash, created_at FROM trainer WHERE email = $1;`,
		normalizeEmail(email),
	).Scan(&t.ID, &t.Email, &t.Name, &t.PasswordHash, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTrainerNotFound
		}
		return nil, fmt.Errorf("get trainer by email: %w", err)
	}

	return &t, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
