package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/trainerhub/internal/telemetry/tracing"
	"github.com/2beens/trainerhub/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, w *Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if w.VideoURLs == nil {
		w.VideoURLs = []string{}
	}
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout (name, description, duration, video_urls, created_at)
			VALUES ($1, $2, $3, $4, $5)
		RETURNING id;`,
		w.Name, w.Description, w.Duration, w.VideoURLs, w.CreatedAt,
	).Scan(&w.ID)
	if err != nil {
		return fmt.Errorf("insert workout: %w", err)
	}

	span.SetAttributes(attribute.Int64("workout.id", w.ID))
	return nil
}

func (r *Repo) Get(ctx context.Context, id int64) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var w Workout
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, description, duration, video_urls, created_at FROM workout WHERE id = $1;`,
		id,
	).Scan(&w.ID, &w.Name, &w.Description, &w.Duration, &w.VideoURLs, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("get workout: %w", err)
	}
	return &w, nil
}

func (r *Repo) List(ctx context.Context) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, description, duration, video_urls, created_at FROM workout ORDER BY name, id;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}
	defer rows.Close()

	var workouts []Workout
	for rows.Next() {
		var w Workout
		if err := rows.Scan(&w.ID, &w.Name, &w.Description, &w.Duration, &w.VideoURLs, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}

// Delete removes the workout. Fails with ErrWorkoutInUse while any exercise links it.
func (r *Repo) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM workout WHERE id = $1;`, id)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return fmt.Errorf("workout %d: %w", id, ErrWorkoutInUse)
		}
		return fmt.Errorf("delete workout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}
