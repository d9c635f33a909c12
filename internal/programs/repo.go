package programs

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/trainerhub/internal/telemetry/tracing"
	"github.com/2beens/trainerhub/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

// dbtx is satisfied by both *pgxpool.Pool and pgx.Tx
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

var tables = map[Level]string{
	LevelProgram:  "program",
	LevelWeek:     "week",
	LevelDay:      "day",
	LevelCircuit:  "circuit",
	LevelExercise: "exercise",
	LevelSet:      "exercise_set",
}

var parentColumns = map[Level]string{
	LevelWeek:     "program_id",
	LevelDay:      "week_id",
	LevelCircuit:  "day_id",
	LevelExercise: "circuit_id",
	LevelSet:      "exercise_id",
}

var ordinalColumns = map[Level]string{
	LevelWeek:    "week_number",
	LevelDay:     "day_number",
	LevelCircuit: "circuit_number",
}

var ownerQueries = map[Level]string{
	LevelProgram: `SELECT p.trainer_id FROM program p WHERE p.id = $1;`,
	LevelWeek: `
		SELECT p.trainer_id FROM week w
			JOIN program p ON p.id = w.program_id
		WHERE w.id = $1;`,
	LevelDay: `
		SELECT p.trainer_id FROM day d
			JOIN week w ON w.id = d.week_id
			JOIN program p ON p.id = w.program_id
		WHERE d.id = $1;`,
	LevelCircuit: `
		SELECT p.trainer_id FROM circuit c
			JOIN day d ON d.id = c.day_id
			JOIN week w ON w.id = d.week_id
			JOIN program p ON p.id = w.program_id
		WHERE c.id = $1;`,
	LevelExercise: `
		SELECT p.trainer_id FROM exercise e
			JOIN circuit c ON c.id = e.circuit_id
			JOIN day d ON d.id = c.day_id
			JOIN week w ON w.id = d.week_id
			JOIN program p ON p.id = w.program_id
		WHERE e.id = $1;`,
	LevelSet: `
		SELECT p.trainer_id FROM exercise_set s
			JOIN exercise e ON e.id = s.exercise_id
			JOIN circuit c ON c.id = e.circuit_id
			JOIN day d ON d.id = c.day_id
			JOIN week w ON w.id = d.week_id
			JOIN program p ON p.id = w.program_id
		WHERE s.id = $1;`,
}

const (
	programColumns  = `id, trainer_id, client_id, name, duration, description, is_active, column_config, created_at, updated_at`
	weekColumns     = `id, program_id, week_number, title, description, created_at, updated_at`
	dayColumns      = `id, week_id, day_number, title, cool_down, custom_rows, created_at, updated_at`
	circuitColumns  = `id, day_id, circuit_number, title, description, created_at, updated_at`
	exerciseColumns = `id, circuit_id, workout_id, name, sort_order, tempo, rest_interval, notes, created_at, updated_at`
	setColumns      = `id, exercise_id, set_number, reps, weight, created_at, updated_at`
)

// Repo is the postgres Store.
type Repo struct {
	db   dbtx
	inTx bool
}

var _ Store = (*Repo)(nil)

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) InTx(ctx context.Context, fn func(tx Store) error) (err error) {
	if r.inTx {
		return fn(r)
	}

	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.tx")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&Repo{db: tx, inTx: true}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return multierr.Append(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (r *Repo) OwnerOf(ctx context.Context, level Level, id int64) (trainerID int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.ownerOf")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("level", string(level)), attribute.Int64("node.id", id))

	query, ok := ownerQueries[level]
	if !ok {
		return 0, fmt.Errorf("unknown level %q", level)
	}
	if err := r.db.QueryRow(ctx, query, id).Scan(&trainerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("query %s owner: %w", level, err)
	}
	return trainerID, nil
}

func (r *Repo) OrdinalTaken(ctx context.Context, level Level, parentID int64, ordinal int, excludeID int64) (bool, error) {
	column, ok := ordinalColumns[level]
	if !ok {
		return false, fmt.Errorf("level %q has no ordinal", level)
	}

	query := fmt.Sprintf(
		`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2 AND id <> $3);`,
		tables[level], parentColumns[level], column,
	)
	var taken bool
	if err := r.db.QueryRow(ctx, query, parentID, ordinal, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("query %s ordinal: %w", level, err)
	}
	return taken, nil
}

func (r *Repo) ChildIDs(ctx context.Context, level Level, parentIDs []int64) (_ []int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.childIDs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("level", string(level)), attribute.Int("parents", len(parentIDs)))

	parentColumn, ok := parentColumns[level]
	if !ok {
		return nil, fmt.Errorf("level %q has no parent", level)
	}

	rows, err := r.db.Query(
		ctx,
		fmt.Sprintf(`SELECT id FROM %s WHERE %s = ANY($1) ORDER BY id;`, tables[level], parentColumn),
		parentIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query %s ids: %w", level, err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[int64])
}

func (r *Repo) DeleteNodes(ctx context.Context, level Level, ids []int64) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.deleteNodes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("level", string(level)), attribute.Int("ids", len(ids)))

	table, ok := tables[level]
	if !ok {
		return 0, fmt.Errorf("unknown level %q", level)
	}
	tag, err := r.db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = ANY($1);`, table), ids)
	if err != nil {
		return 0, fmt.Errorf("delete %s rows: %w", level, err)
	}
	return tag.RowsAffected(), nil
}

// translateWriteErr maps constraint violations to the package errors
func translateWriteErr(level Level, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return ErrNotFound
	case pkg.IsUniqueViolationError(err):
		return fmt.Errorf("%w: %s", ErrOrdinalTaken, level)
	case pkg.IsForeignKeyViolationError(err):
		if pkg.ViolatedConstraint(err) == "exercise_workout_id_fkey" {
			return NewValidationError("workout_id", "workout does not exist")
		}
		return fmt.Errorf("%s parent: %w", level, ErrNotFound)
	}
	return fmt.Errorf("write %s: %w", level, err)
}

func nullableJSON(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}

func execOne(ctx context.Context, db dbtx, level Level, sql string, args ...any) error {
	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return translateWriteErr(level, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// programs

func scanProgram(row pgx.Row) (Program, error) {
	var p Program
	var columnConfig []byte
	err := row.Scan(
		&p.ID, &p.TrainerID, &p.ClientID, &p.Name, &p.Duration, &p.Description,
		&p.IsActive, &columnConfig, &p.CreatedAt, &p.UpdatedAt,
	)
	p.ColumnConfig = columnConfig
	return p, err
}

func (r *Repo) CreateProgram(ctx context.Context, p *Program) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.createProgram")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO program (trainer_id, client_id, name, duration, description, is_active, column_config, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;`,
		p.TrainerID, p.ClientID, p.Name, p.Duration, p.Description,
		p.IsActive, nullableJSON(p.ColumnConfig), p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return translateWriteErr(LevelProgram, err)
	}
	return nil
}

func (r *Repo) GetProgram(ctx context.Context, id int64) (*Program, error) {
	p, err := scanProgram(r.db.QueryRow(ctx, `SELECT `+programColumns+` FROM program WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get program: %w", err)
	}
	return &p, nil
}

func (r *Repo) ListPrograms(ctx context.Context, trainerID int64, filter ProgramFilter) (_ []Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.listPrograms")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `SELECT ` + programColumns + ` FROM program WHERE trainer_id = $1`
	args := []any{trainerID}
	if filter.TemplatesOnly {
		query += ` AND client_id IS NULL`
	}
	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		query += fmt.Sprintf(` AND client_id = $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC, id DESC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query programs: %w", err)
	}
	programs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Program, error) {
		return scanProgram(row)
	})
	if err != nil {
		return nil, fmt.Errorf("collect programs: %w", err)
	}

	span.SetAttributes(attribute.Int("programs.count", len(programs)))
	return programs, nil
}

func (r *Repo) UpdateProgram(ctx context.Context, p *Program) error {
	return execOne(
		ctx, r.db, LevelProgram,
		`UPDATE program
			SET client_id = $1, name = $2, duration = $3, description = $4,
				is_active = $5, column_config = $6, updated_at = $7
		WHERE id = $8;`,
		p.ClientID, p.Name, p.Duration, p.Description,
		p.IsActive, nullableJSON(p.ColumnConfig), p.UpdatedAt, p.ID,
	)
}

// weeks

func scanWeek(row pgx.Row) (Week, error) {
	var w Week
	err := row.Scan(&w.ID, &w.ProgramID, &w.WeekNumber, &w.Title, &w.Description, &w.CreatedAt, &w.UpdatedAt)
	return w, err
}

func (r *Repo) CreateWeek(ctx context.Context, w *Week) error {
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO week (program_id, week_number, title, description, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;`,
		w.ProgramID, w.WeekNumber, w.Title, w.Description, w.CreatedAt, w.UpdatedAt,
	).Scan(&w.ID)
	if err != nil {
		return translateWriteErr(LevelWeek, err)
	}
	return nil
}

func (r *Repo) GetWeek(ctx context.Context, id int64) (*Week, error) {
	w, err := scanWeek(r.db.QueryRow(ctx, `SELECT `+weekColumns+` FROM week WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get week: %w", err)
	}
	return &w, nil
}

func (r *Repo) UpdateWeek(ctx context.Context, w *Week) error {
	return execOne(
		ctx, r.db, LevelWeek,
		`UPDATE week SET week_number = $1, title = $2, description = $3, updated_at = $4 WHERE id = $5;`,
		w.WeekNumber, w.Title, w.Description, w.UpdatedAt, w.ID,
	)
}

func (r *Repo) WeeksByPrograms(ctx context.Context, programIDs []int64) ([]Week, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+weekColumns+` FROM week WHERE program_id = ANY($1) ORDER BY program_id, week_number, id;`,
		programIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query weeks: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Week, error) {
		return scanWeek(row)
	})
}

// days

func scanDay(row pgx.Row) (Day, error) {
	var d Day
	var customRows []byte
	err := row.Scan(&d.ID, &d.WeekID, &d.DayNumber, &d.Title, &d.CoolDown, &customRows, &d.CreatedAt, &d.UpdatedAt)
	d.CustomRows = customRows
	return d, err
}

func (r *Repo) CreateDay(ctx context.Context, d *Day) error {
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO day (week_id, day_number, title, cool_down, custom_rows, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;`,
		d.WeekID, d.DayNumber, d.Title, d.CoolDown, nullableJSON(d.CustomRows), d.CreatedAt, d.UpdatedAt,
	).Scan(&d.ID)
	if err != nil {
		return translateWriteErr(LevelDay, err)
	}
	return nil
}

func (r *Repo) GetDay(ctx context.Context, id int64) (*Day, error) {
	d, err := scanDay(r.db.QueryRow(ctx, `SELECT `+dayColumns+` FROM day WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get day: %w", err)
	}
	return &d, nil
}

func (r *Repo) UpdateDay(ctx context.Context, d *Day) error {
	return execOne(
		ctx, r.db, LevelDay,
		`UPDATE day SET day_number = $1, title = $2, cool_down = $3, custom_rows = $4, updated_at = $5 WHERE id = $6;`,
		d.DayNumber, d.Title, d.CoolDown, nullableJSON(d.CustomRows), d.UpdatedAt, d.ID,
	)
}

func (r *Repo) DaysByWeeks(ctx context.Context, weekIDs []int64) ([]Day, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+dayColumns+` FROM day WHERE week_id = ANY($1) ORDER BY week_id, day_number, id;`,
		weekIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query days: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Day, error) {
		return scanDay(row)
	})
}

// circuits

func scanCircuit(row pgx.Row) (Circuit, error) {
	var c Circuit
	err := row.Scan(&c.ID, &c.DayID, &c.CircuitNumber, &c.Title, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *Repo) CreateCircuit(ctx context.Context, c *Circuit) error {
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO circuit (day_id, circuit_number, title, description, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;`,
		c.DayID, c.CircuitNumber, c.Title, c.Description, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return translateWriteErr(LevelCircuit, err)
	}
	return nil
}

func (r *Repo) GetCircuit(ctx context.Context, id int64) (*Circuit, error) {
	c, err := scanCircuit(r.db.QueryRow(ctx, `SELECT `+circuitColumns+` FROM circuit WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get circuit: %w", err)
	}
	return &c, nil
}

func (r *Repo) UpdateCircuit(ctx context.Context, c *Circuit) error {
	return execOne(
		ctx, r.db, LevelCircuit,
		`UPDATE circuit SET circuit_number = $1, title = $2, description = $3, updated_at = $4 WHERE id = $5;`,
		c.CircuitNumber, c.Title, c.Description, c.UpdatedAt, c.ID,
	)
}

func (r *Repo) CircuitsByDays(ctx context.Context, dayIDs []int64) ([]Circuit, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+circuitColumns+` FROM circuit WHERE day_id = ANY($1) ORDER BY day_id, circuit_number, id;`,
		dayIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query circuits: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Circuit, error) {
		return scanCircuit(row)
	})
}

// exercises

func scanExercise(row pgx.Row) (Exercise, error) {
	var e Exercise
	err := row.Scan(
		&e.ID, &e.CircuitID, &e.WorkoutID, &e.Name, &e.Order,
		&e.Tempo, &e.RestInterval, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *Repo) CreateExercise(ctx context.Context, e *Exercise) error {
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO exercise (circuit_id, workout_id, name, sort_order, tempo, rest_interval, notes, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;`,
		e.CircuitID, e.WorkoutID, e.Name, e.Order, e.Tempo, e.RestInterval, e.Notes, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		return translateWriteErr(LevelExercise, err)
	}
	return nil
}

func (r *Repo) GetExercise(ctx context.Context, id int64) (*Exercise, error) {
	e, err := scanExercise(r.db.QueryRow(ctx, `SELECT `+exerciseColumns+` FROM exercise WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	return &e, nil
}

func (r *Repo) UpdateExercise(ctx context.Context, e *Exercise) error {
	return execOne(
		ctx, r.db, LevelExercise,
		`UPDATE exercise
			SET workout_id = $1, name = $2, sort_order = $3, tempo = $4,
				rest_interval = $5, notes = $6, updated_at = $7
		WHERE id = $8;`,
		e.WorkoutID, e.Name, e.Order, e.Tempo, e.RestInterval, e.Notes, e.UpdatedAt, e.ID,
	)
}

func (r *Repo) UpdateExerciseOrder(ctx context.Context, circuitID, exerciseID int64, order int) (int64, error) {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercise SET sort_order = $1, updated_at = now() WHERE id = $2 AND circuit_id = $3;`,
		order, exerciseID, circuitID,
	)
	if err != nil {
		return 0, fmt.Errorf("update exercise order: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) ExercisesByCircuits(ctx context.Context, circuitIDs []int64) ([]Exercise, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercise WHERE circuit_id = ANY($1) ORDER BY circuit_id, sort_order, id;`,
		circuitIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Exercise, error) {
		return scanExercise(row)
	})
}

// sets

func scanSet(row pgx.Row) (Set, error) {
	var s Set
	err := row.Scan(&s.ID, &s.ExerciseID, &s.SetNumber, &s.Reps, &s.Weight, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *Repo) CreateSet(ctx context.Context, s *Set) error {
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO exercise_set (exercise_id, set_number, reps, weight, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;`,
		s.ExerciseID, s.SetNumber, s.Reps, s.Weight, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
	if err != nil {
		return translateWriteErr(LevelSet, err)
	}
	return nil
}

func (r *Repo) GetSet(ctx context.Context, id int64) (*Set, error) {
	s, err := scanSet(r.db.QueryRow(ctx, `SELECT `+setColumns+` FROM exercise_set WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get set: %w", err)
	}
	return &s, nil
}

func (r *Repo) UpdateSet(ctx context.Context, s *Set) error {
	return execOne(
		ctx, r.db, LevelSet,
		`UPDATE exercise_set SET set_number = $1, reps = $2, weight = $3, updated_at = $4 WHERE id = $5;`,
		s.SetNumber, s.Reps, s.Weight, s.UpdatedAt, s.ID,
	)
}

func (r *Repo) SetsByExercises(ctx context.Context, exerciseIDs []int64) ([]Set, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+setColumns+` FROM exercise_set WHERE exercise_id = ANY($1) ORDER BY exercise_id, set_number, id;`,
		exerciseIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query sets: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Set, error) {
		return scanSet(row)
	})
}
