package programs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/trainerhub/internal/telemetry/metrics"
	"github.com/2beens/trainerhub/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type workoutChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Service implements the program builder. Every operation takes the id of the
// acting trainer and fails with ErrForbidden when the target node belongs to
// a program of another trainer.
type Service struct {
	store          Store
	workouts       workoutChecker
	metricsManager *metrics.Manager
	nowFunc        func() time.Time
}

func NewService(store Store, workouts workoutChecker, metricsManager *metrics.Manager) *Service {
	return &Service{
		store:          store,
		workouts:       workouts,
		metricsManager: metricsManager,
		nowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// authorize resolves the owner of the node and compares it with the caller.
func authorize(ctx context.Context, st Store, trainerID int64, level Level, id int64) error {
	ownerID, err := st.OwnerOf(ctx, level, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%s %d: %w", level, id, ErrNotFound)
		}
		return fmt.Errorf("resolve %s %d owner: %w", level, id, err)
	}
	if ownerID != trainerID {
		log.Warnf("trainer %d tried to access %s %d owned by trainer %d", trainerID, level, id, ownerID)
		return ErrForbidden
	}
	return nil
}

func checkOrdinal(ctx context.Context, st Store, level Level, parentID int64, ordinal int, excludeID int64) error {
	taken, err := st.OrdinalTaken(ctx, level, parentID, ordinal, excludeID)
	if err != nil {
		return fmt.Errorf("check %s ordinal: %w", level, err)
	}
	if taken {
		return fmt.Errorf("%w: %s number %d", ErrOrdinalTaken, level, ordinal)
	}
	return nil
}

func (s *Service) checkWorkout(ctx context.Context, workoutID *int64) error {
	if workoutID == nil || s.workouts == nil {
		return nil
	}
	exists, err := s.workouts.Exists(ctx, *workoutID)
	if err != nil {
		return fmt.Errorf("check workout %d: %w", *workoutID, err)
	}
	if !exists {
		return NewValidationError("workout_id", "workout does not exist")
	}
	return nil
}

func (s *Service) countDeleted(report DeleteReport) {
	if s.metricsManager == nil {
		return
	}
	for lvl, n := range report {
		s.metricsManager.CounterCascadeDeletedRows.WithLabelValues(string(lvl)).Add(float64(n))
	}
}

func (s *Service) countDuplication(level Level, created int, err error) {
	if s.metricsManager == nil {
		return
	}
	if err != nil {
		s.metricsManager.CounterDuplications.WithLabelValues(string(level), "error").Inc()
		return
	}
	s.metricsManager.CounterDuplications.WithLabelValues(string(level), "ok").Inc()
	s.metricsManager.HistogramDuplicatedNodes.WithLabelValues(string(level)).Observe(float64(created))
}

func (s *Service) remove(ctx context.Context, trainerID int64, level Level, id int64) (report DeleteReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.delete."+string(level))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("node.id", id))

	err = s.store.InTx(ctx, func(tx Store) error {
		if err := authorize(ctx, tx, trainerID, level, id); err != nil {
			return err
		}
		var err error
		report, err = cascadeDelete(ctx, tx, level, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int64("deleted.total", report.Total()))
	s.countDeleted(report)
	return report, nil
}

// programs

func (s *Service) CreateProgram(ctx context.Context, trainerID int64, req CreateProgramRequest) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.create.program")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	now := s.nowFunc()
	p := &Program{
		TrainerID:    trainerID,
		ClientID:     req.ClientID,
		Name:         req.Name,
		Duration:     req.Duration,
		Description:  req.Description,
		IsActive:     true,
		ColumnConfig: req.ColumnConfig,
		CreatedAt:    now,
		UpdatedAt:    now,
		Weeks:        []Week{},
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.store.CreateProgram(ctx, p); err != nil {
		return nil, fmt.Errorf("create program: %w", err)
	}
	span.SetAttributes(attribute.Int64("program.id", p.ID))
	return p, nil
}

func (s *Service) ListPrograms(ctx context.Context, trainerID int64, filter ProgramFilter) (_ []Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.list.programs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	programs, err := s.store.ListPrograms(ctx, trainerID, filter)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	return programs, nil
}

func (s *Service) GetProgram(ctx context.Context, trainerID, id int64) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.get.program")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := authorize(ctx, s.store, trainerID, LevelProgram, id); err != nil {
		return nil, err
	}
	return loadProgramTree(ctx, s.store, id)
}

func loadProgramTree(ctx context.Context, st Store, id int64) (*Program, error) {
	p, err := st.GetProgram(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get program %d: %w", id, err)
	}
	tree := []Program{*p}
	if err := attachWeeks(ctx, st, tree); err != nil {
		return nil, fmt.Errorf("load program %d tree: %w", id, err)
	}
	return &tree[0], nil
}

func (s *Service) UpdateProgram(ctx context.Context, trainerID, id int64, req UpdateProgramRequest) (p *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.update.program")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = s.store.InTx(ctx, func(tx Store) error {
		if err := authorize(ctx, tx, trainerID, LevelProgram, id); err != nil {
			return err
		}
		var err error
		if p, err = tx.GetProgram(ctx, id); err != nil {
			return fmt.Errorf("get program %d: %w", id, err)
		}
		req.apply(p)
		p.UpdatedAt = s.nowFunc()
		return tx.UpdateProgram(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) DeleteProgram(ctx context.Context, trainerID, id int64) (DeleteReport, error) {
	return s.remove(ctx, trainerID, LevelProgram, id)
}

// DuplicateProgram clones the whole program tree into a new program.
func (s *Service) DuplicateProgram(ctx context.Context, trainerID, id int64, req DuplicateProgramRequest) (p *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.duplicate.program")
	var created int
	defer func() {
		s.countDuplication(LevelProgram, created, err)
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("program.id", id))

	err = s.store.InTx(ctx, func(tx Store) error {
		if err := authorize(ctx, tx, trainerID, LevelProgram, id); err != nil {
			return err
		}
		src, err := loadProgramTree(ctx, tx, id)
		if err != nil {
			return err
		}

		name := src.Name + " (copy)"
		if req.Name != nil {
			name = *req.Name
		}
		clientID := src.ClientID
		if req.ClientID != nil {
			clientID = req.ClientID
		}

		d := newDuplicator(tx, s.nowFunc())
		p, err = d.copyProgram(ctx, src, name, clientID)
		created = d.created
		return err
	})
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("duplicated.rows", created))
	return p, nil
}

// weeks

func (s *Service) CreateWeek(ctx context.Context, trainerID, programID int64, req CreateWeekRequest) (w *Week, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.create.week")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = s.store.InTx(ctx, func(tx Store) error {
		if err := authorize(ctx, tx, trainerID, LevelProgram, programID); err != nil {
			return err
		}
		if err := checkOrdinal(ctx, tx, LevelWeek, programID, req.WeekNumber, 0); err != nil {
			return err
		}

		now := s.nowFunc()
		w = &Week{
			ProgramID:   programID,
			WeekNumber:  req.WeekNumber,
			Title:       req.Title,
			Description: req.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
			Days:        []Day{},
		}
		return tx.CreateWeek(ctx, w)
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) GetWeek(ctx context.Context, trainerID, id int64) (_ *Week, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.get.week")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := authorize(ctx, s.store, trainerID, LevelWeek, id); err != nil {
		return nil, err
	}
	return loadWeekTree(ctx, s.store, id)
}

func loadWeekTree(ctx context.Context, st Store, id int64) (*Week, error) {
	w, err := st.GetWeek(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get week %d: %w", id, err)
	}
	tree := []Week{*w}
	if err := attachDays(ctx, st, tree); err != nil {
		return nil, fmt.Errorf("load week %d tree: %w", id, err)
	}
	return &tree[0], nil
}

func (s *Service) UpdateWeek(ctx context.Context, trainerID, id int64, req UpdateWeekRequest) (w *Week, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.update.week")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = s.store.InTx(ctx, func(tx Store) error {
		if err := authorize(ctx, tx, trainerID, LevelWeek, id); err != nil {
			return err
		}
		var err error
		if w, err = tx.GetWeek(ctx, id); err != nil {
			return fmt.Errorf("get week %d: %w", id, err)
		}
		if req.WeekNumber != nil && *req.WeekNumber != w.WeekNumber {
			if err := checkOrdinal(ctx, tx, LevelWeek, w.ProgramID, *req.WeekNumber, w.ID); err != nil {
				return err
			}
		}
		req.apply(w)
		w.UpdatedAt = s.nowFunc()
		return tx.UpdateWeek(ctx, w)
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) DeleteWeek(ctx context.Context, trainerID, id int64) (DeleteReport, error) {
	return s.remove(ctx, trainerID, LevelWeek, id)
}

// DuplicateWeek deep copies the week with all of its days, circuits, exercises
// and sets into the same program, under the given week number.
func (s *Service) DuplicateWeek(ctx context.Context, trainerID, id int64, weekNumber int) (w *Week, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.duplicate.week")
	var created int
	defer func() {
		s.countDuplication(LevelWeek, created, err)
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("week.id", id), attribute.Int("week.number", weekNumber))

	err = s.store.InTx(ctx, func(tx Store) error {
		if err := authorize(ctx, tx, trainerID, LevelWeek, id); err != nil {
			return err
		}
		src, err := loadWeekTree(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := checkOrdinal(ctx, tx, LevelWeek, src.ProgramID, weekNumber, 0); err != nil {
			return err
		}

		d := newDuplicator(tx, s.nowFunc())
		w, err = d.copyWeek(ctx, src, src.ProgramID, weekNumber)
		created = d.created
		return err
	})
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("duplicated.rows", created))
	return w, nil
}

// days

func (s *Service) CreateDay(ctx context.Context, trainerID, weekID int64, req CreateDayRequest) (d *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.create.day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = s.store.InTx(ctx, func(tx Store) error {
		if err := authorize(ctx, tx, trainerID, LevelWeek, weekID); err != nil {
			return err
		}
		if err := checkOrdinal(ctx, tx, LevelDay, weekID, req.DayNumber, 0); err != nil {
			return err
		}

		now := s.nowFunc()
		d = &Day{
			WeekID:     weekID,
			DayNumber:  req.DayNumber,
			Title:      req.Title,
			CoolDown:   req.CoolDown,
			CustomRows: req.CustomRows,
			CreatedAt:  now,
			UpdatedAt:  now,
			Circuits:   []Circuit{},
		}
		return tx.CreateDay(ctx, d)
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) GetDay(ctx context.Context, trainerID, id int64) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.get.day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := authorize(ctx, s.store, trainerID, LevelDay, id); err != nil {
		return nil, err
	}
	return loadDayTree(ctx, s.store, id)
}

func loadDayTree(ctx context.Context, st Store, id int64) (*Day, error) {
	d, err := st.GetDay(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get day %d: %w", id, err)
	}
	tree := []Day{*d}
	if err := attachCircuits(ctx, st, tree); err != nil {
		return nil, fmt.Errorf("load day %d tree: %w", id, err)
	}
	return &tree[0], nil
}

func (s *Service) UpdateDay(ctx context.Context, trainerID, id int64, req UpdateDayRequest) (d *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.update.day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = s.store.InTx(ctx, func(tx Store) error {
		if err := authorize(ctx, tx, trainerID, LevelDay, id); err != nil {
			return err
		}
		var err error
		if d, err = tx.GetDay(ctx, id); err != nil {
			return fmt.Errorf("get day %d: %w", id, err)
		}
		if req.DayNumber != nil && *req.DayNumber != d.DayNumber {
			if err := checkOrdinal(ctx, tx, LevelDay, d.WeekID, *req.DayNumber, d.ID); err != nil {
				return err
			}
		}
		req.apply(d)
		d.UpdatedAt = s.nowFunc()
		return tx.UpdateDay(ctx, d)
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) DeleteDay(ctx context.Context, trainerID, id int64) (DeleteReport, error) {
	return s.remove(ctx, trainerID, LevelDay, id)
}

// DuplicateDay deep copies the day into the same week, under the given day number.
func (s *Service) DuplicateDay(ctx context.Context, trainerID, id int64, dayNumber int) (day *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.duplicate.day")
	var created int
	defer func() {
		s.countDuplication(LevelDay, created, err)
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("day.id", id), attribute.Int("day.number", dayNumber))

	err = s.store.InTx(ctx, func(tx Store) error {
		if err := authorize(ctx, tx, trainerID, LevelDay, id); err != nil {
			return err
		}
		src, err := loadDayTree(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := checkOrdinal(ctx, tx, LevelDay, src.WeekID, dayNumber, 0); err != nil {
			return err
		}

		d := newDuplicator(tx, s.nowFunc())
		day, err = d.copyDay(ctx, src, src.WeekID, dayNumber)
		created = d.created
		return err
	})
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("duplicated.rows", created))
	return day, nil
}

// circuits

func (s *Service) CreateCircuit(ctx context.Context, trainerID, dayID int64, req CreateCircuitRequest) (c *Circuit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.create.circuit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = s.store.InTx(ctx, func(tx Store) error {
		if err := authorize(ctx, tx, trainerID, LevelDay, dayID); err != nil {
			return err
		}
		if err := checkOrdinal(ctx, tx, LevelCircuit, dayID, req.CircuitNumber, 0); err != nil {
			return err
		}

		now := s.nowFunc()
		c = &Circuit{
			DayID:         dayID,
			CircuitNumber: req.CircuitNumber,
			Title:         req.Title,
			Description:   req.Description,
			CreatedAt:     now,
			UpdatedAt:     now,
			Exercises:     []Exercise{},
		}
		return tx.CreateCircuit(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) UpdateCircuit(ctx context.Context, trainerID, id int64, req UpdateCircuitRequest) (c *Circuit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.update.circuit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = s.store.InTx(ctx, func(tx Store) error {
		if err := authorize(ctx, tx, trainerID, LevelCircuit, id); err != nil {
			return err
		}
		var err error
		if c, err = tx.GetCircuit(ctx, id); err != nil {
			return fmt.Errorf("get circuit %d: %w", id, err)
		}
		if req.CircuitNumber != nil && *req.CircuitNumber != c.CircuitNumber {
			if err := checkOrdinal(ctx, tx, LevelCircuit, c.DayID, *req.CircuitNumber, c.ID); err != nil {
				return err
			}
		}
		req.apply(c)
		c.UpdatedAt = s.nowFunc()
		return tx.UpdateCircuit(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) DeleteCircuit(ctx context.Context, trainerID, id int64) (DeleteReport, error) {
	return s.remove(ctx, trainerID, LevelCircuit, id)
}

// exercises

func (s *Service) CreateExercise(ctx context.Context, trainerID, circuitID int64, req CreateExerciseRequest) (e *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.create.exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.checkWorkout(ctx, req.WorkoutID); err != nil {
		return nil, err
	}

	err = s.store.InTx(ctx, func(tx Store) error {
		if err := authorize(ctx, tx, trainerID, LevelCircuit, circuitID); err != nil {
			return err
		}

		now := s.nowFunc()
		e = &Exercise{
			CircuitID:    circuitID,
			WorkoutID:    req.WorkoutID,
			Name:         req.Name,
			Order:        req.Order,
			Tempo:        req.Tempo,
			RestInterval: req.RestInterval,
			Notes:        req.Notes,
			CreatedAt:    now,
			UpdatedAt:    now,
			Sets:         []Set{},
		}
		return tx.CreateExercise(ctx, e)
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) UpdateExercise(ctx context.Context, trainerID, id int64, req UpdateExerciseRequest) (e *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.update.exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	// null unlinks the workout, nothing to check
	if err := s.checkWorkout(ctx, req.WorkoutID.Value); err != nil {
		return nil, err
	}

	err = s.store.InTx(ctx, func(tx Store) error {
		if err := authorize(ctx, tx, trainerID, LevelExercise, id); err != nil {
			return err
		}
		var err error
		if e, err = tx.GetExercise(ctx, id); err != nil {
			return fmt.Errorf("get exercise %d: %w", id, err)
		}
		req.apply(e)
		e.UpdatedAt = s.nowFunc()
		return tx.UpdateExercise(ctx, e)
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) DeleteExercise(ctx context.Context, trainerID, id int64) (DeleteReport, error) {
	return s.remove(ctx, trainerID, LevelExercise, id)
}

// ReorderExercises applies the whole batch of new orders in one transaction.
// An exercise not belonging to the circuit rejects the batch, nothing is applied.
func (s *Service) ReorderExercises(ctx context.Context, trainerID, circuitID int64, orders []ExerciseOrder) (exercises []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.reorder.exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("circuit.id", circuitID), attribute.Int("batch.size", len(orders)))

	if len(orders) == 0 {
		return nil, NewValidationError("exercises", "is required")
	}
	seen := make(map[int64]bool, len(orders))
	for _, o := range orders {
		if seen[o.ID] {
			return nil, NewValidationError("exercises", fmt.Sprintf("exercise %d listed more than once", o.ID))
		}
		seen[o.ID] = true
	}

	err = s.store.InTx(ctx, func(tx Store) error {
		if err := authorize(ctx, tx, trainerID, LevelCircuit, circuitID); err != nil {
			return err
		}

		for _, o := range orders {
			updated, err := tx.UpdateExerciseOrder(ctx, circuitID, o.ID, o.Order)
			if err != nil {
				return fmt.Errorf("update exercise %d order: %w", o.ID, err)
			}
			if updated == 0 {
				return NewValidationError(
					"exercises",
					fmt.Sprintf("exercise %d does not belong to circuit %d", o.ID, circuitID),
				)
			}
		}
		log.Tracef("reordered %d exercises of circuit %d", len(orders), circuitID)

		exercises, err = tx.ExercisesByCircuits(ctx, []int64{circuitID})
		if err != nil {
			return fmt.Errorf("list circuit %d exercises: %w", circuitID, err)
		}
		return attachSets(ctx, tx, exercises)
	})
	if err != nil {
		return nil, err
	}
	return exercises, nil
}

// sets

func (s *Service) CreateSet(ctx context.Context, trainerID, exerciseID int64, req CreateSetRequest) (set *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.create.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = s.store.InTx(ctx, func(tx Store) error {
		if err := authorize(ctx, tx, trainerID, LevelExercise, exerciseID); err != nil {
			return err
		}

		now := s.nowFunc()
		set = &Set{
			ExerciseID: exerciseID,
			SetNumber:  req.SetNumber,
			Reps:       req.Reps,
			Weight:     req.Weight,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		return tx.CreateSet(ctx, set)
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

func (s *Service) UpdateSet(ctx context.Context, trainerID, id int64, req UpdateSetRequest) (set *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.update.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = s.store.InTx(ctx, func(tx Store) error {
		if err := authorize(ctx, tx, trainerID, LevelSet, id); err != nil {
			return err
		}
		var err error
		if set, err = tx.GetSet(ctx, id); err != nil {
			return fmt.Errorf("get set %d: %w", id, err)
		}
		req.apply(set)
		set.UpdatedAt = s.nowFunc()
		return tx.UpdateSet(ctx, set)
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

func (s *Service) DeleteSet(ctx context.Context, trainerID, id int64) (DeleteReport, error) {
	return s.remove(ctx, trainerID, LevelSet, id)
}

// ImportProgram stores a whole program tree for the trainer, e.g. a generated one.
func (s *Service) ImportProgram(ctx context.Context, trainerID int64, src *Program) (p *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.import.program")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = s.store.InTx(ctx, func(tx Store) error {
		tree := *src
		tree.TrainerID = trainerID
		d := newDuplicator(tx, s.nowFunc())
		p, err = d.copyProgram(ctx, &tree, tree.Name, tree.ClientID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}
