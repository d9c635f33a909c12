package programs

import (
	"context"
	"fmt"
	"time"
)

// duplicator deep copies a loaded subtree, top-down and in source order.
// Each copied row gets a fresh id, its parent link remapped to the copied parent
// and regenerated timestamps. The source tree is only read.
type duplicator struct {
	st  Store
	now time.Time
	// number of inserted rows
	created int
}

func newDuplicator(st Store, now time.Time) *duplicator {
	return &duplicator{st: st, now: now}
}

func (d *duplicator) copyProgram(ctx context.Context, src *Program, name string, clientID *int64) (*Program, error) {
	p := *src
	p.ID = 0
	p.Name = name
	p.ClientID = clientID
	p.CreatedAt, p.UpdatedAt = d.now, d.now
	p.Weeks = make([]Week, 0, len(src.Weeks))
	if err := d.st.CreateProgram(ctx, &p); err != nil {
		return nil, fmt.Errorf("copy program %d: %w", src.ID, err)
	}
	d.created++

	for _, srcWeek := range src.Weeks {
		w, err := d.copyWeek(ctx, &srcWeek, p.ID, srcWeek.WeekNumber)
		if err != nil {
			return nil, err
		}
		p.Weeks = append(p.Weeks, *w)
	}
	return &p, nil
}

func (d *duplicator) copyWeek(ctx context.Context, src *Week, programID int64, weekNumber int) (*Week, error) {
	w := *src
	w.ID = 0
	w.ProgramID = programID
	w.WeekNumber = weekNumber
	w.CreatedAt, w.UpdatedAt = d.now, d.now
	w.Days = make([]Day, 0, len(src.Days))
	if err := d.st.CreateWeek(ctx, &w); err != nil {
		return nil, fmt.Errorf("copy week %d: %w", src.ID, err)
	}
	d.created++

	for _, srcDay := range src.Days {
		day, err := d.copyDay(ctx, &srcDay, w.ID, srcDay.DayNumber)
		if err != nil {
			return nil, err
		}
		w.Days = append(w.Days, *day)
	}
	return &w, nil
}

func (d *duplicator) copyDay(ctx context.Context, src *Day, weekID int64, dayNumber int) (*Day, error) {
	day := *src
	day.ID = 0
	day.WeekID = weekID
	day.DayNumber = dayNumber
	day.CustomRows = cloneBytes(src.CustomRows)
	day.CreatedAt, day.UpdatedAt = d.now, d.now
	day.Circuits = make([]Circuit, 0, len(src.Circuits))
	if err := d.st.CreateDay(ctx, &day); err != nil {
		return nil, fmt.Errorf("copy day %d: %w", src.ID, err)
	}
	d.created++

	for _, srcCircuit := range src.Circuits {
		c, err := d.copyCircuit(ctx, &srcCircuit, day.ID)
		if err != nil {
			return nil, err
		}
		day.Circuits = append(day.Circuits, *c)
	}
	return &day, nil
}

func (d *duplicator) copyCircuit(ctx context.Context, src *Circuit, dayID int64) (*Circuit, error) {
	c := *src
	c.ID = 0
	c.DayID = dayID
	c.CreatedAt, c.UpdatedAt = d.now, d.now
	c.Exercises = make([]Exercise, 0, len(src.Exercises))
	if err := d.st.CreateCircuit(ctx, &c); err != nil {
		return nil, fmt.Errorf("copy circuit %d: %w", src.ID, err)
	}
	d.created++

	for _, srcExercise := range src.Exercises {
		e, err := d.copyExercise(ctx, &srcExercise, c.ID)
		if err != nil {
			return nil, err
		}
		c.Exercises = append(c.Exercises, *e)
	}
	return &c, nil
}

func (d *duplicator) copyExercise(ctx context.Context, src *Exercise, circuitID int64) (*Exercise, error) {
	e := *src
	e.ID = 0
	e.CircuitID = circuitID
	e.CreatedAt, e.UpdatedAt = d.now, d.now
	e.Sets = make([]Set, 0, len(src.Sets))
	if err := d.st.CreateExercise(ctx, &e); err != nil {
		return nil, fmt.Errorf("copy exercise %d: %w", src.ID, err)
	}
	d.created++

	for _, srcSet := range src.Sets {
		s := srcSet
		s.ID = 0
		s.ExerciseID = e.ID
		s.CreatedAt, s.UpdatedAt = d.now, d.now
		if err := d.st.CreateSet(ctx, &s); err != nil {
			return nil, fmt.Errorf("copy set %d: %w", srcSet.ID, err)
		}
		d.created++
		e.Sets = append(e.Sets, s)
	}
	return &e, nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
