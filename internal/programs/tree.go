package programs

import "context"

func groupBy[T any](items []T, parentID func(T) int64) map[int64][]T {
	grouped := make(map[int64][]T)
	for _, item := range items {
		pid := parentID(item)
		grouped[pid] = append(grouped[pid], item)
	}
	return grouped
}

// children never returns nil, so loaded but empty collections render as [].
func children[T any](grouped map[int64][]T, parentID int64) []T {
	if c, ok := grouped[parentID]; ok {
		return c
	}
	return []T{}
}

func attachWeeks(ctx context.Context, st Store, programs []Program) error {
	if len(programs) == 0 {
		return nil
	}
	ids := make([]int64, len(programs))
	for i := range programs {
		ids[i] = programs[i].ID
	}

	weeks, err := st.WeeksByPrograms(ctx, ids)
	if err != nil {
		return err
	}
	if err := attachDays(ctx, st, weeks); err != nil {
		return err
	}

	grouped := groupBy(weeks, func(w Week) int64 { return w.ProgramID })
	for i := range programs {
		programs[i].Weeks = children(grouped, programs[i].ID)
	}
	return nil
}

func attachDays(ctx context.Context, st Store, weeks []Week) error {
	if len(weeks) == 0 {
		return nil
	}
	ids := make([]int64, len(weeks))
	for i := range weeks {
		ids[i] = weeks[i].ID
	}

	days, err := st.DaysByWeeks(ctx, ids)
	if err != nil {
		return err
	}
	if err := attachCircuits(ctx, st, days); err != nil {
		return err
	}

	grouped := groupBy(days, func(d Day) int64 { return d.WeekID })
	for i := range weeks {
		weeks[i].Days = children(grouped, weeks[i].ID)
	}
	return nil
}

func attachCircuits(ctx context.Context, st Store, days []Day) error {
	if len(days) == 0 {
		return nil
	}
	ids := make([]int64, len(days))
	for i := range days {
		ids[i] = days[i].ID
	}

	circuits, err := st.CircuitsByDays(ctx, ids)
	if err != nil {
		return err
	}
	if err := attachExercises(ctx, st, circuits); err != nil {
		return err
	}

	grouped := groupBy(circuits, func(c Circuit) int64 { return c.DayID })
	for i := range days {
		days[i].Circuits = children(grouped, days[i].ID)
	}
	return nil
}

func attachExercises(ctx context.Context, st Store, circuits []Circuit) error {
	if len(circuits) == 0 {
		return nil
	}
	ids := make([]int64, len(circuits))
	for i := range circuits {
		ids[i] = circuits[i].ID
	}

	exercises, err := st.ExercisesByCircuits(ctx, ids)
	if err != nil {
		return err
	}
	if err := attachSets(ctx, st, exercises); err != nil {
		return err
	}

	grouped := groupBy(exercises, func(e Exercise) int64 { return e.CircuitID })
	for i := range circuits {
		circuits[i].Exercises = children(grouped, circuits[i].ID)
	}
	return nil
}

func attachSets(ctx context.Context, st Store, exercises []Exercise) error {
	if len(exercises) == 0 {
		return nil
	}
	ids := make([]int64, len(exercises))
	for i := range exercises {
		ids[i] = exercises[i].ID
	}

	sets, err := st.SetsByExercises(ctx, ids)
	if err != nil {
		return err
	}

	grouped := groupBy(sets, func(s Set) int64 { return s.ExerciseID })
	for i := range exercises {
		exercises[i].Sets = children(grouped, exercises[i].ID)
	}
	return nil
}
