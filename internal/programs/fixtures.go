package programs

import (
	"encoding/json"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
)

// TreeShape sets how many children every generated node gets.
type TreeShape struct {
	Weeks     int
	Days      int
	Circuits  int
	Exercises int
	Sets      int
}

var DefaultTreeShape = TreeShape{Weeks: 2, Days: 3, Circuits: 2, Exercises: 3, Sets: 3}

// FakeProgram generates a program tree without ids, ready to be imported.
func FakeProgram(f *gofakeit.Faker, trainerID int64, shape TreeShape) *Program {
	description := f.Sentence(10)
	p := &Program{
		TrainerID:    trainerID,
		Name:         fmt.Sprintf("%s %s", f.Adjective(), f.Noun()),
		Duration:     shape.Weeks,
		Description:  &description,
		IsActive:     true,
		ColumnConfig: json.RawMessage(`{"show_tempo":true,"show_rest":true}`),
		Weeks:        make([]Week, 0, shape.Weeks),
	}
	for i := 1; i <= shape.Weeks; i++ {
		p.Weeks = append(p.Weeks, *FakeWeek(f, i, shape))
	}
	return p
}

func FakeWeek(f *gofakeit.Faker, weekNumber int, shape TreeShape) *Week {
	w := &Week{
		WeekNumber: weekNumber,
		Title:      fmt.Sprintf("Week %d: %s", weekNumber, f.Noun()),
		Days:       make([]Day, 0, shape.Days),
	}
	for i := 1; i <= shape.Days; i++ {
		w.Days = append(w.Days, *FakeDay(f, i, shape))
	}
	return w
}

func FakeDay(f *gofakeit.Faker, dayNumber int, shape TreeShape) *Day {
	coolDown := f.Sentence(5)
	d := &Day{
		DayNumber:  dayNumber,
		Title:      f.Verb() + " day",
		CoolDown:   &coolDown,
		CustomRows: json.RawMessage(fmt.Sprintf(`[{"label":"warm up","value":"%d min"}]`, f.Number(5, 15))),
		Circuits:   make([]Circuit, 0, shape.Circuits),
	}
	for i := 1; i <= shape.Circuits; i++ {
		c := Circuit{
			CircuitNumber: i,
			Title:         fmt.Sprintf("Circuit %c", 'A'+rune(i-1)),
			Exercises:     make([]Exercise, 0, shape.Exercises),
		}
		for j := 0; j < shape.Exercises; j++ {
			c.Exercises = append(c.Exercises, *FakeExercise(f, j, shape.Sets))
		}
		d.Circuits = append(d.Circuits, c)
	}
	return d
}

func FakeExercise(f *gofakeit.Faker, order, sets int) *Exercise {
	tempo := fmt.Sprintf("%d-%d-%d-%d", f.Number(1, 4), f.Number(0, 2), f.Number(1, 4), f.Number(0, 2))
	rest := fmt.Sprintf("%ds", f.Number(3, 12)*10)
	e := &Exercise{
		Name:         f.Verb() + " " + f.Noun(),
		Order:        order,
		Tempo:        &tempo,
		RestInterval: &rest,
		Sets:         make([]Set, 0, sets),
	}
	for i := 1; i <= sets; i++ {
		e.Sets = append(e.Sets, Set{
			SetNumber: i,
			Reps:      fmt.Sprintf("%d", f.Number(5, 15)),
			Weight:    fmt.Sprintf("%dkg", f.Number(4, 40)*5),
		})
	}
	return e
}
