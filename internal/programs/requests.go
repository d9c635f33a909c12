package programs

import (
	"encoding/json"

	"github.com/2beens/trainerhub/internal/request"
)

// Nullable patch fields use request.Optional: omitted keeps the value, null clears it.

type CreateProgramRequest struct {
	Name         string          `json:"name" validate:"required,max=255"`
	ClientID     *int64          `json:"client_id" validate:"omitempty,gt=0"`
	Duration     int             `json:"duration" validate:"min=0,max=520"`
	Description  *string         `json:"description" validate:"omitempty,max=5000"`
	IsActive     *bool           `json:"is_active"`
	ColumnConfig json.RawMessage `json:"column_config" validate:"omitempty,json_document"`
}

type UpdateProgramRequest struct {
	Name         *string                           `json:"name" validate:"omitempty,min=1,max=255"`
	ClientID     request.Optional[int64]           `json:"client_id" validate:"omitempty,gt=0"`
	Duration     *int                              `json:"duration" validate:"omitempty,min=0,max=520"`
	Description  request.Optional[string]          `json:"description" validate:"omitempty,max=5000"`
	IsActive     *bool                             `json:"is_active"`
	ColumnConfig request.Optional[json.RawMessage] `json:"column_config" validate:"omitempty,json_document"`
}

func (r UpdateProgramRequest) apply(p *Program) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	r.ClientID.ApplyTo(&p.ClientID)
	if r.Duration != nil {
		p.Duration = *r.Duration
	}
	r.Description.ApplyTo(&p.Description)
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
	if r.ColumnConfig.Set {
		p.ColumnConfig = nil
		if r.ColumnConfig.Value != nil {
			p.ColumnConfig = *r.ColumnConfig.Value
		}
	}
}

// DuplicateProgramRequest clones a program, typically a template, for a client.
type DuplicateProgramRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=255"`
	ClientID *int64  `json:"client_id" validate:"omitempty,gt=0"`
}

type CreateWeekRequest struct {
	WeekNumber  int     `json:"week_number" validate:"required,min=1"`
	Title       string  `json:"title" validate:"max=255"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}

type UpdateWeekRequest struct {
	WeekNumber  *int                     `json:"week_number" validate:"omitempty,min=1"`
	Title       *string                  `json:"title" validate:"omitempty,max=255"`
	Description request.Optional[string] `json:"description" validate:"omitempty,max=5000"`
}

func (r UpdateWeekRequest) apply(w *Week) {
	if r.WeekNumber != nil {
		w.WeekNumber = *r.WeekNumber
	}
	if r.Title != nil {
		w.Title = *r.Title
	}
	r.Description.ApplyTo(&w.Description)
}

type DuplicateWeekRequest struct {
	WeekNumber int `json:"week_number" validate:"required,min=1"`
}

type CreateDayRequest struct {
	DayNumber  int             `json:"day_number" validate:"required,min=1"`
	Title      string          `json:"title" validate:"max=255"`
	CoolDown   *string         `json:"cool_down" validate:"omitempty,max=5000"`
	CustomRows json.RawMessage `json:"custom_rows" validate:"omitempty,json_array"`
}

type UpdateDayRequest struct {
	DayNumber  *int                              `json:"day_number" validate:"omitempty,min=1"`
	Title      *string                           `json:"title" validate:"omitempty,max=255"`
	CoolDown   request.Optional[string]          `json:"cool_down" validate:"omitempty,max=5000"`
	CustomRows request.Optional[json.RawMessage] `json:"custom_rows" validate:"omitempty,json_array"`
}

func (r UpdateDayRequest) apply(d *Day) {
	if r.DayNumber != nil {
		d.DayNumber = *r.DayNumber
	}
	if r.Title != nil {
		d.Title = *r.Title
	}
	r.CoolDown.ApplyTo(&d.CoolDown)
	if r.CustomRows.Set {
		d.CustomRows = nil
		if r.CustomRows.Value != nil {
			d.CustomRows = *r.CustomRows.Value
		}
	}
}

type DuplicateDayRequest struct {
	DayNumber int `json:"day_number" validate:"required,min=1"`
}

type CreateCircuitRequest struct {
	CircuitNumber int     `json:"circuit_number" validate:"required,min=1"`
	Title         string  `json:"title" validate:"max=255"`
	Description   *string `json:"description" validate:"omitempty,max=5000"`
}

type UpdateCircuitRequest struct {
	CircuitNumber *int                     `json:"circuit_number" validate:"omitempty,min=1"`
	Title         *string                  `json:"title" validate:"omitempty,max=255"`
	Description   request.Optional[string] `json:"description" validate:"omitempty,max=5000"`
}

func (r UpdateCircuitRequest) apply(c *Circuit) {
	if r.CircuitNumber != nil {
		c.CircuitNumber = *r.CircuitNumber
	}
	if r.Title != nil {
		c.Title = *r.Title
	}
	r.Description.ApplyTo(&c.Description)
}

type CreateExerciseRequest struct {
	WorkoutID    *int64  `json:"workout_id" validate:"omitempty,gt=0"`
	Name         string  `json:"name" validate:"required,max=255"`
	Order        int     `json:"order" validate:"min=0"`
	Tempo        *string `json:"tempo" validate:"omitempty,max=50"`
	RestInterval *string `json:"rest_interval" validate:"omitempty,max=50"`
	Notes        *string `json:"notes" validate:"omitempty,max=5000"`
}

type UpdateExerciseRequest struct {
	WorkoutID    request.Optional[int64]  `json:"workout_id" validate:"omitempty,gt=0"`
	Name         *string                  `json:"name" validate:"omitempty,min=1,max=255"`
	Order        *int                     `json:"order" validate:"omitempty,min=0"`
	Tempo        request.Optional[string] `json:"tempo" validate:"omitempty,max=50"`
	RestInterval request.Optional[string] `json:"rest_interval" validate:"omitempty,max=50"`
	Notes        request.Optional[string] `json:"notes" validate:"omitempty,max=5000"`
}

func (r UpdateExerciseRequest) apply(e *Exercise) {
	r.WorkoutID.ApplyTo(&e.WorkoutID)
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.Order != nil {
		e.Order = *r.Order
	}
	r.Tempo.ApplyTo(&e.Tempo)
	r.RestInterval.ApplyTo(&e.RestInterval)
	r.Notes.ApplyTo(&e.Notes)
}

type ReorderExercisesRequest struct {
	Exercises []ExerciseOrder `json:"exercises" validate:"required,min=1,dive"`
}

type CreateSetRequest struct {
	SetNumber int    `json:"set_number" validate:"required,min=1"`
	Reps      string `json:"reps" validate:"max=50"`
	Weight    string `json:"weight" validate:"max=50"`
}

type UpdateSetRequest struct {
	SetNumber *int    `json:"set_number" validate:"omitempty,min=1"`
	Reps      *string `json:"reps" validate:"omitempty,max=50"`
	Weight    *string `json:"weight" validate:"omitempty,max=50"`
}

func (r UpdateSetRequest) apply(s *Set) {
	if r.SetNumber != nil {
		s.SetNumber = *r.SetNumber
	}
	if r.Reps != nil {
		s.Reps = *r.Reps
	}
	if r.Weight != nil {
		s.Weight = *r.Weight
	}
}
