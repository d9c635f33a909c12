package programs

import (
	"encoding/json"
	"time"
)

// Level is the depth of a node in the program hierarchy.
type Level string

const (
	LevelProgram  Level = "program"
	LevelWeek     Level = "week"
	LevelDay      Level = "day"
	LevelCircuit  Level = "circuit"
	LevelExercise Level = "exercise"
	LevelSet      Level = "set"
)

// Levels from the root down to the leaves.
var Levels = []Level{LevelProgram, LevelWeek, LevelDay, LevelCircuit, LevelExercise, LevelSet}

// Child returns the level directly below l, and false for leaves.
func (l Level) Child() (Level, bool) {
	for i, lvl := range Levels {
		if lvl == l && i+1 < len(Levels) {
			return Levels[i+1], true
		}
	}
	return "", false
}

type Program struct {
	ID        int64 `json:"id"`
	TrainerID int64 `json:"trainer_id"`
	// nil client means the program is a reusable template
	ClientID     *int64          `json:"client_id"`
	Name         string          `json:"name"`
	Duration     int             `json:"duration"`
	Description  *string         `json:"description"`
	IsActive     bool            `json:"is_active"`
	ColumnConfig json.RawMessage `json:"column_config"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	Weeks []Week `json:"weeks,omitempty"`
}

func (p *Program) IsTemplate() bool {
	return p.ClientID == nil
}

type Week struct {
	ID          int64     `json:"id"`
	ProgramID   int64     `json:"program_id"`
	WeekNumber  int       `json:"week_number"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Days []Day `json:"days"`
}

type Day struct {
	ID         int64           `json:"id"`
	WeekID     int64           `json:"week_id"`
	DayNumber  int             `json:"day_number"`
	Title      string          `json:"title"`
	CoolDown   *string         `json:"cool_down"`
	CustomRows json.RawMessage `json:"custom_rows"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	Circuits []Circuit `json:"circuits"`
}

type Circuit struct {
	ID            int64     `json:"id"`
	DayID         int64     `json:"day_id"`
	CircuitNumber int       `json:"circuit_number"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Exercises []Exercise `json:"exercises"`
}

type Exercise struct {
	ID        int64 `json:"id"`
	CircuitID int64 `json:"circuit_id"`
	// optional link to the workouts catalog
	WorkoutID    *int64    `json:"workout_id"`
	Name         string    `json:"name"`
	Order        int       `json:"order"`
	Tempo        *string   `json:"tempo"`
	RestInterval *string   `json:"rest_interval"`
	Notes        *string   `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Sets []Set `json:"sets"`
}

type Set struct {
	ID         int64     `json:"id"`
	ExerciseID int64     `json:"exercise_id"`
	SetNumber  int       `json:"set_number"`
	Reps       string    `json:"reps"`
	Weight     string    `json:"weight"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ProgramFilter struct {
	TemplatesOnly bool
	ClientID      *int64
}

// ExerciseOrder is a single entry of a reorder batch.
type ExerciseOrder struct {
	ID    int64 `json:"id" validate:"required,gt=0"`
	Order int   `json:"order" validate:"min=0"`
}

// DeleteReport holds the number of removed rows per level.
type DeleteReport map[Level]int64

func (r DeleteReport) Total() int64 {
	var total int64
	for _, n := range r {
		total += n
	}
	return total
}
