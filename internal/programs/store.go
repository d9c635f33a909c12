package programs

import "context"

// Store is the persistence layer of the program hierarchy.
// Child listings are ordered by parent, then ordinal, then id.
type Store interface {
	// InTx runs fn in a single transaction, rolled back entirely when fn fails.
	// Calling InTx on a store already bound to a transaction reuses it.
	InTx(ctx context.Context, fn func(tx Store) error) error

	// OwnerOf walks the parent chain of the node up to its program
	// and returns the program's trainer id.
	OwnerOf(ctx context.Context, level Level, id int64) (int64, error)
	// OrdinalTaken reports whether a sibling under parentID already uses the ordinal.
	// Node excludeID is skipped, pass 0 to check all siblings.
	OrdinalTaken(ctx context.Context, level Level, parentID int64, ordinal int, excludeID int64) (bool, error)
	// ChildIDs returns the ids of nodes at the level whose parent is one of parentIDs.
	ChildIDs(ctx context.Context, level Level, parentIDs []int64) ([]int64, error)
	// DeleteNodes removes the nodes at the level, returning the number of removed rows.
	DeleteNodes(ctx context.Context, level Level, ids []int64) (int64, error)

	CreateProgram(ctx context.Context, p *Program) error
	GetProgram(ctx context.Context, id int64) (*Program, error)
	ListPrograms(ctx context.Context, trainerID int64, filter ProgramFilter) ([]Program, error)
	UpdateProgram(ctx context.Context, p *Program) error

	CreateWeek(ctx context.Context, w *Week) error
	GetWeek(ctx context.Context, id int64) (*Week, error)
	UpdateWeek(ctx context.Context, w *Week) error
	WeeksByPrograms(ctx context.Context, programIDs []int64) ([]Week, error)

	CreateDay(ctx context.Context, d *Day) error
	GetDay(ctx context.Context, id int64) (*Day, error)
	UpdateDay(ctx context.Context, d *Day) error
	DaysByWeeks(ctx context.Context, weekIDs []int64) ([]Day, error)

	CreateCircuit(ctx context.Context, c *Circuit) error
	GetCircuit(ctx context.Context, id int64) (*Circuit, error)
	UpdateCircuit(ctx context.Context, c *Circuit) error
	CircuitsByDays(ctx context.Context, dayIDs []int64) ([]Circuit, error)

	CreateExercise(ctx context.Context, e *Exercise) error
	GetExercise(ctx context.Context, id int64) (*Exercise, error)
	UpdateExercise(ctx context.Context, e *Exercise) error
	// UpdateExerciseOrder sets the order of the exercise only if it belongs to the circuit.
	// Returns the number of updated rows.
	UpdateExerciseOrder(ctx context.Context, circuitID, exerciseID int64, order int) (int64, error)
	ExercisesByCircuits(ctx context.Context, circuitIDs []int64) ([]Exercise, error)

	CreateSet(ctx context.Context, s *Set) error
	GetSet(ctx context.Context, id int64) (*Set, error)
	UpdateSet(ctx context.Context, s *Set) error
	SetsByExercises(ctx context.Context, exerciseIDs []int64) ([]Set, error)
}
