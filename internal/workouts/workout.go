package workouts

import (
	"errors"
	"time"
)

var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrWorkoutInUse    = errors.New("workout is used by exercises")
)

// Workout is a reusable exercise template from the catalog.
type Workout struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// minutes
	Duration  int       `json:"duration"`
	VideoURLs []string  `json:"video_urls"`
	CreatedAt time.Time `json:"created_at"`
}

type AddWorkoutRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Description string   `json:"description" validate:"max=5000"`
	Duration    int      `json:"duration" validate:"min=0,max=600"`
	VideoURLs   []string `json:"video_urls" validate:"max=10,dive,url"`
}
