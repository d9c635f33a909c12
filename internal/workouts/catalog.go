package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=workouts

const megabyte = 1024 * 1024

type workoutsRepo interface {
	Add(ctx context.Context, w *Workout) error
	Get(ctx context.Context, id int64) (*Workout, error)
	List(ctx context.Context) ([]Workout, error)
	Delete(ctx context.Context, id int64) error
}

// Catalog serves workouts with a read-through in process cache in front of the repo.
type Catalog struct {
	repo    workoutsRepo
	cache   *freecache.Cache
	ttl     time.Duration
	nowFunc func() time.Time
}

func NewCatalog(repo workoutsRepo, cacheSizeMB int, ttl time.Duration) *Catalog {
	if cacheSizeMB <= 0 {
		cacheSizeMB = 1
	}
	return &Catalog{
		repo:  repo,
		cache: freecache.NewCache(cacheSizeMB * megabyte),
		ttl:   ttl,
		nowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func cacheKey(id int64) []byte {
	return []byte(fmt.Sprintf("workout::%d", id))
}

func (c *Catalog) Add(ctx context.Context, req AddWorkoutRequest) (*Workout, error) {
	w := &Workout{
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		VideoURLs:   req.VideoURLs,
		CreatedAt:   c.nowFunc(),
	}
	if err := c.repo.Add(ctx, w); err != nil {
		return nil, err
	}
	c.store(w)
	return w, nil
}

func (c *Catalog) Get(ctx context.Context, id int64) (*Workout, error) {
	if workoutBytes, err := c.cache.Get(cacheKey(id)); err == nil {
		var w Workout
		unmarshalErr := json.Unmarshal(workoutBytes, &w)
		if unmarshalErr == nil {
			log.Tracef("workout %d found in cache", id)
			return &w, nil
		}
		log.Errorf("unmarshal cached workout %d: %s", id, unmarshalErr)
		c.cache.Del(cacheKey(id))
	}

	w, err := c.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(w)
	return w, nil
}

// Exists reports whether the workout is in the catalog.
func (c *Catalog) Exists(ctx context.Context, id int64) (bool, error) {
	if _, err := c.Get(ctx, id); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (c *Catalog) List(ctx context.Context) ([]Workout, error) {
	return c.repo.List(ctx)
}

// Delete removes the workout and drops it from the cache.
// A workout still linked from exercises is kept and ErrWorkoutInUse returned.
func (c *Catalog) Delete(ctx context.Context, id int64) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		return err
	}
	c.cache.Del(cacheKey(id))
	return nil
}

func (c *Catalog) store(w *Workout) {
	workoutBytes, err := json.Marshal(w)
	if err != nil {
		log.Errorf("marshal workout %d for cache: %s", w.ID, err)
		return
	}
	if err := c.cache.Set(cacheKey(w.ID), workoutBytes, int(c.ttl.Seconds())); err != nil {
		log.Errorf("cache workout %d: %s", w.ID, err)
	}
}
