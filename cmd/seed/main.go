package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/2beens/trainerhub/internal/auth"
	"github.com/2beens/trainerhub/internal/config"
	"github.com/2beens/trainerhub/internal/db"
	"github.com/2beens/trainerhub/internal/logging"
	"github.com/2beens/trainerhub/internal/programs"
	"github.com/2beens/trainerhub/internal/workouts"
	"github.com/2beens/trainerhub/pkg"

	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [dev | development | test]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	email := flag.String("email", "demo@trainerhub.io", "demo trainer email")
	password := flag.String("password", "demo-pass", "demo trainer password")
	programsCount := flag.Int("programs", 2, "number of fake programs to create")
	workoutsCount := flag.Int("workouts", 5, "number of fake catalog workouts to create")
	seed := flag.Int64("seed", 0, "faker seed, 0 for random")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := run(ctx, cfg, *email, *password, *programsCount, *workoutsCount, *seed); err != nil {
		log.Errorf("seed failed: %s", err)
		os.Exit(1)
	}
	log.Infoln("seed done")
}

func run(
	ctx context.Context,
	cfg *config.Config,
	email, password string,
	programsCount, workoutsCount int,
	seed int64,
) error {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("TRAINERHUB_DB_PASSWORD"),
	})
	if err != nil {
		return fmt.Errorf("new db pool: %w", err)
	}
	defer dbPool.Close()

	if err := db.Migrate(ctx, dbPool); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	trainerRepo := auth.NewTrainerRepo(dbPool)
	trainer, err := trainerRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		log.Infof("trainer %s exists with id %d", email, trainer.ID)
	case errors.Is(err, auth.ErrTrainerNotFound):
		hash, err := pkg.HashPassword(password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		trainer = &auth.Trainer{
			Email:        email,
			Name:         "Demo Trainer",
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		}
		if err := trainerRepo.Add(ctx, trainer); err != nil {
			return fmt.Errorf("add trainer: %w", err)
		}
		log.Infof("trainer %s created with id %d", email, trainer.ID)
	default:
		return fmt.Errorf("get trainer: %w", err)
	}

	faker := gofakeit.New(seed)

	catalog := workouts.NewCatalog(workouts.NewRepo(dbPool), cfg.WorkoutsCacheSizeMB, time.Minute)
	var workoutIDs []int64
	for i := 0; i < workoutsCount; i++ {
		w, err := catalog.Add(ctx, workouts.AddWorkoutRequest{
			Name:        faker.Verb() + " " + faker.Noun(),
			Description: faker.Sentence(12),
			Duration:    faker.Number(5, 60),
			VideoURLs:   []string{faker.URL()},
		})
		if err != nil {
			return fmt.Errorf("add workout: %w", err)
		}
		workoutIDs = append(workoutIDs, w.ID)
	}
	log.Infof("%d workouts added to the catalog", len(workoutIDs))

	service := programs.NewService(programs.NewRepo(dbPool), catalog, nil)
	for i := 0; i < programsCount; i++ {
		src := programs.FakeProgram(faker, trainer.ID, programs.DefaultTreeShape)
		linkWorkouts(faker, src, workoutIDs)

		p, err := service.ImportProgram(ctx, trainer.ID, src)
		if err != nil {
			return fmt.Errorf("import program: %w", err)
		}
		log.Infof("program [%s] created with id %d", p.Name, p.ID)
	}

	return nil
}

// linkWorkouts points roughly half of the exercises to catalog workouts.
func linkWorkouts(faker *gofakeit.Faker, p *programs.Program, workoutIDs []int64) {
	if len(workoutIDs) == 0 {
		return
	}
	for wi := range p.Weeks {
		for di := range p.Weeks[wi].Days {
			for ci := range p.Weeks[wi].Days[di].Circuits {
				exercises := p.Weeks[wi].Days[di].Circuits[ci].Exercises
				for ei := range exercises {
					if faker.Bool() {
						id := workoutIDs[faker.Number(0, len(workoutIDs)-1)]
						exercises[ei].WorkoutID = &id
					}
				}
			}
		}
	}
}
