package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Schema of the whole service. Every statement is idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS trainer (
	id            BIGSERIAL PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	name          TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS workout (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	duration    INT NOT NULL DEFAULT 0,
	video_urls  TEXT[] NOT NULL DEFAULT '{}',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS program (
	id            BIGSERIAL PRIMARY KEY,
	trainer_id    BIGINT NOT NULL REFERENCES trainer(id) ON DELETE CASCADE,
	client_id     BIGINT,
	name          TEXT NOT NULL,
	duration      INT NOT NULL DEFAULT 0,
	description   TEXT,
	is_active     BOOLEAN NOT NULL DEFAULT TRUE,
	column_config JSONB,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_program_trainer_id ON program(trainer_id);

CREATE TABLE IF NOT EXISTS week (
	id          BIGSERIAL PRIMARY KEY,
	program_id  BIGINT NOT NULL REFERENCES program(id) ON DELETE CASCADE,
	week_number INT NOT NULL,
	title       TEXT NOT NULL DEFAULT '',
	description TEXT,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (program_id, week_number)
);

CREATE TABLE IF NOT EXISTS day (
	id          BIGSERIAL PRIMARY KEY,
	week_id     BIGINT NOT NULL REFERENCES week(id) ON DELETE CASCADE,
	day_number  INT NOT NULL,
	title       TEXT NOT NULL DEFAULT '',
	cool_down   TEXT,
	custom_rows JSONB,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (week_id, day_number)
);

CREATE TABLE IF NOT EXISTS circuit (
	id             BIGSERIAL PRIMARY KEY,
	day_id         BIGINT NOT NULL REFERENCES day(id) ON DELETE CASCADE,
	circuit_number INT NOT NULL,
	title          TEXT NOT NULL DEFAULT '',
	description    TEXT,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (day_id, circuit_number)
);

CREATE TABLE IF NOT EXISTS exercise (
	id            BIGSERIAL PRIMARY KEY,
	circuit_id    BIGINT NOT NULL REFERENCES circuit(id) ON DELETE CASCADE,
	workout_id    BIGINT,
	name          TEXT NOT NULL,
	sort_order    INT NOT NULL DEFAULT 0,
	tempo         TEXT,
	rest_interval TEXT,
	notes         TEXT,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_exercise_circuit_id ON exercise(circuit_id);
CREATE INDEX IF NOT EXISTS idx_exercise_workout_id ON exercise(workout_id);

-- a workout still linked from any program cannot be removed
ALTER TABLE exercise DROP CONSTRAINT IF EXISTS exercise_workout_id_fkey;
ALTER TABLE exercise ADD CONSTRAINT exercise_workout_id_fkey
	FOREIGN KEY (workout_id) REFERENCES workout(id) ON DELETE RESTRICT;

CREATE TABLE IF NOT EXISTS exercise_set (
	id          BIGSERIAL PRIMARY KEY,
	exercise_id BIGINT NOT NULL REFERENCES exercise(id) ON DELETE CASCADE,
	set_number  INT NOT NULL,
	reps        TEXT NOT NULL DEFAULT '',
	weight      TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_exercise_set_exercise_id ON exercise_set(exercise_id);
`

// Migrate ensures all tables exist. Call once at startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	log.Debugln("db schema applied")
	return nil
}
