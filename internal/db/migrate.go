package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS body (
	id		SERIAL PRIMARY KEY,
	name	VARCHAR(255) NOT NULL
);

CREATE TABLE IF NOT EXISTS program (
	id		SERIAL PRIMARY KEY,
	day		INTEGER NOT NULL,
	name	VARCHAR(255) NOT NULL
);

CREATE TABLE IF NOT EXISTS split (
	id			SERIAL PRIMARY KEY,
	name		VARCHAR(255) NOT NULL,
	program_id	INTEGER REFERENCES program(id)
);

CREATE TABLE IF NOT EXISTS exercise (
	id			SERIAL PRIMARY KEY,
	body_id		INTEGER NOT NULL REFERENCES body(id),
	name		VARCHAR(255) NOT NULL,
	split_id	INTEGER REFERENCES split(id)
);

CREATE TABLE IF NOT EXISTS train (
	id			SERIAL PRIMARY KEY,
	split_id	INTEGER NOT NULL REFERENCES split(id),
	body_id		INTEGER NOT NULL REFERENCES body(id)
);

CREATE TABLE IF NOT EXISTS day (
	id			SERIAL PRIMARY KEY,
	date		DATE NOT NULL,
	user_id		VARCHAR(255) NOT NULL,
	split_id	INTEGER REFERENCES split(id),
	CONSTRAINT uq_day_user_date UNIQUE (user_id, date)
);

CREATE TABLE IF NOT EXISTS workout (
	id			SERIAL PRIMARY KEY,
	date_id		INTEGER NOT NULL REFERENCES day(id) ON DELETE CASCADE,
	exercise_id	INTEGER NOT NULL REFERENCES exercise(id),
	weight		DOUBLE PRECISION NOT NULL,
	rpe			DOUBLE PRECISION NOT NULL,
	description	VARCHAR(255) NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS set_entry (
	id			SERIAL PRIMARY KEY,
	workout_id	INTEGER NOT NULL REFERENCES workout(id) ON DELETE CASCADE,
	reps		INTEGER NOT NULL,
	weights		DOUBLE PRECISION NOT NULL,
	metric		TEXT NOT NULL DEFAULT 'lb' CHECK (metric IN ('lb', 'kg'))
);

CREATE INDEX IF NOT EXISTS ix_exercise_body_id ON exercise (body_id);
CREATE INDEX IF NOT EXISTS ix_train_split_id ON train (split_id);
CREATE INDEX IF NOT EXISTS ix_workout_date_id ON workout (date_id);
CREATE INDEX IF NOT EXISTS ix_workout_exercise_id ON workout (exercise_id);
CREATE INDEX IF NOT EXISTS ix_set_entry_workout_id ON set_entry (workout_id);
`

// Migrate ensures tables exist. Safe to call on every start.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
