package postgres

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         BIGSERIAL PRIMARY KEY,
	username   TEXT NOT NULL UNIQUE,
	age        INTEGER NOT NULL,
	height_cm  INTEGER NOT NULL,
	weight_kg  DOUBLE PRECISION NOT NULL,
	gender     TEXT NOT NULL,
	body_type  INTEGER NOT NULL,
	goal       INTEGER NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS workout_plans (
	id                BIGSERIAL PRIMARY KEY,
	user_id           BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	workout_type      TEXT NOT NULL DEFAULT 'gym',
	sessions_per_week INTEGER NOT NULL,
	hours_per_session DOUBLE PRECISION NOT NULL,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_workout_plans_user_id ON workout_plans (user_id);

CREATE TABLE IF NOT EXISTS muscle_groups (
	id   BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS exercises (
	id              BIGSERIAL PRIMARY KEY,
	name            TEXT NOT NULL UNIQUE,
	type            TEXT NOT NULL,
	muscle_group_id BIGINT NOT NULL REFERENCES muscle_groups(id)
);
CREATE INDEX IF NOT EXISTS ix_exercises_muscle_group_id ON exercises (muscle_group_id);

CREATE TABLE IF NOT EXISTS workout_days (
	id          BIGSERIAL PRIMARY KEY,
	user_id     BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	day_of_week TEXT NOT NULL CHECK (day_of_week IN
		('Monday', 'Tuesday', 'Wednesday', 'Thursday', 'Friday', 'Saturday', 'Sunday'))
);
CREATE INDEX IF NOT EXISTS ix_workout_days_user_id ON workout_days (user_id);

CREATE TABLE IF NOT EXISTS workout_day_exercises (
	id             BIGSERIAL PRIMARY KEY,
	workout_day_id BIGINT NOT NULL REFERENCES workout_days(id) ON DELETE CASCADE,
	exercise_id    BIGINT NOT NULL REFERENCES exercises(id),
	sets           INTEGER NOT NULL,
	reps           TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS ix_workout_day_exercises_day_id ON workout_day_exercises (workout_day_id);

CREATE TABLE IF NOT EXISTS workout_session_logs (
	id          BIGSERIAL PRIMARY KEY,
	user_id     BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	exercise_id BIGINT NOT NULL REFERENCES exercises(id),
	date        DATE NOT NULL,
	sets        INTEGER NOT NULL,
	reps        INTEGER NOT NULL,
	weight_kg   DOUBLE PRECISION NOT NULL,
	notes       TEXT,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_workout_session_logs_user_date ON workout_session_logs (user_id, date);

CREATE TABLE IF NOT EXISTS workout_templates (
	id   BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS workout_template_exercises (
	id          BIGSERIAL PRIMARY KEY,
	template_id BIGINT NOT NULL REFERENCES workout_templates(id) ON DELETE CASCADE,
	exercise_id BIGINT NOT NULL REFERENCES exercises(id)
);
CREATE INDEX IF NOT EXISTS ix_workout_template_exercises_template_id ON workout_template_exercises (template_id);
`
