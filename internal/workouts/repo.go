package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dkrstic/fitlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

// UpdateResult mirrors the update report of the document store clients the
// browser app was written against, so it stays a drop-in consumer.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, day time.Time) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout (day, exercises) VALUES ($1, '[]'::jsonb) RETURNING id;`,
		day,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int64
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int64("workout.id", id))

	return &Workout{
		ID:        id,
		Day:       day,
		Exercises: []Exercise{},
	}, nil
}

// AppendExercise pushes one exercise to the end of the workout exercise list.
// A missing workout id is not an error: the result reports zero matched rows.
func (r *Repo) AppendExercise(ctx context.Context, id int64, exercise Exercise) (_ UpdateResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.appendExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("workout.id", id))

	exerciseJson, err := json.Marshal(exercise)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("marshal exercise: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout SET exercises = exercises || $1::jsonb WHERE id = $2;`,
		exerciseJson, id,
	)
	if err != nil {
		return UpdateResult{}, err
	}

	return UpdateResult{
		MatchedCount:  tag.RowsAffected(),
		ModifiedCount: tag.RowsAffected(),
	}, nil
}

// Delete removes a workout together with its embedded exercises.
// Deleting a missing id reports zero deleted rows instead of failing.
func (r *Repo) Delete(ctx context.Context, id int64) (_ DeleteResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("workout.id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout WHERE id = $1`,
		id,
	)
	if err != nil {
		return DeleteResult{}, err
	}

	return DeleteResult{DeletedCount: tag.RowsAffected()}, nil
}

// Latest returns the most recently created workout, by id descending.
func (r *Repo) Latest(ctx context.Context) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, day, exercises FROM workout ORDER BY id DESC LIMIT 1;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	workouts, err := r.rows2workouts(rows)
	if err != nil {
		return nil, err
	}

	if len(workouts) == 0 {
		return nil, ErrWorkoutNotFound
	}

	return &workouts[0], nil
}

// AdjacentBefore returns the workout created last within the day window ending
// at date. When currentID is set (> 0) only earlier-created workouts qualify,
// so repeated calls walk backwards through same-day workouts.
func (r *Repo) AdjacentBefore(ctx context.Context, date time.Time, currentID int64) (*Workout, error) {
	from := startOfDay(date.AddDate(0, 0, -1))
	to := endOfDay(date)
	return r.adjacent(ctx, from, to, currentID, true)
}

// AdjacentAfter mirrors AdjacentBefore in the forward direction.
func (r *Repo) AdjacentAfter(ctx context.Context, date time.Time, currentID int64) (*Workout, error) {
	from := startOfDay(date)
	to := endOfDay(date.AddDate(0, 0, 1))
	return r.adjacent(ctx, from, to, currentID, false)
}

func (r *Repo) adjacent(ctx context.Context, from, to time.Time, currentID int64, before bool) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.adjacent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Bool("before", before))
	span.SetAttributes(attribute.Int64("current_id", currentID))

	query := `
		SELECT id, day, exercises FROM workout
			WHERE day >= $1 AND day <= $2
			AND ($3::bigint = 0 OR id < $3)
		ORDER BY id DESC
		LIMIT 1;`
	if !before {
		query = `
		SELECT id, day, exercises FROM workout
			WHERE day >= $1 AND day <= $2
			AND ($3::bigint = 0 OR id > $3)
		ORDER BY id ASC
		LIMIT 1;`
	}

	rows, err := r.db.Query(ctx, query, from, to, currentID)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	workouts, err := r.rows2workouts(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2workouts: %w", err)
	}

	if len(workouts) == 0 {
		return nil, ErrWorkoutNotFound
	}

	return &workouts[0], nil
}

// SummarizeByWeekday flattens exercises in the window and sums duration and
// weight per day of week (1=Sunday .. 7=Saturday). Only weekdays with data
// produce rows; gap-filling happens in the Aggregator.
func (r *Repo) SummarizeByWeekday(ctx context.Context, from, to time.Time) (_ []WeekdaySummaryEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.summarizeByWeekday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
		SELECT
			EXTRACT(DOW FROM w.day)::int + 1 AS week_day,
			COALESCE(SUM((e->>'duration')::int), 0) AS duration,
			COALESCE(SUM((e->>'weight')::int), 0) AS weight
		FROM workout w, jsonb_array_elements(w.exercises) e
			WHERE w.day >= $1 AND w.day <= $2
		GROUP BY week_day
		ORDER BY week_day;`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	var entries []WeekdaySummaryEntry
	for rows.Next() {
		var weekDay, duration, weight int
		if err := rows.Scan(&weekDay, &duration, &weight); err != nil {
			return nil, err
		}
		entries = append(entries, WeekdaySummaryEntry{
			WeekDay:  weekDay,
			Duration: &duration,
			Weight:   &weight,
		})
	}

	return entries, nil
}

// SummarizeByExerciseName flattens exercises in the window and sums duration
// and weight per distinct exercise name, name ascending.
func (r *Repo) SummarizeByExerciseName(ctx context.Context, from, to time.Time) (_ []ExerciseSummaryEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.summarizeByExerciseName")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
		SELECT
			e->>'name' AS exercise_name,
			COALESCE(SUM((e->>'duration')::int), 0) AS duration,
			COALESCE(SUM((e->>'weight')::int), 0) AS weight
		FROM workout w, jsonb_array_elements(w.exercises) e
			WHERE w.day >= $1 AND w.day <= $2
		GROUP BY exercise_name
		ORDER BY exercise_name;`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	var entries []ExerciseSummaryEntry
	for rows.Next() {
		var entry ExerciseSummaryEntry
		if err := rows.Scan(&entry.ExerciseName, &entry.Duration, &entry.Weight); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *Repo) rows2workouts(rows pgx.Rows) ([]Workout, error) {
	var workouts []Workout
	for rows.Next() {
		var id int64
		var day time.Time
		var exercisesBytes []byte
		if err := rows.Scan(&id, &day, &exercisesBytes); err != nil {
			return nil, err
		}

		w := Workout{
			ID:  id,
			Day: day,
		}

		if len(exercisesBytes) > 0 {
			if err := json.Unmarshal(exercisesBytes, &w.Exercises); err != nil {
				return nil, fmt.Errorf("unmarshal exercises for workout %d: %w", id, err)
			}
		}
		if w.Exercises == nil {
			w.Exercises = make([]Exercise, 0)
		}

		workouts = append(workouts, w)
	}

	if workouts == nil {
		workouts = make([]Workout, 0)
	}

	return workouts, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}
