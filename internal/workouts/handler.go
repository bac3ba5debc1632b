package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dkrstic/fitlog/internal/telemetry/metrics"
	"github.com/dkrstic/fitlog/internal/telemetry/tracing"
	"github.com/dkrstic/fitlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

const (
	operationPrevious = "P"
	operationNext     = "N"
)

type workoutsRepo interface {
	Create(ctx context.Context, day time.Time) (*Workout, error)
	AppendExercise(ctx context.Context, id int64, exercise Exercise) (UpdateResult, error)
	Delete(ctx context.Context, id int64) (DeleteResult, error)
	Latest(ctx context.Context) (*Workout, error)
	AdjacentBefore(ctx context.Context, date time.Time, currentID int64) (*Workout, error)
	AdjacentAfter(ctx context.Context, date time.Time, currentID int64) (*Workout, error)
	SummarizeByWeekday(ctx context.Context, from, to time.Time) ([]WeekdaySummaryEntry, error)
	SummarizeByExerciseName(ctx context.Context, from, to time.Time) ([]ExerciseSummaryEntry, error)
}

type CreateWorkoutRequest struct {
	Day string `json:"day"`
}

type Handler struct {
	repo       workoutsRepo
	aggregator *Aggregator
	metrics    *metrics.Manager
}

func NewHandler(repo workoutsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:       repo,
		aggregator: NewAggregator(repo),
		metrics:    metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/workouts", handler.HandleLatest).Methods("GET", "OPTIONS").Name("latest-workout")
	r.HandleFunc("/api/workouts", handler.HandleCreate).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/api/workouts/range/{fromDate}", handler.HandleWeeklySummary).Methods("GET", "OPTIONS").Name("weekly-summary")
	r.HandleFunc("/api/workouts/{workoutDate}/{operation}/{workoutId}", handler.HandleAdjacent).Methods("GET", "OPTIONS").Name("adjacent-workout")
	r.HandleFunc("/api/workouts/{workoutDate}/{operation}", handler.HandleAdjacent).Methods("GET", "OPTIONS").Name("adjacent-workout-no-id")
	r.HandleFunc("/api/workouts/{id}", handler.HandleAppendExercise).Methods("PUT", "OPTIONS").Name("append-exercise")
	r.HandleFunc("/api/workouts/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
}

// HandleLatest returns a JSON array with the most recently created workout,
// or an empty array when no workouts exist.
func (handler *Handler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.latest")
	defer span.End()

	workout, err := handler.repo.Latest(ctx)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			pkg.WriteJSONResponseOK(w, "[]")
			return
		}
		log.Errorf("failed to get latest workout: %s", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	workoutJson, err := json.Marshal([]Workout{*workout})
	if err != nil {
		log.Errorf("failed to marshal latest workout: %s", err)
		http.Error(w, "failed to marshal latest workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, workoutJson)
}

// HandleCreate starts a new blank workout. The day is optional in the payload
// and defaults to now.
func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	day := time.Now()

	var createReq CreateWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil && !errors.Is(err, io.EOF) {
		log.Tracef("new workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}
	if createReq.Day != "" {
		parsedDay, err := parseISODate(createReq.Day)
		if err != nil {
			pkg.WriteResponse(w, pkg.ContentType.JSON,
				fmt.Sprintf(`{"error": %q}`, "invalid day"),
				http.StatusUnprocessableEntity,
			)
			return
		}
		day = parsedDay
	}

	workout, err := handler.repo.Create(ctx, day)
	if err != nil {
		log.Errorf("failed to create workout for day [%s]: %s", day, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWorkoutsCreated.Inc()

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("failed to marshal created workout: %s", err)
		http.Error(w, "failed to marshal created workout", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout created: %d [%s]", workout.ID, workout.Day)
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, workoutJson)
}

// HandleAppendExercise validates the exercise payload and pushes it to the
// identified workout. A rejected exercise leaves the workout unchanged.
func (handler *Handler) HandleAppendExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.appendExercise")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var payload ExercisePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Tracef("append exercise, unmarshal json params: %s", err)
		http.Error(w, "append exercise failed", http.StatusBadRequest)
		return
	}

	exercise, err := ValidateExercise(payload)
	if err != nil {
		var validationErr *ValidationError
		switch {
		case errors.Is(err, ErrUnsupportedExerciseType):
			http.Error(w, "Server does not support this exercise type!", http.StatusNotImplemented)
		case errors.As(err, &validationErr):
			pkg.WriteResponse(w, pkg.ContentType.JSON,
				fmt.Sprintf(`{"error": %q}`, validationErr.Error()),
				http.StatusUnprocessableEntity,
			)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	updateResult, err := handler.repo.AppendExercise(ctx, id, exercise)
	if err != nil {
		log.Errorf("failed to append exercise [%s] to workout %d: %s", exercise.Name, id, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if updateResult.ModifiedCount > 0 {
		handler.metrics.CounterExercisesAdded.Inc()
	}

	updateResultJson, err := json.Marshal(updateResult)
	if err != nil {
		log.Errorf("failed to marshal update result: %s", err)
		http.Error(w, "failed to marshal update result", http.StatusInternalServerError)
		return
	}

	log.Debugf("exercise [%s] appended to workout %d: %s", exercise.Name, id, updateResultJson)
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, updateResultJson)
}

// HandleDelete removes a workout. A missing id is not an error, the result
// simply reports zero deleted records.
func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	deleteResult, err := handler.repo.Delete(ctx, id)
	if err != nil {
		log.Errorf("failed to delete workout %d: %s", id, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if deleteResult.DeletedCount > 0 {
		handler.metrics.CounterWorkoutsDeleted.Inc()
	}

	deleteResultJson, err := json.Marshal(deleteResult)
	if err != nil {
		log.Errorf("failed to marshal delete result: %s", err)
		http.Error(w, "failed to marshal delete result", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, deleteResultJson)
}

// HandleWeeklySummary returns the weekday and exercise summaries for the ISO
// week containing the given from date.
func (handler *Handler) HandleWeeklySummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.weeklySummary")
	defer span.End()

	vars := mux.Vars(r)
	fromDate, err := parseISODate(vars["fromDate"])
	if err != nil {
		http.Error(w, "error, invalid from date", http.StatusBadRequest)
		return
	}

	summary, err := handler.aggregator.WeeklySummary(ctx, fromDate)
	if err != nil {
		log.Errorf("failed to get weekly summary for [%s]: %s", fromDate, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("failed to marshal weekly summary: %s", err)
		http.Error(w, "failed to marshal weekly summary", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, summaryJson)
}

// HandleAdjacent returns a JSON array with the workout immediately before or
// after the given date, or an empty array when no adjacent workout exists.
func (handler *Handler) HandleAdjacent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.adjacent")
	defer span.End()

	vars := mux.Vars(r)
	workoutDate, err := parseISODate(vars["workoutDate"])
	if err != nil {
		http.Error(w, "error, invalid workout date", http.StatusBadRequest)
		return
	}

	var currentID int64
	if idStr := vars["workoutId"]; idStr != "" {
		currentID, err = strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "error, id NaN", http.StatusBadRequest)
			return
		}
	}

	var workout *Workout
	switch strings.ToUpper(vars["operation"]) {
	case operationPrevious:
		workout, err = handler.repo.AdjacentBefore(ctx, workoutDate, currentID)
	case operationNext:
		workout, err = handler.repo.AdjacentAfter(ctx, workoutDate, currentID)
	default:
		http.Error(w, "Server does not support this operation!", http.StatusNotImplemented)
		return
	}

	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			pkg.WriteJSONResponseOK(w, "[]")
			return
		}
		log.Errorf("failed to get adjacent workout for [%s]: %s", workoutDate, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	workoutJson, err := json.Marshal([]Workout{*workout})
	if err != nil {
		log.Errorf("failed to marshal adjacent workout: %s", err)
		http.Error(w, "failed to marshal adjacent workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, workoutJson)
}

// parseISODate accepts full ISO-8601 date-time strings as well as plain dates.
func parseISODate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
