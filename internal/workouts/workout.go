package workouts

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	ExerciseTypeCardio     = "cardio"
	ExerciseTypeResistance = "resistance"
)

// ErrUnsupportedExerciseType marks an exercise type outside {cardio, resistance}.
// Unlike a validation error, it signals a capability the server does not implement.
var ErrUnsupportedExerciseType = errors.New("server does not support this exercise type")

// Exercise is embedded within a Workout and has no identity of its own.
type Exercise struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Duration int    `json:"duration"`
	Distance int    `json:"distance"`
	Weight   int    `json:"weight"`
	Reps     int    `json:"reps"`
	Sets     int    `json:"sets"`
}

type Workout struct {
	ID        int64      `json:"id"`
	Day       time.Time  `json:"day"`
	Exercises []Exercise `json:"exercises"`
}

// TotalDuration sums the duration of all exercises. It is derived on every
// serialization and never stored.
func (w *Workout) TotalDuration() int {
	total := 0
	for _, ex := range w.Exercises {
		total += ex.Duration
	}
	return total
}

func (w Workout) MarshalJSON() ([]byte, error) {
	type workoutAlias Workout
	return json.Marshal(struct {
		workoutAlias
		TotalDuration int `json:"totalDuration"`
	}{
		workoutAlias:  workoutAlias(w),
		TotalDuration: w.TotalDuration(),
	})
}

type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{message: fmt.Sprintf(format, args...)}
}

// ExercisePayload is the wire shape of an exercise before validation.
// Numeric fields are pointers so that absent and zero can be told apart,
// and floats so that non-integer values are caught instead of silently truncated.
type ExercisePayload struct {
	Type     string   `json:"type"`
	Name     string   `json:"name"`
	Duration *float64 `json:"duration"`
	Distance *float64 `json:"distance"`
	Weight   *float64 `json:"weight"`
	Reps     *float64 `json:"reps"`
	Sets     *float64 `json:"sets"`
}

type numericRule struct {
	name  string
	value *float64
	max   int
}

// ValidateExercise checks an exercise payload against the field rules and
// returns the normalized exercise to be persisted. Only the fields meaningful
// for the exercise type are kept, the rest stay zero.
func ValidateExercise(payload ExercisePayload) (Exercise, error) {
	if payload.Type != ExerciseTypeCardio && payload.Type != ExerciseTypeResistance {
		return Exercise{}, ErrUnsupportedExerciseType
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return Exercise{}, newValidationError("exercise name is required")
	}

	if payload.Duration == nil {
		return Exercise{}, newValidationError("exercise duration is required")
	}

	rules := []numericRule{
		{name: "duration", value: payload.Duration, max: 1000},
	}
	if payload.Type == ExerciseTypeCardio {
		rules = append(rules,
			numericRule{name: "distance", value: payload.Distance, max: 1000},
		)
	} else {
		rules = append(rules,
			numericRule{name: "weight", value: payload.Weight, max: 2000},
			numericRule{name: "reps", value: payload.Reps, max: 1000},
			numericRule{name: "sets", value: payload.Sets, max: 1000},
		)
	}

	for _, rule := range rules {
		if rule.value == nil {
			continue
		}
		v := *rule.value
		if v != math.Trunc(v) {
			return Exercise{}, newValidationError("%v is not an integer value for %s", v, rule.name)
		}
		if v < 0 || v > float64(rule.max) {
			return Exercise{}, newValidationError("%s must be between 0 and %d", rule.name, rule.max)
		}
	}

	exercise := Exercise{
		Type:     payload.Type,
		Name:     name,
		Duration: int(*payload.Duration),
	}
	if payload.Type == ExerciseTypeCardio {
		exercise.Distance = intValue(payload.Distance)
	} else {
		exercise.Weight = intValue(payload.Weight)
		exercise.Reps = intValue(payload.Reps)
		exercise.Sets = intValue(payload.Sets)
	}

	return exercise, nil
}

func intValue(v *float64) int {
	if v == nil {
		return 0
	}
	return int(*v)
}
