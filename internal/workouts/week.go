package workouts

import (
	"context"
	"time"

	"github.com/dkrstic/fitlog/internal/telemetry/tracing"
)

// WeekdaySummaryEntry is one row of the weekly by-weekday summary.
// Weekday codes run 1=Sunday .. 7=Saturday. Nil duration/weight mean
// "no data for that day", as opposed to zero, which means "summed to zero".
type WeekdaySummaryEntry struct {
	WeekDay  int  `json:"weekDay"`
	Duration *int `json:"duration"`
	Weight   *int `json:"weight"`
}

type ExerciseSummaryEntry struct {
	ExerciseName string `json:"exerciseName"`
	Duration     int    `json:"duration"`
	Weight       int    `json:"weight"`
}

type WeeklySummary struct {
	WeekdaySummary  []WeekdaySummaryEntry  `json:"weekdaySummary"`
	ExerciseSummary []ExerciseSummaryEntry `json:"exerciseSummary"`
	WeekStartDate   time.Time              `json:"weekStartDate"`
	WeekEndDate     time.Time              `json:"weekEndDate"`
}

// WeekWindow returns the ISO week window containing fromDate:
// the Monday of that week at start of day through the following Sunday at
// end of day (23:59:59.999). The result depends only on the ISO week, so any
// two dates within the same week produce the same window.
func WeekWindow(fromDate time.Time) (start, end time.Time) {
	day := time.Date(fromDate.Year(), fromDate.Month(), fromDate.Day(), 0, 0, 0, 0, fromDate.Location())
	// time.Weekday has Sunday = 0, ISO weeks start on Monday
	daysSinceMonday := (int(day.Weekday()) + 6) % 7
	start = day.AddDate(0, 0, -daysSinceMonday)
	end = start.AddDate(0, 0, 7).Add(-time.Millisecond)
	return start, end
}

// FillMissingWeekdays pads a by-weekday summary so that all 7 weekdays are
// present in ascending order. Days absent from the input get null values.
func FillMissingWeekdays(entries []WeekdaySummaryEntry) []WeekdaySummaryEntry {
	byWeekday := make(map[int]WeekdaySummaryEntry, len(entries))
	for _, entry := range entries {
		byWeekday[entry.WeekDay] = entry
	}

	filled := make([]WeekdaySummaryEntry, 0, 7)
	for weekDay := 1; weekDay <= 7; weekDay++ {
		if entry, ok := byWeekday[weekDay]; ok {
			filled = append(filled, entry)
		} else {
			filled = append(filled, WeekdaySummaryEntry{WeekDay: weekDay})
		}
	}
	return filled
}

type summaryRepo interface {
	SummarizeByWeekday(ctx context.Context, from, to time.Time) ([]WeekdaySummaryEntry, error)
	SummarizeByExerciseName(ctx context.Context, from, to time.Time) ([]ExerciseSummaryEntry, error)
}

// Aggregator produces the weekly summaries over the workouts repo.
type Aggregator struct {
	repo summaryRepo
}

func NewAggregator(repo summaryRepo) *Aggregator {
	return &Aggregator{
		repo: repo,
	}
}

// WeeklySummary returns both week summaries (by weekday and by exercise name)
// for the ISO week containing fromDate, as one atomic result.
func (a *Aggregator) WeeklySummary(ctx context.Context, fromDate time.Time) (_ *WeeklySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregator.workouts.weeklySummary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	weekStart, weekEnd := WeekWindow(fromDate)

	weekdaySummary, err := a.repo.SummarizeByWeekday(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	exerciseSummary, err := a.repo.SummarizeByExerciseName(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	if exerciseSummary == nil {
		exerciseSummary = []ExerciseSummaryEntry{}
	}

	return &WeeklySummary{
		WeekdaySummary:  FillMissingWeekdays(weekdaySummary),
		ExerciseSummary: exerciseSummary,
		WeekStartDate:   weekStart,
		WeekEndDate:     weekEnd,
	}, nil
}
