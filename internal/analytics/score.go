package analytics

import (
	"time"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
)

// ScoreWeights controls how the sub-signals blend into the headline score.
// The defaults are tunable constants, not inferred behavior: completion
// dominates, on-time delivery and throughput follow, structural quality
// carries the rest. Every overdue open task costs OverduePenaltyPoints.
type ScoreWeights struct {
	Completion           float64
	OnTime               float64
	Velocity             float64
	Quality              float64
	OverduePenaltyPoints float64
}

func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Completion:           0.40,
		OnTime:               0.25,
		Velocity:             0.20,
		Quality:              0.15,
		OverduePenaltyPoints: 5.0,
	}
}

// streakLookbackDays caps how far back the focus-task streak walk goes.
const streakLookbackDays = 90

type ScoreInput struct {
	// Tasks is the user's full task set. Ownership filtering happens at
	// the caller; nothing here is double-counted.
	Tasks []domain.Task

	// History holds prior daily snapshots ordered ascending by date.
	// May be empty: trend defaults to stable, vsLastWeek to 0.
	History []domain.ScoreSnapshot

	// Sub-scores contributed by the velocity and bottleneck calculators.
	VelocitySub float64
	QualitySub  float64

	Now     time.Time
	Weights ScoreWeights
}

// ComputeExecutionScore reduces a task set into a 0-100 productivity score
// with trend, breakdown and streak. Pure: same input, same output.
func ComputeExecutionScore(input ScoreInput) contract.ExecutionScore {
	w := input.Weights
	if w == (ScoreWeights{}) {
		w = DefaultScoreWeights()
	}

	var (
		total            int
		done             int
		completedWithDue int
		onTime           int
		overdueOpen      int
	)
	for i := range input.Tasks {
		t := &input.Tasks[i]
		total++
		if t.Status == domain.TaskDone {
			done++
			if t.DueDate != nil {
				completedWithDue++
				if t.CompletedOnTime() {
					onTime++
				}
			}
		} else if t.IsOverdue(input.Now) {
			overdueOpen++
		}
	}

	completionRate := float64(done) / float64(max(total, 1)) * 100
	onTimeRate := float64(onTime) / float64(max(completedWithDue, 1)) * 100

	var current float64
	if total > 0 {
		// Tasks without due dates are excluded from the on-time
		// denominator; when nothing completed carried a due date the
		// on-time share falls back to the completion rate so those
		// users are not penalized for undated work.
		onTimeComponent := onTimeRate
		if completedWithDue == 0 {
			onTimeComponent = completionRate
		}

		base := w.Completion*completionRate +
			w.OnTime*onTimeComponent +
			w.Velocity*input.VelocitySub +
			w.Quality*input.QualitySub
		current = clampScore(base - float64(overdueOpen)*w.OverduePenaltyPoints)
	}

	score := contract.ExecutionScore{
		Current: current,
		Trend:   domain.TrendStable,
		Breakdown: contract.ScoreBreakdown{
			CompletionRate: completionRate,
			OnTimeRate:     onTimeRate,
			VelocityScore:  input.VelocitySub,
			QualityScore:   input.QualitySub,
		},
	}

	if last := latestSnapshot(input.History); last != nil {
		switch {
		case current > last.Current:
			score.Trend = domain.TrendUp
		case current < last.Current:
			score.Trend = domain.TrendDown
		}
	}
	score.VsLastWeek = vsLastWeek(current, input.History, input.Now)
	score.Streak = computeStreak(input.Tasks, input.History, input.Now)

	return score
}

func latestSnapshot(history []domain.ScoreSnapshot) *domain.ScoreSnapshot {
	if len(history) == 0 {
		return nil
	}
	return &history[len(history)-1]
}

// vsLastWeek returns the signed percent difference against the snapshot
// recorded exactly 7 days before now, or 0 when no such snapshot exists.
func vsLastWeek(current float64, history []domain.ScoreSnapshot, now time.Time) float64 {
	target := domain.DateOf(now).AddDate(0, 0, -7)
	for i := range history {
		if !domain.DateOf(history[i].Date).Equal(target) {
			continue
		}
		prior := history[i].Current
		if prior == 0 {
			if current > 0 {
				return 100
			}
			return 0
		}
		return (current - prior) / prior * 100
	}
	return 0
}

// computeStreak walks calendar days backward from now. A day whose focus
// tasks are all done extends the streak, a day with an unfinished focus
// task resets it, and a day with no focus tasks is skipped so weekends do
// not break a run. The walk stops after streakLookbackDays.
func computeStreak(tasks []domain.Task, history []domain.ScoreSnapshot, now time.Time) contract.Streak {
	type dayFocus struct {
		total int
		done  int
	}
	byDay := make(map[time.Time]*dayFocus)
	for i := range tasks {
		t := &tasks[i]
		if t.FocusDate == nil {
			continue
		}
		day := domain.DateOf(*t.FocusDate)
		f := byDay[day]
		if f == nil {
			f = &dayFocus{}
			byDay[day] = f
		}
		f.total++
		if t.Status == domain.TaskDone {
			f.done++
		}
	}

	streak := 0
	day := domain.DateOf(now)
	for i := 0; i < streakLookbackDays; i++ {
		f := byDay[day]
		if f != nil {
			if f.done < f.total {
				break
			}
			streak++
		}
		day = day.AddDate(0, 0, -1)
	}

	best := streak
	for i := range history {
		if history[i].StreakBest > best {
			best = history[i].StreakBest
		}
	}
	return contract.Streak{Current: streak, Best: best}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
