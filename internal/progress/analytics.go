// Package progress aggregates practice-session history into the dashboard
// metrics: mastery rate, session counts, recent activity, and the daily
// practice streak.
package progress

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// RecentSessionCount is how many sessions the recency list carries.
const RecentSessionCount = 5

// Session is one completed practice run. Sessions are immutable after
// creation and arrive ordered by SessionDate ascending.
type Session struct {
	ExamID          uuid.UUID `json:"exam_id"`
	ExamName        string    `json:"exam_name"`
	SessionDate     time.Time `json:"session_date"`
	TotalQuestions  int       `json:"total_questions"`
	CorrectCount    int       `json:"correct_count"`
	IncorrectCount  int       `json:"incorrect_count"`
	ScorePercentage float64   `json:"score_percentage"`
}

// Snapshot is the derived dashboard summary. It is recomputed on every
// invocation and never stored.
type Snapshot struct {
	MasteryRate    int       `json:"mastery_rate"`
	TotalSessions  int       `json:"total_sessions"`
	RecentSessions []Session `json:"recent_sessions"`
	Streak         int       `json:"streak"`
}

// Analytics computes progress snapshots. The clock is injectable because the
// streak depends on "today".
type Analytics struct {
	now func() time.Time
}

// New returns an Analytics using the wall clock.
func New() *Analytics {
	return &Analytics{now: time.Now}
}

// NewWithClock returns an Analytics with a fixed clock, for tests.
func NewWithClock(now func() time.Time) *Analytics {
	return &Analytics{now: now}
}

// Summarize derives a snapshot from the session history plus the cumulative
// mastered/attempted counters tracked alongside it. Sessions must be ordered
// by date ascending.
func (a *Analytics) Summarize(sessions []Session, questionsMastered, questionsAttempted int) Snapshot {
	return Snapshot{
		MasteryRate:    MasteryRate(questionsMastered, questionsAttempted),
		TotalSessions:  len(sessions),
		RecentSessions: recentSessions(sessions),
		Streak:         a.streak(sessions),
	}
}

// MasteryRate is the rounded percentage of attempted questions answered
// correctly. A zero denominator yields 0, not an error.
func MasteryRate(mastered, attempted int) int {
	if attempted <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(mastered) / float64(attempted)))
}

// recentSessions returns the last RecentSessionCount sessions, most recent
// first.
func recentSessions(sessions []Session) []Session {
	n := len(sessions)
	if n > RecentSessionCount {
		n = RecentSessionCount
	}
	recent := make([]Session, 0, n)
	for i := len(sessions) - 1; i >= len(sessions)-n; i-- {
		recent = append(recent, sessions[i])
	}
	return recent
}

// streak counts consecutive calendar days with at least one session, ending
// today or yesterday. Sessions on the same calendar day are collapsed to one
// entry before the walk, so practicing twice in a day neither inflates nor
// breaks the chain.
func (a *Analytics) streak(sessions []Session) int {
	if len(sessions) == 0 {
		return 0
	}

	days := uniqueDays(sessions)

	today := dayOf(a.now())
	last := days[len(days)-1]
	if !last.Equal(today) && !last.Equal(today.AddDate(0, 0, -1)) {
		return 0
	}

	streak := 1
	for i := len(days) - 2; i >= 0; i-- {
		if !days[i].Equal(days[i+1].AddDate(0, 0, -1)) {
			break
		}
		streak++
	}
	return streak
}

// uniqueDays collapses the ascending session sequence to its distinct
// calendar days.
func uniqueDays(sessions []Session) []time.Time {
	days := make([]time.Time, 0, len(sessions))
	for _, s := range sessions {
		d := dayOf(s.SessionDate)
		if len(days) > 0 && days[len(days)-1].Equal(d) {
			continue
		}
		days = append(days, d)
	}
	return days
}

// dayOf normalizes an instant to its calendar day in the instant's own
// location, anchored at UTC midnight so days compare with Equal.
func dayOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
