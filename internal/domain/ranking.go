package domain

import "github.com/google/uuid"

// EvaluationFact is the flat row the ranking engine aggregates over:
// one evaluation score together with the scale of the evaluated work.
type EvaluationFact struct {
	StudentID uuid.UUID
	CohortID  uuid.UUID
	Score     float64
	Scale     float64
}

// StudentRanking is one line of a cohort's student report. Averages are on
// a 20-point basis regardless of the individual work scales.
type StudentRanking struct {
	Rank            int
	StudentID       uuid.UUID
	FirstName       string
	LastName        string
	Average         float64
	TotalPoints     float64
	TotalScale      float64
	EvaluationCount int
}

type CohortRanking struct {
	Rank            int
	CohortID        uuid.UUID
	Code            string
	Label           string
	Year            string
	StudentCount    int
	EvaluationCount int
	Average         float64
	BestAverage     float64
	WorstAverage    float64
	PassRate        float64
}
