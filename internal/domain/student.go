package domain

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	CohortID  uuid.UUID
	CreatedAt time.Time
}

// Cohort groups students of one academic year.
type Cohort struct {
	ID        uuid.UUID
	Code      string
	Label     string
	Year      string
	CreatedAt time.Time
}

// PedagogicalSpace is the course context that owns works and enrollments.
// One cohort, one subject, one responsible instructor.
type PedagogicalSpace struct {
	ID           uuid.UUID
	CohortID     uuid.UUID
	Subject      string
	InstructorID uuid.UUID
	CreatedAt    time.Time
}
