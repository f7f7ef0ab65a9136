package domain

import (
	"time"

	"github.com/google/uuid"
)

// Assignment links a Work to a Student. At most one assignment ever exists
// per (work, student) pair; the status only moves forward.
type Assignment struct {
	ID           uuid.UUID
	WorkID       uuid.UUID
	StudentID    uuid.UUID
	InstructorID uuid.UUID
	Status       AssignmentStatus
	DeliveredAt  *time.Time
	CreatedAt    time.Time
}

type Delivery struct {
	ID           uuid.UUID
	AssignmentID uuid.UUID
	Text         *string
	ResourceURL  *string
	CreatedAt    time.Time
}

type Evaluation struct {
	ID           uuid.UUID
	AssignmentID uuid.UUID
	Score        float64
	Comment      *string
	InstructorID uuid.UUID
	CreatedAt    time.Time
}

// DeadlineReminder is the payload row for the reminder worker: an assignment
// still waiting for a delivery whose work deadline is close.
type DeadlineReminder struct {
	AssignmentID uuid.UUID
	WorkID       uuid.UUID
	StudentID    uuid.UUID
	WorkTitle    string
	Deadline     time.Time
}
