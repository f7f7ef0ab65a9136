package domain

import (
	"time"

	"github.com/google/uuid"
)

type Work struct {
	ID           uuid.UUID
	SpaceID      uuid.UUID
	InstructorID uuid.UUID
	Title        string
	Instructions *string
	Kind         WorkKind
	Deadline     time.Time
	Scale        float64
	CreatedAt    time.Time
}
