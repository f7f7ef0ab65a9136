package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"coursework_service/internal/domain"
)

// Repository boundaries consumed by the services. The storage layer must
// provide two guarantees the core relies on: uniqueness of the
// (work, student) pair on Create, and atomic compare-and-transition for
// MarkDelivered/MarkEvaluated.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.Assignment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Assignment, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.Assignment, error)
	ListByWork(ctx context.Context, workID uuid.UUID) ([]*domain.Assignment, error)
	MarkDelivered(ctx context.Context, id uuid.UUID, deliveredAt time.Time, delivery *domain.Delivery) error
	MarkEvaluated(ctx context.Context, id uuid.UUID, evaluation *domain.Evaluation) error
}

type WorkRepository interface {
	Create(ctx context.Context, work *domain.Work) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Work, error)
	ListBySpace(ctx context.Context, spaceID uuid.UUID) ([]*domain.Work, error)
}

type SpaceRepository interface {
	Create(ctx context.Context, space *domain.PedagogicalSpace) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PedagogicalSpace, error)
	Enroll(ctx context.Context, spaceID, studentID uuid.UUID) error
	IsEnrolled(ctx context.Context, spaceID, studentID uuid.UUID) (bool, error)
}

type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error)
	ListByCohort(ctx context.Context, cohortID uuid.UUID) ([]*domain.Student, error)
}

type CohortRepository interface {
	Create(ctx context.Context, cohort *domain.Cohort) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Cohort, error)
	List(ctx context.Context) ([]*domain.Cohort, error)
}

type DeliveryRepository interface {
	GetByAssignment(ctx context.Context, assignmentID uuid.UUID) (*domain.Delivery, error)
}

type EvaluationRepository interface {
	GetByAssignment(ctx context.Context, assignmentID uuid.UUID) (*domain.Evaluation, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.Evaluation, error)
	ListFactsByCohort(ctx context.Context, cohortID uuid.UUID) ([]domain.EvaluationFact, error)
	ListAllFacts(ctx context.Context) ([]domain.EvaluationFact, error)
}

// Notifier delivers fire-and-forget messages. Failures never propagate to
// the caller of a lifecycle operation.
type Notifier interface {
	Send(ctx context.Context, topic string, message interface{}) error
}
