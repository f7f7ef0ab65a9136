package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"coursework_service/internal/domain"
)

type AssignmentRepository struct {
	mock.Mock
}

func (m *AssignmentRepository) Create(ctx context.Context, assignment *domain.Assignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *AssignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Assignment), args.Error(1)
}

func (m *AssignmentRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.Assignment, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Assignment), args.Error(1)
}

func (m *AssignmentRepository) ListByWork(ctx context.Context, workID uuid.UUID) ([]*domain.Assignment, error) {
	args := m.Called(ctx, workID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Assignment), args.Error(1)
}

func (m *AssignmentRepository) MarkDelivered(ctx context.Context, id uuid.UUID, deliveredAt time.Time, delivery *domain.Delivery) error {
	args := m.Called(ctx, id, deliveredAt, delivery)
	return args.Error(0)
}

func (m *AssignmentRepository) MarkEvaluated(ctx context.Context, id uuid.UUID, evaluation *domain.Evaluation) error {
	args := m.Called(ctx, id, evaluation)
	return args.Error(0)
}

type WorkRepository struct {
	mock.Mock
}

func (m *WorkRepository) Create(ctx context.Context, work *domain.Work) error {
	args := m.Called(ctx, work)
	return args.Error(0)
}

func (m *WorkRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Work, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Work), args.Error(1)
}

func (m *WorkRepository) ListBySpace(ctx context.Context, spaceID uuid.UUID) ([]*domain.Work, error) {
	args := m.Called(ctx, spaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Work), args.Error(1)
}

type SpaceRepository struct {
	mock.Mock
}

func (m *SpaceRepository) Create(ctx context.Context, space *domain.PedagogicalSpace) error {
	args := m.Called(ctx, space)
	return args.Error(0)
}

func (m *SpaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PedagogicalSpace, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PedagogicalSpace), args.Error(1)
}

func (m *SpaceRepository) Enroll(ctx context.Context, spaceID, studentID uuid.UUID) error {
	args := m.Called(ctx, spaceID, studentID)
	return args.Error(0)
}

func (m *SpaceRepository) IsEnrolled(ctx context.Context, spaceID, studentID uuid.UUID) (bool, error) {
	args := m.Called(ctx, spaceID, studentID)
	return args.Bool(0), args.Error(1)
}

type StudentRepository struct {
	mock.Mock
}

func (m *StudentRepository) Create(ctx context.Context, student *domain.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *StudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *StudentRepository) ListByCohort(ctx context.Context, cohortID uuid.UUID) ([]*domain.Student, error) {
	args := m.Called(ctx, cohortID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Student), args.Error(1)
}

type CohortRepository struct {
	mock.Mock
}

func (m *CohortRepository) Create(ctx context.Context, cohort *domain.Cohort) error {
	args := m.Called(ctx, cohort)
	return args.Error(0)
}

func (m *CohortRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Cohort, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cohort), args.Error(1)
}

func (m *CohortRepository) List(ctx context.Context) ([]*domain.Cohort, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Cohort), args.Error(1)
}

type DeliveryRepository struct {
	mock.Mock
}

func (m *DeliveryRepository) GetByAssignment(ctx context.Context, assignmentID uuid.UUID) (*domain.Delivery, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Delivery), args.Error(1)
}

type EvaluationRepository struct {
	mock.Mock
}

func (m *EvaluationRepository) GetByAssignment(ctx context.Context, assignmentID uuid.UUID) (*domain.Evaluation, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Evaluation), args.Error(1)
}

func (m *EvaluationRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.Evaluation, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Evaluation), args.Error(1)
}

func (m *EvaluationRepository) ListFactsByCohort(ctx context.Context, cohortID uuid.UUID) ([]domain.EvaluationFact, error) {
	args := m.Called(ctx, cohortID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EvaluationFact), args.Error(1)
}

func (m *EvaluationRepository) ListAllFacts(ctx context.Context) ([]domain.EvaluationFact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EvaluationFact), args.Error(1)
}

type Notifier struct {
	mock.Mock
}

func (m *Notifier) Send(ctx context.Context, topic string, message interface{}) error {
	args := m.Called(ctx, topic, message)
	return args.Error(0)
}
