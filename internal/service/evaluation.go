package service

import (
	"context"

	"github.com/google/uuid"

	"coursework_service/internal/domain"
	"coursework_service/internal/errdefs"
	"coursework_service/pkg/ctxdata"
)

type EvaluationServiceInterface interface {
	Evaluate(ctx context.Context, assignmentID uuid.UUID, score float64, comment *string) (*domain.Evaluation, error)
	GetByAssignment(ctx context.Context, assignmentID uuid.UUID) (*domain.Evaluation, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.Evaluation, error)
}

type evaluationService struct {
	assignmentRepo AssignmentRepository
	evaluationRepo EvaluationRepository
	workRepo       WorkRepository
}

func NewEvaluationService(
	assignmentRepo AssignmentRepository,
	evaluationRepo EvaluationRepository,
	workRepo WorkRepository,
) EvaluationServiceInterface {
	return &evaluationService{
		assignmentRepo: assignmentRepo,
		evaluationRepo: evaluationRepo,
		workRepo:       workRepo,
	}
}

// Evaluate records the score for a delivered assignment and finalizes it.
// The status checks here give precise errors on the common paths; the
// repository's compare-and-transition plus the unique index on
// evaluations.assignment_id are what actually guarantee a single evaluation
// under concurrent calls.
func (s *evaluationService) Evaluate(ctx context.Context, assignmentID uuid.UUID, score float64, comment *string) (*domain.Evaluation, error) {
	ident, ok := ctxdata.GetIdentity(ctx)
	if !ok || !ident.IsInstructor() {
		return nil, errdefs.ErrPermissionDenied
	}

	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	switch assignment.Status {
	case domain.AssignmentStatusAssigned:
		return nil, errdefs.ErrNotDelivered
	case domain.AssignmentStatusEvaluated:
		return nil, errdefs.ErrAlreadyEvaluated
	}

	work, err := s.workRepo.GetByID(ctx, assignment.WorkID)
	if err != nil {
		return nil, err
	}
	if score < 0 || score > work.Scale {
		return nil, errdefs.ErrScoreOutOfRange
	}

	evaluation := &domain.Evaluation{
		Score:        score,
		Comment:      comment,
		InstructorID: ident.ID,
	}
	if err := s.assignmentRepo.MarkEvaluated(ctx, assignment.ID, evaluation); err != nil {
		return nil, err
	}

	return evaluation, nil
}

func (s *evaluationService) GetByAssignment(ctx context.Context, assignmentID uuid.UUID) (*domain.Evaluation, error) {
	ident, ok := ctxdata.GetIdentity(ctx)
	if !ok {
		return nil, errdefs.ErrPermissionDenied
	}

	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if ident.IsStudent() && assignment.StudentID != ident.ID {
		return nil, errdefs.ErrPermissionDenied
	}

	return s.evaluationRepo.GetByAssignment(ctx, assignmentID)
}

func (s *evaluationService) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.Evaluation, error) {
	ident, ok := ctxdata.GetIdentity(ctx)
	if !ok {
		return nil, errdefs.ErrPermissionDenied
	}
	if ident.IsStudent() && ident.ID != studentID {
		return nil, errdefs.ErrPermissionDenied
	}
	return s.evaluationRepo.ListByStudent(ctx, studentID)
}
