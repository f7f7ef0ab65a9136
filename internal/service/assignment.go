package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"coursework_service/internal/domain"
	"coursework_service/internal/errdefs"
	"coursework_service/pkg/ctxdata"
	"coursework_service/pkg/logger"
)

const TopicAssignmentCreated = "assignment-created"

type AssignmentServiceInterface interface {
	Assign(ctx context.Context, workID, studentID uuid.UUID) (*domain.Assignment, error)
	Deliver(ctx context.Context, assignmentID uuid.UUID, submission DeliveryInput) (*domain.Assignment, error)
	GetAssignment(ctx context.Context, id uuid.UUID) (*domain.Assignment, error)
	GetDelivery(ctx context.Context, assignmentID uuid.UUID) (*domain.Delivery, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.Assignment, error)
	ListByWork(ctx context.Context, workID uuid.UUID) ([]*domain.Assignment, error)
}

// DeliveryInput is the student's submission content. Both fields are
// optional; an empty delivery still counts as delivered.
type DeliveryInput struct {
	Text        *string
	ResourceURL *string
}

type assignmentService struct {
	assignmentRepo AssignmentRepository
	workRepo       WorkRepository
	studentRepo    StudentRepository
	spaceRepo      SpaceRepository
	deliveryRepo   DeliveryRepository
	notifier       Notifier
	log            *logger.Logger
}

func NewAssignmentService(
	assignmentRepo AssignmentRepository,
	workRepo WorkRepository,
	studentRepo StudentRepository,
	spaceRepo SpaceRepository,
	deliveryRepo DeliveryRepository,
	notifier Notifier,
	log *logger.Logger,
) AssignmentServiceInterface {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		workRepo:       workRepo,
		studentRepo:    studentRepo,
		spaceRepo:      spaceRepo,
		deliveryRepo:   deliveryRepo,
		notifier:       notifier,
		log:            log,
	}
}

// Assign creates the one and only assignment of a work to a student. The
// caller must be the instructor owning the work, the work must be
// individually assignable, and the student must be enrolled in the work's
// space. Duplicate detection is left to the storage layer's unique index so
// concurrent calls cannot both succeed.
func (s *assignmentService) Assign(ctx context.Context, workID, studentID uuid.UUID) (*domain.Assignment, error) {
	ident, ok := ctxdata.GetIdentity(ctx)
	if !ok || !ident.IsInstructor() {
		return nil, errdefs.ErrPermissionDenied
	}

	work, err := s.workRepo.GetByID(ctx, workID)
	if err != nil {
		return nil, err
	}
	if work.InstructorID != ident.ID {
		return nil, errdefs.ErrNotOwner
	}
	if work.Kind != domain.WorkKindIndividual {
		return nil, errdefs.ErrNotIndividual
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.spaceRepo.IsEnrolled(ctx, work.SpaceID, student.ID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, errdefs.ErrNotEnrolled
	}

	assignment := &domain.Assignment{
		WorkID:       work.ID,
		StudentID:    student.ID,
		InstructorID: ident.ID,
	}
	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}

	s.notifyAssigned(ctx, assignment, work)

	return assignment, nil
}

// notifyAssigned is fire-and-forget: a broker failure is logged and dropped,
// the assignment stays created.
func (s *assignmentService) notifyAssigned(ctx context.Context, assignment *domain.Assignment, work *domain.Work) {
	message := map[string]interface{}{
		"assignment_id": assignment.ID,
		"work_id":       work.ID,
		"student_id":    assignment.StudentID,
		"title":         work.Title,
		"deadline":      work.Deadline,
	}

	if err := s.notifier.Send(ctx, TopicAssignmentCreated, message); err != nil {
		s.log.Warn("failed to send assignment notification",
			zap.String("assignment_id", assignment.ID.String()),
			zap.Error(err),
		)
	}
}

// Deliver records the student's submission and moves the assignment to
// DELIVERED. The status flip and the delivery insert are one transaction in
// the repository.
func (s *assignmentService) Deliver(ctx context.Context, assignmentID uuid.UUID, submission DeliveryInput) (*domain.Assignment, error) {
	ident, ok := ctxdata.GetIdentity(ctx)
	if !ok || !ident.IsStudent() {
		return nil, errdefs.ErrPermissionDenied
	}

	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment.StudentID != ident.ID {
		return nil, errdefs.ErrNotOwner
	}

	work, err := s.workRepo.GetByID(ctx, assignment.WorkID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if now.After(work.Deadline) {
		return nil, errdefs.ErrDeadlineExceeded
	}

	delivery := &domain.Delivery{
		Text:        submission.Text,
		ResourceURL: submission.ResourceURL,
	}
	if err := s.assignmentRepo.MarkDelivered(ctx, assignment.ID, now, delivery); err != nil {
		return nil, err
	}

	assignment.Status = domain.AssignmentStatusDelivered
	assignment.DeliveredAt = &now
	return assignment, nil
}

func (s *assignmentService) GetAssignment(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeRead(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *assignmentService) GetDelivery(ctx context.Context, assignmentID uuid.UUID) (*domain.Delivery, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeRead(ctx, assignment); err != nil {
		return nil, err
	}
	return s.deliveryRepo.GetByAssignment(ctx, assignmentID)
}

func (s *assignmentService) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.Assignment, error) {
	ident, ok := ctxdata.GetIdentity(ctx)
	if !ok {
		return nil, errdefs.ErrPermissionDenied
	}
	if ident.IsStudent() && ident.ID != studentID {
		return nil, errdefs.ErrPermissionDenied
	}
	return s.assignmentRepo.ListByStudent(ctx, studentID)
}

func (s *assignmentService) ListByWork(ctx context.Context, workID uuid.UUID) ([]*domain.Assignment, error) {
	ident, ok := ctxdata.GetIdentity(ctx)
	if !ok || ident.IsStudent() {
		return nil, errdefs.ErrPermissionDenied
	}
	return s.assignmentRepo.ListByWork(ctx, workID)
}

// authorizeRead lets the owning student and any staff role see an
// assignment; other students are rejected.
func (s *assignmentService) authorizeRead(ctx context.Context, assignment *domain.Assignment) error {
	ident, ok := ctxdata.GetIdentity(ctx)
	if !ok {
		return errdefs.ErrPermissionDenied
	}
	if ident.IsStudent() && assignment.StudentID != ident.ID {
		return errdefs.ErrPermissionDenied
	}
	return nil
}
