package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coursework_service/internal/domain"
	"coursework_service/internal/errdefs"
	"coursework_service/internal/service"
	"coursework_service/internal/service/mocks"
	"coursework_service/pkg/ctxdata"
	"coursework_service/pkg/logger"
)

type assignmentMocks struct {
	assignmentRepo *mocks.AssignmentRepository
	workRepo       *mocks.WorkRepository
	studentRepo    *mocks.StudentRepository
	spaceRepo      *mocks.SpaceRepository
	deliveryRepo   *mocks.DeliveryRepository
	notifier       *mocks.Notifier
}

func setupAssignmentService() (service.AssignmentServiceInterface, *assignmentMocks) {
	m := &assignmentMocks{
		assignmentRepo: new(mocks.AssignmentRepository),
		workRepo:       new(mocks.WorkRepository),
		studentRepo:    new(mocks.StudentRepository),
		spaceRepo:      new(mocks.SpaceRepository),
		deliveryRepo:   new(mocks.DeliveryRepository),
		notifier:       new(mocks.Notifier),
	}
	svc := service.NewAssignmentService(
		m.assignmentRepo,
		m.workRepo,
		m.studentRepo,
		m.spaceRepo,
		m.deliveryRepo,
		m.notifier,
		logger.New(),
	)
	return svc, m
}

func identityCtx(id uuid.UUID, role domain.Role) context.Context {
	return ctxdata.WithIdentity(context.Background(), domain.Identity{ID: id, Role: role})
}

func individualWork(instructorID uuid.UUID) *domain.Work {
	return &domain.Work{
		ID:           uuid.New(),
		SpaceID:      uuid.New(),
		InstructorID: instructorID,
		Title:        "Assignment 3: B-trees",
		Kind:         domain.WorkKindIndividual,
		Deadline:     time.Now().Add(48 * time.Hour),
		Scale:        20,
	}
}

func TestAssign(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, m := setupAssignmentService()

		instructorID := uuid.New()
		work := individualWork(instructorID)
		student := &domain.Student{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", CohortID: uuid.New()}

		m.workRepo.On("GetByID", mock.Anything, work.ID).Return(work, nil)
		m.studentRepo.On("GetByID", mock.Anything, student.ID).Return(student, nil)
		m.spaceRepo.On("IsEnrolled", mock.Anything, work.SpaceID, student.ID).Return(true, nil)
		m.assignmentRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Assignment")).Return(nil)
		m.notifier.On("Send", mock.Anything, service.TopicAssignmentCreated, mock.Anything).Return(nil)

		ctx := identityCtx(instructorID, domain.RoleInstructor)
		assignment, err := svc.Assign(ctx, work.ID, student.ID)
		require.NoError(t, err)
		assert.Equal(t, work.ID, assignment.WorkID)
		assert.Equal(t, student.ID, assignment.StudentID)
		assert.Equal(t, instructorID, assignment.InstructorID)
		m.assignmentRepo.AssertExpectations(t)
	})

	t.Run("Error_NotInstructor", func(t *testing.T) {
		svc, _ := setupAssignmentService()

		ctx := identityCtx(uuid.New(), domain.RoleStudent)
		_, err := svc.Assign(ctx, uuid.New(), uuid.New())
		assert.True(t, errors.Is(err, errdefs.ErrPermissionDenied))
	})

	t.Run("Error_NoIdentity", func(t *testing.T) {
		svc, _ := setupAssignmentService()

		_, err := svc.Assign(context.Background(), uuid.New(), uuid.New())
		assert.True(t, errors.Is(err, errdefs.ErrPermissionDenied))
	})

	t.Run("Error_NotOwner", func(t *testing.T) {
		svc, m := setupAssignmentService()

		work := individualWork(uuid.New())
		m.workRepo.On("GetByID", mock.Anything, work.ID).Return(work, nil)

		ctx := identityCtx(uuid.New(), domain.RoleInstructor)
		_, err := svc.Assign(ctx, work.ID, uuid.New())
		assert.True(t, errors.Is(err, errdefs.ErrNotOwner))
	})

	t.Run("Error_CollectiveWork", func(t *testing.T) {
		svc, m := setupAssignmentService()

		instructorID := uuid.New()
		work := individualWork(instructorID)
		work.Kind = domain.WorkKindCollective
		m.workRepo.On("GetByID", mock.Anything, work.ID).Return(work, nil)

		ctx := identityCtx(instructorID, domain.RoleInstructor)
		_, err := svc.Assign(ctx, work.ID, uuid.New())
		assert.True(t, errors.Is(err, errdefs.ErrNotIndividual))
	})

	t.Run("Error_StudentNotEnrolled", func(t *testing.T) {
		svc, m := setupAssignmentService()

		instructorID := uuid.New()
		work := individualWork(instructorID)
		student := &domain.Student{ID: uuid.New(), CohortID: uuid.New()}

		m.workRepo.On("GetByID", mock.Anything, work.ID).Return(work, nil)
		m.studentRepo.On("GetByID", mock.Anything, student.ID).Return(student, nil)
		m.spaceRepo.On("IsEnrolled", mock.Anything, work.SpaceID, student.ID).Return(false, nil)

		ctx := identityCtx(instructorID, domain.RoleInstructor)
		_, err := svc.Assign(ctx, work.ID, student.ID)
		assert.True(t, errors.Is(err, errdefs.ErrNotEnrolled))
	})

	t.Run("Error_StudentNotFound", func(t *testing.T) {
		svc, m := setupAssignmentService()

		instructorID := uuid.New()
		work := individualWork(instructorID)
		studentID := uuid.New()

		m.workRepo.On("GetByID", mock.Anything, work.ID).Return(work, nil)
		m.studentRepo.On("GetByID", mock.Anything, studentID).Return(nil, errdefs.ErrNotFound)

		ctx := identityCtx(instructorID, domain.RoleInstructor)
		_, err := svc.Assign(ctx, work.ID, studentID)
		assert.True(t, errors.Is(err, errdefs.ErrNotFound))
	})

	t.Run("Error_DuplicateAssignment", func(t *testing.T) {
		svc, m := setupAssignmentService()

		instructorID := uuid.New()
		work := individualWork(instructorID)
		student := &domain.Student{ID: uuid.New(), CohortID: uuid.New()}

		m.workRepo.On("GetByID", mock.Anything, work.ID).Return(work, nil)
		m.studentRepo.On("GetByID", mock.Anything, student.ID).Return(student, nil)
		m.spaceRepo.On("IsEnrolled", mock.Anything, work.SpaceID, student.ID).Return(true, nil)
		m.assignmentRepo.On("Create", mock.Anything, mock.Anything).Return(errdefs.ErrAlreadyExists)

		ctx := identityCtx(instructorID, domain.RoleInstructor)
		_, err := svc.Assign(ctx, work.ID, student.ID)
		assert.True(t, errors.Is(err, errdefs.ErrAlreadyExists))
	})

	t.Run("NotificationFailureDoesNotFailAssign", func(t *testing.T) {
		svc, m := setupAssignmentService()

		instructorID := uuid.New()
		work := individualWork(instructorID)
		student := &domain.Student{ID: uuid.New(), CohortID: uuid.New()}

		m.workRepo.On("GetByID", mock.Anything, work.ID).Return(work, nil)
		m.studentRepo.On("GetByID", mock.Anything, student.ID).Return(student, nil)
		m.spaceRepo.On("IsEnrolled", mock.Anything, work.SpaceID, student.ID).Return(true, nil)
		m.assignmentRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		m.notifier.On("Send", mock.Anything, service.TopicAssignmentCreated, mock.Anything).
			Return(errors.New("broker unavailable"))

		ctx := identityCtx(instructorID, domain.RoleInstructor)
		assignment, err := svc.Assign(ctx, work.ID, student.ID)
		require.NoError(t, err)
		assert.NotNil(t, assignment)
	})
}

func TestDeliver(t *testing.T) {
	text := "my solution"

	t.Run("Success", func(t *testing.T) {
		svc, m := setupAssignmentService()

		studentID := uuid.New()
		work := individualWork(uuid.New())
		assignment := &domain.Assignment{
			ID:        uuid.New(),
			WorkID:    work.ID,
			StudentID: studentID,
			Status:    domain.AssignmentStatusAssigned,
		}

		m.assignmentRepo.On("GetByID", mock.Anything, assignment.ID).Return(assignment, nil)
		m.workRepo.On("GetByID", mock.Anything, work.ID).Return(work, nil)
		m.assignmentRepo.On("MarkDelivered", mock.Anything, assignment.ID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("*domain.Delivery")).Return(nil)

		ctx := identityCtx(studentID, domain.RoleStudent)
		result, err := svc.Deliver(ctx, assignment.ID, service.DeliveryInput{Text: &text})
		require.NoError(t, err)
		assert.Equal(t, domain.AssignmentStatusDelivered, result.Status)
		require.NotNil(t, result.DeliveredAt)
	})

	t.Run("Error_NotTheAssignedStudent", func(t *testing.T) {
		svc, m := setupAssignmentService()

		assignment := &domain.Assignment{
			ID:        uuid.New(),
			WorkID:    uuid.New(),
			StudentID: uuid.New(),
			Status:    domain.AssignmentStatusAssigned,
		}
		m.assignmentRepo.On("GetByID", mock.Anything, assignment.ID).Return(assignment, nil)

		ctx := identityCtx(uuid.New(), domain.RoleStudent)
		_, err := svc.Deliver(ctx, assignment.ID, service.DeliveryInput{Text: &text})
		assert.True(t, errors.Is(err, errdefs.ErrNotOwner))
	})

	t.Run("Error_InstructorCannotDeliver", func(t *testing.T) {
		svc, _ := setupAssignmentService()

		ctx := identityCtx(uuid.New(), domain.RoleInstructor)
		_, err := svc.Deliver(ctx, uuid.New(), service.DeliveryInput{Text: &text})
		assert.True(t, errors.Is(err, errdefs.ErrPermissionDenied))
	})

	t.Run("Error_DeadlinePassed", func(t *testing.T) {
		svc, m := setupAssignmentService()

		studentID := uuid.New()
		work := individualWork(uuid.New())
		work.Deadline = time.Now().Add(-1 * time.Hour)
		assignment := &domain.Assignment{
			ID:        uuid.New(),
			WorkID:    work.ID,
			StudentID: studentID,
			Status:    domain.AssignmentStatusAssigned,
		}

		m.assignmentRepo.On("GetByID", mock.Anything, assignment.ID).Return(assignment, nil)
		m.workRepo.On("GetByID", mock.Anything, work.ID).Return(work, nil)

		ctx := identityCtx(studentID, domain.RoleStudent)
		_, err := svc.Deliver(ctx, assignment.ID, service.DeliveryInput{Text: &text})
		assert.True(t, errors.Is(err, errdefs.ErrDeadlineExceeded))
		m.assignmentRepo.AssertNotCalled(t, "MarkDelivered", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_AlreadyDelivered", func(t *testing.T) {
		svc, m := setupAssignmentService()

		studentID := uuid.New()
		work := individualWork(uuid.New())
		assignment := &domain.Assignment{
			ID:        uuid.New(),
			WorkID:    work.ID,
			StudentID: studentID,
			Status:    domain.AssignmentStatusDelivered,
		}

		m.assignmentRepo.On("GetByID", mock.Anything, assignment.ID).Return(assignment, nil)
		m.workRepo.On("GetByID", mock.Anything, work.ID).Return(work, nil)
		m.assignmentRepo.On("MarkDelivered", mock.Anything, assignment.ID, mock.Anything, mock.Anything).
			Return(errdefs.ErrAlreadyDelivered)

		ctx := identityCtx(studentID, domain.RoleStudent)
		_, err := svc.Deliver(ctx, assignment.ID, service.DeliveryInput{Text: &text})
		assert.True(t, errors.Is(err, errdefs.ErrAlreadyDelivered))
		assert.True(t, errors.Is(err, errdefs.ErrInvalidState))
	})

	t.Run("EmptyDeliveryStillCountsAsDelivered", func(t *testing.T) {
		svc, m := setupAssignmentService()

		studentID := uuid.New()
		work := individualWork(uuid.New())
		assignment := &domain.Assignment{
			ID:        uuid.New(),
			WorkID:    work.ID,
			StudentID: studentID,
			Status:    domain.AssignmentStatusAssigned,
		}

		m.assignmentRepo.On("GetByID", mock.Anything, assignment.ID).Return(assignment, nil)
		m.workRepo.On("GetByID", mock.Anything, work.ID).Return(work, nil)
		m.assignmentRepo.On("MarkDelivered", mock.Anything, assignment.ID, mock.Anything, mock.Anything).Return(nil)

		ctx := identityCtx(studentID, domain.RoleStudent)
		result, err := svc.Deliver(ctx, assignment.ID, service.DeliveryInput{})
		require.NoError(t, err)
		assert.Equal(t, domain.AssignmentStatusDelivered, result.Status)
	})
}

func TestGetAssignment(t *testing.T) {
	t.Run("StudentSeesOwnAssignment", func(t *testing.T) {
		svc, m := setupAssignmentService()

		studentID := uuid.New()
		assignment := &domain.Assignment{ID: uuid.New(), StudentID: studentID}
		m.assignmentRepo.On("GetByID", mock.Anything, assignment.ID).Return(assignment, nil)

		ctx := identityCtx(studentID, domain.RoleStudent)
		result, err := svc.GetAssignment(ctx, assignment.ID)
		require.NoError(t, err)
		assert.Equal(t, assignment.ID, result.ID)
	})

	t.Run("StudentCannotSeeOthersAssignment", func(t *testing.T) {
		svc, m := setupAssignmentService()

		assignment := &domain.Assignment{ID: uuid.New(), StudentID: uuid.New()}
		m.assignmentRepo.On("GetByID", mock.Anything, assignment.ID).Return(assignment, nil)

		ctx := identityCtx(uuid.New(), domain.RoleStudent)
		_, err := svc.GetAssignment(ctx, assignment.ID)
		assert.True(t, errors.Is(err, errdefs.ErrPermissionDenied))
	})

	t.Run("DirectorSeesAnyAssignment", func(t *testing.T) {
		svc, m := setupAssignmentService()

		assignment := &domain.Assignment{ID: uuid.New(), StudentID: uuid.New()}
		m.assignmentRepo.On("GetByID", mock.Anything, assignment.ID).Return(assignment, nil)

		ctx := identityCtx(uuid.New(), domain.RoleDirector)
		result, err := svc.GetAssignment(ctx, assignment.ID)
		require.NoError(t, err)
		assert.Equal(t, assignment.ID, result.ID)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		svc, m := setupAssignmentService()

		id := uuid.New()
		m.assignmentRepo.On("GetByID", mock.Anything, id).Return(nil, errdefs.ErrNotFound)

		ctx := identityCtx(uuid.New(), domain.RoleInstructor)
		_, err := svc.GetAssignment(ctx, id)
		assert.True(t, errors.Is(err, errdefs.ErrNotFound))
	})
}

func TestListAssignments(t *testing.T) {
	t.Run("StudentListsOwn", func(t *testing.T) {
		svc, m := setupAssignmentService()

		studentID := uuid.New()
		expected := []*domain.Assignment{{ID: uuid.New(), StudentID: studentID}}
		m.assignmentRepo.On("ListByStudent", mock.Anything, studentID).Return(expected, nil)

		ctx := identityCtx(studentID, domain.RoleStudent)
		result, err := svc.ListByStudent(ctx, studentID)
		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("StudentCannotListOthers", func(t *testing.T) {
		svc, _ := setupAssignmentService()

		ctx := identityCtx(uuid.New(), domain.RoleStudent)
		_, err := svc.ListByStudent(ctx, uuid.New())
		assert.True(t, errors.Is(err, errdefs.ErrPermissionDenied))
	})

	t.Run("StudentCannotListByWork", func(t *testing.T) {
		svc, _ := setupAssignmentService()

		ctx := identityCtx(uuid.New(), domain.RoleStudent)
		_, err := svc.ListByWork(ctx, uuid.New())
		assert.True(t, errors.Is(err, errdefs.ErrPermissionDenied))
	})

	t.Run("InstructorListsByWork", func(t *testing.T) {
		svc, m := setupAssignmentService()

		workID := uuid.New()
		expected := []*domain.Assignment{{ID: uuid.New(), WorkID: workID}}
		m.assignmentRepo.On("ListByWork", mock.Anything, workID).Return(expected, nil)

		ctx := identityCtx(uuid.New(), domain.RoleInstructor)
		result, err := svc.ListByWork(ctx, workID)
		require.NoError(t, err)
		assert.Len(t, result, 1)
	})
}
