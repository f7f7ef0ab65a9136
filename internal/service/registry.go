package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"coursework_service/internal/domain"
	"coursework_service/internal/errdefs"
	"coursework_service/pkg/ctxdata"
)

// RegistryServiceInterface covers the administrative surface around the
// lifecycle: works, spaces, enrollments, students and cohorts.
type RegistryServiceInterface interface {
	CreateWork(ctx context.Context, input CreateWorkInput) (*domain.Work, error)
	GetWork(ctx context.Context, id uuid.UUID) (*domain.Work, error)
	ListWorksBySpace(ctx context.Context, spaceID uuid.UUID) ([]*domain.Work, error)

	CreateSpace(ctx context.Context, input CreateSpaceInput) (*domain.PedagogicalSpace, error)
	EnrollStudents(ctx context.Context, spaceID uuid.UUID, studentIDs []uuid.UUID) error

	CreateStudent(ctx context.Context, input CreateStudentInput) (*domain.Student, error)
	ListStudentsByCohort(ctx context.Context, cohortID uuid.UUID) ([]*domain.Student, error)

	CreateCohort(ctx context.Context, input CreateCohortInput) (*domain.Cohort, error)
	ListCohorts(ctx context.Context) ([]*domain.Cohort, error)
}

type CreateWorkInput struct {
	SpaceID      uuid.UUID
	Title        string
	Instructions *string
	Kind         domain.WorkKind
	Deadline     time.Time
	Scale        float64
}

type CreateSpaceInput struct {
	CohortID     uuid.UUID
	Subject      string
	InstructorID uuid.UUID
}

type CreateStudentInput struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	CohortID  uuid.UUID
}

type CreateCohortInput struct {
	Code  string
	Label string
	Year  string
}

type registryService struct {
	workRepo    WorkRepository
	spaceRepo   SpaceRepository
	studentRepo StudentRepository
	cohortRepo  CohortRepository
}

func NewRegistryService(
	workRepo WorkRepository,
	spaceRepo SpaceRepository,
	studentRepo StudentRepository,
	cohortRepo CohortRepository,
) RegistryServiceInterface {
	return &registryService{
		workRepo:    workRepo,
		spaceRepo:   spaceRepo,
		studentRepo: studentRepo,
		cohortRepo:  cohortRepo,
	}
}

func (s *registryService) CreateWork(ctx context.Context, input CreateWorkInput) (*domain.Work, error) {
	ident, ok := ctxdata.GetIdentity(ctx)
	if !ok || !ident.IsInstructor() {
		return nil, errdefs.ErrPermissionDenied
	}

	if strings.TrimSpace(input.Title) == "" {
		return nil, errdefs.ErrValidation
	}
	if !input.Kind.IsValid() {
		return nil, errdefs.ErrValidation
	}
	if input.Scale <= 0 {
		return nil, errdefs.ErrValidation
	}
	if input.Deadline.Before(time.Now()) {
		return nil, errdefs.ErrDeadlineExceeded
	}
	if _, err := s.spaceRepo.GetByID(ctx, input.SpaceID); err != nil {
		return nil, err
	}

	work := &domain.Work{
		SpaceID:      input.SpaceID,
		InstructorID: ident.ID,
		Title:        input.Title,
		Instructions: input.Instructions,
		Kind:         input.Kind,
		Deadline:     input.Deadline,
		Scale:        input.Scale,
	}
	if err := s.workRepo.Create(ctx, work); err != nil {
		return nil, err
	}

	return work, nil
}

func (s *registryService) GetWork(ctx context.Context, id uuid.UUID) (*domain.Work, error) {
	if _, ok := ctxdata.GetIdentity(ctx); !ok {
		return nil, errdefs.ErrPermissionDenied
	}
	return s.workRepo.GetByID(ctx, id)
}

func (s *registryService) ListWorksBySpace(ctx context.Context, spaceID uuid.UUID) ([]*domain.Work, error) {
	if _, ok := ctxdata.GetIdentity(ctx); !ok {
		return nil, errdefs.ErrPermissionDenied
	}
	return s.workRepo.ListBySpace(ctx, spaceID)
}

func (s *registryService) CreateSpace(ctx context.Context, input CreateSpaceInput) (*domain.PedagogicalSpace, error) {
	ident, ok := ctxdata.GetIdentity(ctx)
	if !ok || !ident.IsDirector() {
		return nil, errdefs.ErrPermissionDenied
	}
	if strings.TrimSpace(input.Subject) == "" {
		return nil, errdefs.ErrValidation
	}
	if _, err := s.cohortRepo.GetByID(ctx, input.CohortID); err != nil {
		return nil, err
	}

	space := &domain.PedagogicalSpace{
		CohortID:     input.CohortID,
		Subject:      input.Subject,
		InstructorID: input.InstructorID,
	}
	if err := s.spaceRepo.Create(ctx, space); err != nil {
		return nil, err
	}

	return space, nil
}

// EnrollStudents adds students to a space. Already-enrolled students are
// skipped, unknown students fail the whole call.
func (s *registryService) EnrollStudents(ctx context.Context, spaceID uuid.UUID, studentIDs []uuid.UUID) error {
	ident, ok := ctxdata.GetIdentity(ctx)
	if !ok || ident.IsStudent() {
		return errdefs.ErrPermissionDenied
	}
	if _, err := s.spaceRepo.GetByID(ctx, spaceID); err != nil {
		return err
	}

	for _, studentID := range studentIDs {
		if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
			return err
		}
		if err := s.spaceRepo.Enroll(ctx, spaceID, studentID); err != nil {
			return err
		}
	}

	return nil
}

func (s *registryService) CreateStudent(ctx context.Context, input CreateStudentInput) (*domain.Student, error) {
	ident, ok := ctxdata.GetIdentity(ctx)
	if !ok || !ident.IsDirector() {
		return nil, errdefs.ErrPermissionDenied
	}
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return nil, errdefs.ErrValidation
	}
	if _, err := s.cohortRepo.GetByID(ctx, input.CohortID); err != nil {
		return nil, err
	}

	student := &domain.Student{
		ID:        input.ID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		CohortID:  input.CohortID,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

func (s *registryService) ListStudentsByCohort(ctx context.Context, cohortID uuid.UUID) ([]*domain.Student, error) {
	if _, ok := ctxdata.GetIdentity(ctx); !ok {
		return nil, errdefs.ErrPermissionDenied
	}
	return s.studentRepo.ListByCohort(ctx, cohortID)
}

func (s *registryService) CreateCohort(ctx context.Context, input CreateCohortInput) (*domain.Cohort, error) {
	ident, ok := ctxdata.GetIdentity(ctx)
	if !ok || !ident.IsDirector() {
		return nil, errdefs.ErrPermissionDenied
	}
	if strings.TrimSpace(input.Code) == "" || strings.TrimSpace(input.Label) == "" {
		return nil, errdefs.ErrValidation
	}

	cohort := &domain.Cohort{
		Code:  input.Code,
		Label: input.Label,
		Year:  input.Year,
	}
	if err := s.cohortRepo.Create(ctx, cohort); err != nil {
		return nil, err
	}

	return cohort, nil
}

func (s *registryService) ListCohorts(ctx context.Context) ([]*domain.Cohort, error) {
	if _, ok := ctxdata.GetIdentity(ctx); !ok {
		return nil, errdefs.ErrPermissionDenied
	}
	return s.cohortRepo.List(ctx)
}
