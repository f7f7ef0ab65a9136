package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"coursework_service/internal/domain"
	"coursework_service/internal/errdefs"
)

type SpaceRepository struct {
	db *sql.DB
}

func NewSpaceRepository(db *sql.DB) *SpaceRepository {
	return &SpaceRepository{db: db}
}

func (r *SpaceRepository) Create(ctx context.Context, space *domain.PedagogicalSpace) error {
	query := `
		INSERT INTO pedagogical_spaces (id, cohort_id, subject, instructor_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	id, err := uuid.NewV7()
	if err != nil {
		return errdefs.Internal(err)
	}

	createdAt := time.Now()
	_, err = r.db.ExecContext(ctx, query, id, space.CohortID, space.Subject, space.InstructorID, createdAt)
	if err != nil {
		return handleError(err)
	}

	space.ID = id
	space.CreatedAt = createdAt
	return nil
}

func (r *SpaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PedagogicalSpace, error) {
	query := `
		SELECT id, cohort_id, subject, instructor_id, created_at
		FROM pedagogical_spaces
		WHERE id = $1
	`

	var space domain.PedagogicalSpace
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&space.ID,
		&space.CohortID,
		&space.Subject,
		&space.InstructorID,
		&space.CreatedAt,
	)
	if err != nil {
		return nil, handleError(err)
	}

	return &space, nil
}

// Enroll records space membership. Re-enrolling the same student is a no-op.
func (r *SpaceRepository) Enroll(ctx context.Context, spaceID, studentID uuid.UUID) error {
	query := `
		INSERT INTO enrollments (space_id, student_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (space_id, student_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, spaceID, studentID, time.Now())
	return handleError(err)
}

func (r *SpaceRepository) IsEnrolled(ctx context.Context, spaceID, studentID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM enrollments WHERE space_id = $1 AND student_id = $2)`

	var enrolled bool
	if err := r.db.QueryRowContext(ctx, query, spaceID, studentID).Scan(&enrolled); err != nil {
		return false, errdefs.Internal(err)
	}
	return enrolled, nil
}
