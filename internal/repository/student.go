package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"coursework_service/internal/domain"
	"coursework_service/internal/errdefs"
)

type StudentRepository struct {
	db *sql.DB
}

func NewStudentRepository(db *sql.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) Create(ctx context.Context, student *domain.Student) error {
	query := `
		INSERT INTO students (id, first_name, last_name, cohort_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	id := student.ID
	if id == uuid.Nil {
		var err error
		id, err = uuid.NewV7()
		if err != nil {
			return errdefs.Internal(err)
		}
	}

	createdAt := time.Now()
	_, err := r.db.ExecContext(ctx, query, id, student.FirstName, student.LastName, student.CohortID, createdAt)
	if err != nil {
		return handleError(err)
	}

	student.ID = id
	student.CreatedAt = createdAt
	return nil
}

func (r *StudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	query := `
		SELECT id, first_name, last_name, cohort_id, created_at
		FROM students
		WHERE id = $1
	`

	var student domain.Student
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.CohortID,
		&student.CreatedAt,
	)
	if err != nil {
		return nil, handleError(err)
	}

	return &student, nil
}

func (r *StudentRepository) ListByCohort(ctx context.Context, cohortID uuid.UUID) ([]*domain.Student, error) {
	query := `
		SELECT id, first_name, last_name, cohort_id, created_at
		FROM students
		WHERE cohort_id = $1
		ORDER BY last_name ASC, first_name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, cohortID)
	if err != nil {
		return nil, handleError(err)
	}
	defer func() { _ = rows.Close() }()

	var students []*domain.Student
	for rows.Next() {
		var s domain.Student
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.CohortID, &s.CreatedAt); err != nil {
			return nil, errdefs.Internal(err)
		}
		students = append(students, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, errdefs.Internal(err)
	}

	return students, nil
}
