package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"coursework_service/internal/domain"
	"coursework_service/internal/errdefs"
)

type WorkRepository struct {
	db *sql.DB
}

func NewWorkRepository(db *sql.DB) *WorkRepository {
	return &WorkRepository{db: db}
}

func (r *WorkRepository) Create(ctx context.Context, work *domain.Work) error {
	query := `
		INSERT INTO works (id, space_id, instructor_id, title, instructions, kind, deadline, scale, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	id, err := uuid.NewV7()
	if err != nil {
		return errdefs.Internal(err)
	}

	createdAt := time.Now()
	_, err = r.db.ExecContext(ctx, query,
		id,
		work.SpaceID,
		work.InstructorID,
		work.Title,
		work.Instructions,
		work.Kind,
		work.Deadline,
		work.Scale,
		createdAt,
	)
	if err != nil {
		return handleError(err)
	}

	work.ID = id
	work.CreatedAt = createdAt
	return nil
}

func (r *WorkRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Work, error) {
	query := `
		SELECT id, space_id, instructor_id, title, instructions, kind, deadline, scale, created_at
		FROM works
		WHERE id = $1
	`

	var work domain.Work
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&work.ID,
		&work.SpaceID,
		&work.InstructorID,
		&work.Title,
		&work.Instructions,
		&work.Kind,
		&work.Deadline,
		&work.Scale,
		&work.CreatedAt,
	)
	if err != nil {
		return nil, handleError(err)
	}

	return &work, nil
}

func (r *WorkRepository) ListBySpace(ctx context.Context, spaceID uuid.UUID) ([]*domain.Work, error) {
	query := `
		SELECT id, space_id, instructor_id, title, instructions, kind, deadline, scale, created_at
		FROM works
		WHERE space_id = $1
		ORDER BY deadline ASC
	`

	rows, err := r.db.QueryContext(ctx, query, spaceID)
	if err != nil {
		return nil, handleError(err)
	}
	defer func() { _ = rows.Close() }()

	var works []*domain.Work
	for rows.Next() {
		var w domain.Work
		if err := rows.Scan(
			&w.ID,
			&w.SpaceID,
			&w.InstructorID,
			&w.Title,
			&w.Instructions,
			&w.Kind,
			&w.Deadline,
			&w.Scale,
			&w.CreatedAt,
		); err != nil {
			return nil, errdefs.Internal(err)
		}
		works = append(works, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, errdefs.Internal(err)
	}

	return works, nil
}
