package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"coursework_service/internal/domain"
	"coursework_service/internal/errdefs"
)

type CohortRepository struct {
	db *sql.DB
}

func NewCohortRepository(db *sql.DB) *CohortRepository {
	return &CohortRepository{db: db}
}

func (r *CohortRepository) Create(ctx context.Context, cohort *domain.Cohort) error {
	query := `
		INSERT INTO cohorts (id, code, label, year, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	id, err := uuid.NewV7()
	if err != nil {
		return errdefs.Internal(err)
	}

	createdAt := time.Now()
	_, err = r.db.ExecContext(ctx, query, id, cohort.Code, cohort.Label, cohort.Year, createdAt)
	if err != nil {
		return handleError(err)
	}

	cohort.ID = id
	cohort.CreatedAt = createdAt
	return nil
}

func (r *CohortRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Cohort, error) {
	query := `SELECT id, code, label, year, created_at FROM cohorts WHERE id = $1`

	var cohort domain.Cohort
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&cohort.ID,
		&cohort.Code,
		&cohort.Label,
		&cohort.Year,
		&cohort.CreatedAt,
	)
	if err != nil {
		return nil, handleError(err)
	}

	return &cohort, nil
}

func (r *CohortRepository) List(ctx context.Context) ([]*domain.Cohort, error) {
	query := `SELECT id, code, label, year, created_at FROM cohorts ORDER BY year DESC, label ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, handleError(err)
	}
	defer func() { _ = rows.Close() }()

	var cohorts []*domain.Cohort
	for rows.Next() {
		var c domain.Cohort
		if err := rows.Scan(&c.ID, &c.Code, &c.Label, &c.Year, &c.CreatedAt); err != nil {
			return nil, errdefs.Internal(err)
		}
		cohorts = append(cohorts, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, errdefs.Internal(err)
	}

	return cohorts, nil
}
