package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"coursework_service/internal/domain"
)

type DeliveryRepository struct {
	db *sql.DB
}

func NewDeliveryRepository(db *sql.DB) *DeliveryRepository {
	return &DeliveryRepository{db: db}
}

func (r *DeliveryRepository) GetByAssignment(ctx context.Context, assignmentID uuid.UUID) (*domain.Delivery, error) {
	query := `
		SELECT id, assignment_id, text, resource_url, created_at
		FROM deliveries
		WHERE assignment_id = $1
	`

	var delivery domain.Delivery
	err := r.db.QueryRowContext(ctx, query, assignmentID).Scan(
		&delivery.ID,
		&delivery.AssignmentID,
		&delivery.Text,
		&delivery.ResourceURL,
		&delivery.CreatedAt,
	)
	if err != nil {
		return nil, handleError(err)
	}

	return &delivery, nil
}
