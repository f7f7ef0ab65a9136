package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coursework_service/internal/domain"
	"coursework_service/internal/errdefs"
)

type AssignmentRepository struct {
	db *sql.DB
}

func NewAssignmentRepository(db *sql.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create inserts a new assignment in ASSIGNED state. The unique index on
// (work_id, student_id) is the only duplicate guard: a racing second insert
// for the same pair comes back as errdefs.ErrAlreadyExists.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *domain.Assignment) error {
	query := `
		INSERT INTO assignments (id, work_id, student_id, instructor_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	id, err := uuid.NewV7()
	if err != nil {
		return errdefs.Internal(err)
	}

	createdAt := time.Now()
	_, err = r.db.ExecContext(ctx, query,
		id,
		assignment.WorkID,
		assignment.StudentID,
		assignment.InstructorID,
		domain.AssignmentStatusAssigned,
		createdAt,
	)
	if err != nil {
		return handleError(err)
	}

	assignment.ID = id
	assignment.Status = domain.AssignmentStatusAssigned
	assignment.CreatedAt = createdAt
	return nil
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	query := `
		SELECT id, work_id, student_id, instructor_id, status, delivered_at, created_at
		FROM assignments
		WHERE id = $1
	`

	var assignment domain.Assignment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&assignment.ID,
		&assignment.WorkID,
		&assignment.StudentID,
		&assignment.InstructorID,
		&assignment.Status,
		&assignment.DeliveredAt,
		&assignment.CreatedAt,
	)
	if err != nil {
		return nil, handleError(err)
	}

	return &assignment, nil
}

func (r *AssignmentRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.Assignment, error) {
	query := `
		SELECT id, work_id, student_id, instructor_id, status, delivered_at, created_at
		FROM assignments
		WHERE student_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, studentID)
}

func (r *AssignmentRepository) ListByWork(ctx context.Context, workID uuid.UUID) ([]*domain.Assignment, error) {
	query := `
		SELECT id, work_id, student_id, instructor_id, status, delivered_at, created_at
		FROM assignments
		WHERE work_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, workID)
}

func (r *AssignmentRepository) list(ctx context.Context, query string, arg any) ([]*domain.Assignment, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, handleError(err)
	}
	defer func() { _ = rows.Close() }()

	var assignments []*domain.Assignment
	for rows.Next() {
		var a domain.Assignment
		if err := rows.Scan(
			&a.ID,
			&a.WorkID,
			&a.StudentID,
			&a.InstructorID,
			&a.Status,
			&a.DeliveredAt,
			&a.CreatedAt,
		); err != nil {
			return nil, errdefs.Internal(err)
		}
		assignments = append(assignments, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, errdefs.Internal(err)
	}

	return assignments, nil
}

// MarkDelivered flips ASSIGNED -> DELIVERED and inserts the delivery row in
// one transaction. The guarded UPDATE is the compare-and-transition: if it
// touches no row the assignment is missing or already past ASSIGNED, and the
// whole transaction aborts.
func (r *AssignmentRepository) MarkDelivered(ctx context.Context, id uuid.UUID, deliveredAt time.Time, delivery *domain.Delivery) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errdefs.Internal(err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		UPDATE assignments
		SET status = $2, delivered_at = $3
		WHERE id = $1 AND status = $4
	`, id, domain.AssignmentStatusDelivered, deliveredAt, domain.AssignmentStatusAssigned)
	if err != nil {
		return handleError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errdefs.Internal(err)
	}
	if affected == 0 {
		return r.transitionConflict(ctx, tx, id, domain.AssignmentStatusAssigned)
	}

	deliveryID, err := uuid.NewV7()
	if err != nil {
		return errdefs.Internal(err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO deliveries (id, assignment_id, text, resource_url, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, deliveryID, id, delivery.Text, delivery.ResourceURL, deliveredAt)
	if err != nil {
		return handleError(err)
	}

	if err := tx.Commit(); err != nil {
		return errdefs.Internal(err)
	}

	delivery.ID = deliveryID
	delivery.AssignmentID = id
	delivery.CreatedAt = deliveredAt
	return nil
}

// MarkEvaluated flips DELIVERED -> EVALUATED and inserts the evaluation in
// one transaction. Two racing calls serialize on the row: the loser's guarded
// UPDATE sees the new status and aborts, so exactly one evaluation exists.
func (r *AssignmentRepository) MarkEvaluated(ctx context.Context, id uuid.UUID, evaluation *domain.Evaluation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errdefs.Internal(err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		UPDATE assignments
		SET status = $2
		WHERE id = $1 AND status = $3
	`, id, domain.AssignmentStatusEvaluated, domain.AssignmentStatusDelivered)
	if err != nil {
		return handleError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errdefs.Internal(err)
	}
	if affected == 0 {
		return r.transitionConflict(ctx, tx, id, domain.AssignmentStatusDelivered)
	}

	evaluationID, err := uuid.NewV7()
	if err != nil {
		return errdefs.Internal(err)
	}
	createdAt := time.Now()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO evaluations (id, assignment_id, score, comment, instructor_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, evaluationID, id, evaluation.Score, evaluation.Comment, evaluation.InstructorID, createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errdefs.ErrAlreadyEvaluated
		}
		return handleError(err)
	}

	if err := tx.Commit(); err != nil {
		return errdefs.Internal(err)
	}

	evaluation.ID = evaluationID
	evaluation.AssignmentID = id
	evaluation.CreatedAt = createdAt
	return nil
}

// transitionConflict turns a zero-row guarded update into the matching
// taxonomy error by re-reading the current status inside the transaction.
func (r *AssignmentRepository) transitionConflict(ctx context.Context, tx *sql.Tx, id uuid.UUID, expected domain.AssignmentStatus) error {
	var status domain.AssignmentStatus
	err := tx.QueryRowContext(ctx, `SELECT status FROM assignments WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return errdefs.ErrNotFound
	}
	if err != nil {
		return errdefs.Internal(err)
	}

	switch status {
	case domain.AssignmentStatusEvaluated:
		return errdefs.ErrAlreadyEvaluated
	case domain.AssignmentStatusDelivered:
		if expected == domain.AssignmentStatusAssigned {
			return errdefs.ErrAlreadyDelivered
		}
		return errdefs.ErrInvalidState
	case domain.AssignmentStatusAssigned:
		return errdefs.ErrNotDelivered
	default:
		return errdefs.Internal(fmt.Errorf("unknown assignment status %q", status))
	}
}

// FindDueSoon returns assignments still waiting for a delivery whose work
// deadline falls within the given window.
func (r *AssignmentRepository) FindDueSoon(ctx context.Context, within time.Duration) ([]*domain.DeadlineReminder, error) {
	query := `
		SELECT a.id, a.work_id, a.student_id, w.title, w.deadline
		FROM assignments a
		JOIN works w ON w.id = a.work_id
		WHERE a.status = $1
		AND w.deadline BETWEEN NOW() AND $2
	`

	rows, err := r.db.QueryContext(ctx, query, domain.AssignmentStatusAssigned, time.Now().Add(within))
	if err != nil {
		return nil, handleError(err)
	}
	defer func() { _ = rows.Close() }()

	var reminders []*domain.DeadlineReminder
	for rows.Next() {
		var rem domain.DeadlineReminder
		if err := rows.Scan(&rem.AssignmentID, &rem.WorkID, &rem.StudentID, &rem.WorkTitle, &rem.Deadline); err != nil {
			return nil, errdefs.Internal(err)
		}
		reminders = append(reminders, &rem)
	}
	if err := rows.Err(); err != nil {
		return nil, errdefs.Internal(err)
	}

	return reminders, nil
}
