package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"coursework_service/internal/domain"
	"coursework_service/internal/errdefs"
)

// EvaluationRepository only reads. Evaluations are written exclusively by
// AssignmentRepository.MarkEvaluated so the status flip and the insert share
// one transaction; once written they are immutable.
type EvaluationRepository struct {
	db *sql.DB
}

func NewEvaluationRepository(db *sql.DB) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

func (r *EvaluationRepository) GetByAssignment(ctx context.Context, assignmentID uuid.UUID) (*domain.Evaluation, error) {
	query := `
		SELECT id, assignment_id, score, comment, instructor_id, created_at
		FROM evaluations
		WHERE assignment_id = $1
	`

	var evaluation domain.Evaluation
	err := r.db.QueryRowContext(ctx, query, assignmentID).Scan(
		&evaluation.ID,
		&evaluation.AssignmentID,
		&evaluation.Score,
		&evaluation.Comment,
		&evaluation.InstructorID,
		&evaluation.CreatedAt,
	)
	if err != nil {
		return nil, handleError(err)
	}

	return &evaluation, nil
}

func (r *EvaluationRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.Evaluation, error) {
	query := `
		SELECT e.id, e.assignment_id, e.score, e.comment, e.instructor_id, e.created_at
		FROM evaluations e
		JOIN assignments a ON a.id = e.assignment_id
		WHERE a.student_id = $1
		ORDER BY e.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, handleError(err)
	}
	defer func() { _ = rows.Close() }()

	var evaluations []*domain.Evaluation
	for rows.Next() {
		var e domain.Evaluation
		if err := rows.Scan(&e.ID, &e.AssignmentID, &e.Score, &e.Comment, &e.InstructorID, &e.CreatedAt); err != nil {
			return nil, errdefs.Internal(err)
		}
		evaluations = append(evaluations, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, errdefs.Internal(err)
	}

	return evaluations, nil
}

// ListFactsByCohort returns the score/scale rows the ranking engine
// aggregates for one cohort. No snapshot isolation: rankings are recomputed
// per request from whatever is committed at query time.
func (r *EvaluationRepository) ListFactsByCohort(ctx context.Context, cohortID uuid.UUID) ([]domain.EvaluationFact, error) {
	query := `
		SELECT a.student_id, s.cohort_id, e.score, w.scale
		FROM evaluations e
		JOIN assignments a ON a.id = e.assignment_id
		JOIN works w ON w.id = a.work_id
		JOIN students s ON s.id = a.student_id
		WHERE s.cohort_id = $1
	`
	return r.listFacts(ctx, query, cohortID)
}

func (r *EvaluationRepository) ListAllFacts(ctx context.Context) ([]domain.EvaluationFact, error) {
	query := `
		SELECT a.student_id, s.cohort_id, e.score, w.scale
		FROM evaluations e
		JOIN assignments a ON a.id = e.assignment_id
		JOIN works w ON w.id = a.work_id
		JOIN students s ON s.id = a.student_id
	`
	return r.listFacts(ctx, query)
}

func (r *EvaluationRepository) listFacts(ctx context.Context, query string, args ...any) ([]domain.EvaluationFact, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, handleError(err)
	}
	defer func() { _ = rows.Close() }()

	var facts []domain.EvaluationFact
	for rows.Next() {
		var f domain.EvaluationFact
		if err := rows.Scan(&f.StudentID, &f.CohortID, &f.Score, &f.Scale); err != nil {
			return nil, errdefs.Internal(err)
		}
		facts = append(facts, f)
	}
	if err := rows.Err(); err != nil {
		return nil, errdefs.Internal(err)
	}

	return facts, nil
}
