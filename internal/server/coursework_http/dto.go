package coursework_http

import (
	"time"

	"coursework_service/internal/domain"
)

type assignmentResponse struct {
	ID           string     `json:"id"`
	WorkID       string     `json:"work_id"`
	StudentID    string     `json:"student_id"`
	InstructorID string     `json:"instructor_id"`
	Status       string     `json:"status"`
	DeliveredAt  *time.Time `json:"delivered_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toAssignmentResponse(a *domain.Assignment) assignmentResponse {
	return assignmentResponse{
		ID:           a.ID.String(),
		WorkID:       a.WorkID.String(),
		StudentID:    a.StudentID.String(),
		InstructorID: a.InstructorID.String(),
		Status:       string(a.Status),
		DeliveredAt:  a.DeliveredAt,
		CreatedAt:    a.CreatedAt,
	}
}

func toAssignmentResponses(assignments []*domain.Assignment) []assignmentResponse {
	out := make([]assignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, toAssignmentResponse(a))
	}
	return out
}

type deliveryResponse struct {
	ID           string    `json:"id"`
	AssignmentID string    `json:"assignment_id"`
	Text         *string   `json:"text,omitempty"`
	ResourceURL  *string   `json:"resource_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toDeliveryResponse(d *domain.Delivery) deliveryResponse {
	return deliveryResponse{
		ID:           d.ID.String(),
		AssignmentID: d.AssignmentID.String(),
		Text:         d.Text,
		ResourceURL:  d.ResourceURL,
		CreatedAt:    d.CreatedAt,
	}
}

type evaluationResponse struct {
	ID           string    `json:"id"`
	AssignmentID string    `json:"assignment_id"`
	Score        float64   `json:"score"`
	Comment      *string   `json:"comment,omitempty"`
	InstructorID string    `json:"instructor_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func toEvaluationResponse(e *domain.Evaluation) evaluationResponse {
	return evaluationResponse{
		ID:           e.ID.String(),
		AssignmentID: e.AssignmentID.String(),
		Score:        e.Score,
		Comment:      e.Comment,
		InstructorID: e.InstructorID.String(),
		CreatedAt:    e.CreatedAt,
	}
}

func toEvaluationResponses(evaluations []*domain.Evaluation) []evaluationResponse {
	out := make([]evaluationResponse, 0, len(evaluations))
	for _, e := range evaluations {
		out = append(out, toEvaluationResponse(e))
	}
	return out
}

type workResponse struct {
	ID           string    `json:"id"`
	SpaceID      string    `json:"space_id"`
	InstructorID string    `json:"instructor_id"`
	Title        string    `json:"title"`
	Instructions *string   `json:"instructions,omitempty"`
	Kind         string    `json:"kind"`
	Deadline     time.Time `json:"deadline"`
	Scale        float64   `json:"scale"`
	CreatedAt    time.Time `json:"created_at"`
}

func toWorkResponse(w *domain.Work) workResponse {
	return workResponse{
		ID:           w.ID.String(),
		SpaceID:      w.SpaceID.String(),
		InstructorID: w.InstructorID.String(),
		Title:        w.Title,
		Instructions: w.Instructions,
		Kind:         string(w.Kind),
		Deadline:     w.Deadline,
		Scale:        w.Scale,
		CreatedAt:    w.CreatedAt,
	}
}

func toWorkResponses(works []*domain.Work) []workResponse {
	out := make([]workResponse, 0, len(works))
	for _, w := range works {
		out = append(out, toWorkResponse(w))
	}
	return out
}

type spaceResponse struct {
	ID           string    `json:"id"`
	CohortID     string    `json:"cohort_id"`
	Subject      string    `json:"subject"`
	InstructorID string    `json:"instructor_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type studentResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CohortID  string `json:"cohort_id"`
}

func toStudentResponses(students []*domain.Student) []studentResponse {
	out := make([]studentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, studentResponse{
			ID:        s.ID.String(),
			FirstName: s.FirstName,
			LastName:  s.LastName,
			CohortID:  s.CohortID.String(),
		})
	}
	return out
}

type cohortResponse struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Label string `json:"label"`
	Year  string `json:"year"`
}

func toCohortResponses(cohorts []*domain.Cohort) []cohortResponse {
	out := make([]cohortResponse, 0, len(cohorts))
	for _, c := range cohorts {
		out = append(out, cohortResponse{
			ID:    c.ID.String(),
			Code:  c.Code,
			Label: c.Label,
			Year:  c.Year,
		})
	}
	return out
}

type studentRankingResponse struct {
	Rank            int     `json:"rank"`
	StudentID       string  `json:"student_id"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Average         float64 `json:"average"`
	TotalPoints     float64 `json:"total_points"`
	TotalScale      float64 `json:"total_scale"`
	EvaluationCount int     `json:"evaluation_count"`
}

type cohortRankingResponse struct {
	Rank            int     `json:"rank"`
	CohortID        string  `json:"cohort_id"`
	Code            string  `json:"code"`
	Label           string  `json:"label"`
	Year            string  `json:"year"`
	StudentCount    int     `json:"student_count"`
	EvaluationCount int     `json:"evaluation_count"`
	Average         float64 `json:"average"`
	BestAverage     float64 `json:"best_average"`
	WorstAverage    float64 `json:"worst_average"`
	PassRate        float64 `json:"pass_rate"`
}

func toStudentRankingResponses(rankings []domain.StudentRanking) []studentRankingResponse {
	out := make([]studentRankingResponse, 0, len(rankings))
	for _, r := range rankings {
		out = append(out, studentRankingResponse{
			Rank:            r.Rank,
			StudentID:       r.StudentID.String(),
			FirstName:       r.FirstName,
			LastName:        r.LastName,
			Average:         r.Average,
			TotalPoints:     r.TotalPoints,
			TotalScale:      r.TotalScale,
			EvaluationCount: r.EvaluationCount,
		})
	}
	return out
}

func toCohortRankingResponses(rankings []domain.CohortRanking) []cohortRankingResponse {
	out := make([]cohortRankingResponse, 0, len(rankings))
	for _, r := range rankings {
		out = append(out, cohortRankingResponse{
			Rank:            r.Rank,
			CohortID:        r.CohortID.String(),
			Code:            r.Code,
			Label:           r.Label,
			Year:            r.Year,
			StudentCount:    r.StudentCount,
			EvaluationCount: r.EvaluationCount,
			Average:         r.Average,
			BestAverage:     r.BestAverage,
			WorstAverage:    r.WorstAverage,
			PassRate:        r.PassRate,
		})
	}
	return out
}
