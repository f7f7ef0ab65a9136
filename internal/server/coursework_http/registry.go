package coursework_http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"coursework_service/internal/domain"
	"coursework_service/internal/service"
)

type createWorkRequest struct {
	SpaceID      string    `json:"space_id"`
	Title        string    `json:"title"`
	Instructions *string   `json:"instructions,omitempty"`
	Kind         string    `json:"kind"`
	Deadline     time.Time `json:"deadline"`
	Scale        float64   `json:"scale"`
}

func (h *CourseworkHandler) CreateWork(w http.ResponseWriter, r *http.Request) {
	var req createWorkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	spaceID, err := uuid.Parse(req.SpaceID)
	if err != nil {
		http.Error(w, "invalid space_id", http.StatusBadRequest)
		return
	}

	work, err := h.registry.CreateWork(r.Context(), service.CreateWorkInput{
		SpaceID:      spaceID,
		Title:        req.Title,
		Instructions: req.Instructions,
		Kind:         domain.WorkKind(req.Kind),
		Deadline:     req.Deadline,
		Scale:        req.Scale,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusCreated, toWorkResponse(work))
}

func (h *CourseworkHandler) GetWork(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	work, err := h.registry.GetWork(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, toWorkResponse(work))
}

func (h *CourseworkHandler) ListWorksBySpace(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	works, err := h.registry.ListWorksBySpace(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, toWorkResponses(works))
}

type createSpaceRequest struct {
	CohortID     string `json:"cohort_id"`
	Subject      string `json:"subject"`
	InstructorID string `json:"instructor_id"`
}

func (h *CourseworkHandler) CreateSpace(w http.ResponseWriter, r *http.Request) {
	var req createSpaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	cohortID, err := uuid.Parse(req.CohortID)
	if err != nil {
		http.Error(w, "invalid cohort_id", http.StatusBadRequest)
		return
	}
	instructorID, err := uuid.Parse(req.InstructorID)
	if err != nil {
		http.Error(w, "invalid instructor_id", http.StatusBadRequest)
		return
	}

	space, err := h.registry.CreateSpace(r.Context(), service.CreateSpaceInput{
		CohortID:     cohortID,
		Subject:      req.Subject,
		InstructorID: instructorID,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusCreated, spaceResponse{
		ID:           space.ID.String(),
		CohortID:     space.CohortID.String(),
		Subject:      space.Subject,
		InstructorID: space.InstructorID.String(),
		CreatedAt:    space.CreatedAt,
	})
}

type enrollRequest struct {
	StudentIDs []string `json:"student_ids"`
}

func (h *CourseworkHandler) EnrollStudents(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req enrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	studentIDs := make([]uuid.UUID, 0, len(req.StudentIDs))
	for _, raw := range req.StudentIDs {
		studentID, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid student id", http.StatusBadRequest)
			return
		}
		studentIDs = append(studentIDs, studentID)
	}

	if err := h.registry.EnrollStudents(r.Context(), id, studentIDs); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type createStudentRequest struct {
	ID        *string `json:"id,omitempty"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	CohortID  string  `json:"cohort_id"`
}

func (h *CourseworkHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req createStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	cohortID, err := uuid.Parse(req.CohortID)
	if err != nil {
		http.Error(w, "invalid cohort_id", http.StatusBadRequest)
		return
	}

	input := service.CreateStudentInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		CohortID:  cohortID,
	}
	// The identity provider may already own the student's id; honor it.
	if req.ID != nil {
		studentID, err := uuid.Parse(*req.ID)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		input.ID = studentID
	}

	student, err := h.registry.CreateStudent(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusCreated, studentResponse{
		ID:        student.ID.String(),
		FirstName: student.FirstName,
		LastName:  student.LastName,
		CohortID:  student.CohortID.String(),
	})
}

func (h *CourseworkHandler) ListStudentsByCohort(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	students, err := h.registry.ListStudentsByCohort(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, toStudentResponses(students))
}

type createCohortRequest struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Year  string `json:"year"`
}

func (h *CourseworkHandler) CreateCohort(w http.ResponseWriter, r *http.Request) {
	var req createCohortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	cohort, err := h.registry.CreateCohort(r.Context(), service.CreateCohortInput{
		Code:  req.Code,
		Label: req.Label,
		Year:  req.Year,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusCreated, cohortResponse{
		ID:    cohort.ID.String(),
		Code:  cohort.Code,
		Label: cohort.Label,
		Year:  cohort.Year,
	})
}

func (h *CourseworkHandler) ListCohorts(w http.ResponseWriter, r *http.Request) {
	cohorts, err := h.registry.ListCohorts(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, toCohortResponses(cohorts))
}
