package coursework_http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"coursework_service/internal/service"
)

type assignRequest struct {
	WorkID    string `json:"work_id"`
	StudentID string `json:"student_id"`
}

func (h *CourseworkHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	workID, err := uuid.Parse(req.WorkID)
	if err != nil {
		http.Error(w, "invalid work_id", http.StatusBadRequest)
		return
	}
	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		http.Error(w, "invalid student_id", http.StatusBadRequest)
		return
	}

	assignment, err := h.assignments.Assign(r.Context(), workID, studentID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	h.log.Info("assignment created",
		zap.String("assignment_id", assignment.ID.String()),
		zap.String("work_id", assignment.WorkID.String()),
		zap.String("student_id", assignment.StudentID.String()),
	)

	respondJSON(w, http.StatusCreated, toAssignmentResponse(assignment))
}

func (h *CourseworkHandler) GetAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	assignment, err := h.assignments.GetAssignment(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, toAssignmentResponse(assignment))
}

type deliverRequest struct {
	Text        *string `json:"text,omitempty"`
	ResourceURL *string `json:"resource_url,omitempty"`
}

func (h *CourseworkHandler) Deliver(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req deliverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	assignment, err := h.assignments.Deliver(r.Context(), id, service.DeliveryInput{
		Text:        req.Text,
		ResourceURL: req.ResourceURL,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	h.log.Info("assignment delivered", zap.String("assignment_id", assignment.ID.String()))

	respondJSON(w, http.StatusOK, toAssignmentResponse(assignment))
}

func (h *CourseworkHandler) GetDelivery(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	delivery, err := h.assignments.GetDelivery(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, toDeliveryResponse(delivery))
}

func (h *CourseworkHandler) ListAssignmentsByStudent(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	assignments, err := h.assignments.ListByStudent(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, toAssignmentResponses(assignments))
}

func (h *CourseworkHandler) ListAssignmentsByWork(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	assignments, err := h.assignments.ListByWork(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, toAssignmentResponses(assignments))
}
