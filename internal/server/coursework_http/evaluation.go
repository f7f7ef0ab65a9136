package coursework_http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type evaluateRequest struct {
	Score   float64 `json:"score"`
	Comment *string `json:"comment,omitempty"`
}

func (h *CourseworkHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	evaluation, err := h.evaluations.Evaluate(r.Context(), id, req.Score, req.Comment)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	h.log.Info("assignment evaluated",
		zap.String("assignment_id", id.String()),
		zap.Float64("score", evaluation.Score),
	)

	respondJSON(w, http.StatusCreated, toEvaluationResponse(evaluation))
}

func (h *CourseworkHandler) GetEvaluation(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	evaluation, err := h.evaluations.GetByAssignment(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, toEvaluationResponse(evaluation))
}

func (h *CourseworkHandler) ListEvaluationsByStudent(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	evaluations, err := h.evaluations.ListByStudent(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, toEvaluationResponses(evaluations))
}

func (h *CourseworkHandler) RankStudents(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	rankings, err := h.rankings.RankStudents(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, toStudentRankingResponses(rankings))
}

func (h *CourseworkHandler) RankCohorts(w http.ResponseWriter, r *http.Request) {
	rankings, err := h.rankings.RankCohorts(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, toCohortRankingResponses(rankings))
}
