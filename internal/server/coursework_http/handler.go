package coursework_http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"coursework_service/internal/errdefs"
	"coursework_service/internal/service"
	"coursework_service/pkg/logger"
)

type CourseworkHandler struct {
	assignments service.AssignmentServiceInterface
	evaluations service.EvaluationServiceInterface
	rankings    service.RankingServiceInterface
	registry    service.RegistryServiceInterface
	log         *logger.Logger
}

func NewCourseworkHandler(
	assignments service.AssignmentServiceInterface,
	evaluations service.EvaluationServiceInterface,
	rankings service.RankingServiceInterface,
	registry service.RegistryServiceInterface,
	log *logger.Logger,
) *CourseworkHandler {
	return &CourseworkHandler{
		assignments: assignments,
		evaluations: evaluations,
		rankings:    rankings,
		registry:    registry,
		log:         log,
	}
}

func (h *CourseworkHandler) RegisterRoutes(r chi.Router, identityMiddleware func(http.Handler) http.Handler) {
	r.With(identityMiddleware).Group(func(r chi.Router) {
		r.Post("/assignments", h.Assign)
		r.Get("/assignments/{id}", h.GetAssignment)
		r.Post("/assignments/{id}/delivery", h.Deliver)
		r.Get("/assignments/{id}/delivery", h.GetDelivery)
		r.Post("/assignments/{id}/evaluation", h.Evaluate)
		r.Get("/assignments/{id}/evaluation", h.GetEvaluation)

		r.Post("/works", h.CreateWork)
		r.Get("/works/{id}", h.GetWork)
		r.Get("/works/{id}/assignments", h.ListAssignmentsByWork)

		r.Post("/spaces", h.CreateSpace)
		r.Post("/spaces/{id}/students", h.EnrollStudents)
		r.Get("/spaces/{id}/works", h.ListWorksBySpace)

		r.Post("/students", h.CreateStudent)
		r.Get("/students/{id}/assignments", h.ListAssignmentsByStudent)
		r.Get("/students/{id}/evaluations", h.ListEvaluationsByStudent)

		r.Post("/cohorts", h.CreateCohort)
		r.Get("/cohorts", h.ListCohorts)
		r.Get("/cohorts/{id}/students", h.ListStudentsByCohort)
		r.Get("/cohorts/{id}/rankings", h.RankStudents)
		r.Get("/rankings/cohorts", h.RankCohorts)
	})
}

func parsePathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errdefs.ErrValidation
	}
	return id, nil
}
