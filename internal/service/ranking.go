package service

import (
	"context"
	"math"
	"sort"

	"github.com/google/uuid"

	"coursework_service/internal/domain"
	"coursework_service/internal/errdefs"
	"coursework_service/pkg/ctxdata"
)

// Reports are on a fixed 20-point basis regardless of per-work scales; two
// averages closer than rankTolerance count as a tie; the pass mark is 10/20.
const (
	reportingBasis = 20.0
	rankTolerance  = 0.01
	passMark       = 10.0
)

type RankingServiceInterface interface {
	RankStudents(ctx context.Context, cohortID uuid.UUID) ([]domain.StudentRanking, error)
	RankCohorts(ctx context.Context) ([]domain.CohortRanking, error)
}

// rankingService recomputes every report from current data on each call.
// Nothing here mutates or caches.
type rankingService struct {
	cohortRepo     CohortRepository
	studentRepo    StudentRepository
	evaluationRepo EvaluationRepository
}

func NewRankingService(
	cohortRepo CohortRepository,
	studentRepo StudentRepository,
	evaluationRepo EvaluationRepository,
) RankingServiceInterface {
	return &rankingService{
		cohortRepo:     cohortRepo,
		studentRepo:    studentRepo,
		evaluationRepo: evaluationRepo,
	}
}

// RankStudents ranks one cohort's students with standard competition
// ranking: tied entries share a rank and the next distinct rank is the
// 1-based position, e.g. averages 95.5, 95.5, 92.0, 88.5, 88.5, 85.0 rank
// as 1, 1, 3, 4, 4, 6. Students without any evaluation are excluded.
func (s *rankingService) RankStudents(ctx context.Context, cohortID uuid.UUID) ([]domain.StudentRanking, error) {
	if _, ok := ctxdata.GetIdentity(ctx); !ok {
		return nil, errdefs.ErrPermissionDenied
	}

	if _, err := s.cohortRepo.GetByID(ctx, cohortID); err != nil {
		return nil, err
	}
	students, err := s.studentRepo.ListByCohort(ctx, cohortID)
	if err != nil {
		return nil, err
	}
	facts, err := s.evaluationRepo.ListFactsByCohort(ctx, cohortID)
	if err != nil {
		return nil, err
	}

	return RankStudentEntries(students, facts), nil
}

// RankCohorts ranks every cohort that has at least one evaluation,
// descending by cohort average with plain sequential ranks. Unlike the
// per-student report, tied cohorts do NOT share a rank; the two schemes are
// intentionally different and must not be unified.
func (s *rankingService) RankCohorts(ctx context.Context) ([]domain.CohortRanking, error) {
	if _, ok := ctxdata.GetIdentity(ctx); !ok {
		return nil, errdefs.ErrPermissionDenied
	}

	cohorts, err := s.cohortRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	facts, err := s.evaluationRepo.ListAllFacts(ctx)
	if err != nil {
		return nil, err
	}

	factsByCohort := make(map[uuid.UUID][]domain.EvaluationFact)
	for _, f := range facts {
		factsByCohort[f.CohortID] = append(factsByCohort[f.CohortID], f)
	}

	var rankings []domain.CohortRanking
	for _, cohort := range cohorts {
		cohortFacts := factsByCohort[cohort.ID]
		if len(cohortFacts) == 0 {
			continue
		}
		students, err := s.studentRepo.ListByCohort(ctx, cohort.ID)
		if err != nil {
			return nil, err
		}
		rankings = append(rankings, cohortStats(cohort, len(students), cohortFacts))
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].Average > rankings[j].Average
	})
	for i := range rankings {
		rankings[i].Rank = i + 1
	}

	return rankings, nil
}

type totals struct {
	points float64
	scale  float64
	count  int
}

// weightedAverage is the scale-weighted mean projected onto the reporting
// basis: 20 * sum(score) / sum(scale). Not a mean of per-item percentages.
func (t totals) weightedAverage() float64 {
	if t.scale <= 0 {
		return 0
	}
	return reportingBasis * t.points / t.scale
}

func accumulate(facts []domain.EvaluationFact) map[uuid.UUID]totals {
	byStudent := make(map[uuid.UUID]totals)
	for _, f := range facts {
		t := byStudent[f.StudentID]
		t.points += f.Score
		t.scale += f.Scale
		t.count++
		byStudent[f.StudentID] = t
	}
	return byStudent
}

// RankStudentEntries is the pure ranking computation: aggregation, ordering
// and competition ranks from a snapshot of students and evaluation facts.
func RankStudentEntries(students []*domain.Student, facts []domain.EvaluationFact) []domain.StudentRanking {
	byStudent := accumulate(facts)

	entries := make([]domain.StudentRanking, 0, len(byStudent))
	for _, student := range students {
		t, ok := byStudent[student.ID]
		if !ok || t.count == 0 {
			continue
		}
		entries = append(entries, domain.StudentRanking{
			StudentID:       student.ID,
			FirstName:       student.FirstName,
			LastName:        student.LastName,
			Average:         t.weightedAverage(),
			TotalPoints:     t.points,
			TotalScale:      t.scale,
			EvaluationCount: t.count,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Average != entries[j].Average {
			return entries[i].Average > entries[j].Average
		}
		if entries[i].LastName != entries[j].LastName {
			return entries[i].LastName < entries[j].LastName
		}
		return entries[i].FirstName < entries[j].FirstName
	})

	rank := 1
	for i := range entries {
		if i == 0 {
			entries[i].Rank = 1
		} else if math.Abs(entries[i].Average-entries[i-1].Average) < rankTolerance {
			entries[i].Rank = rank
		} else {
			rank = i + 1
			entries[i].Rank = rank
		}
	}

	for i := range entries {
		entries[i].Average = round1(entries[i].Average)
		entries[i].TotalPoints = round1(entries[i].TotalPoints)
	}

	return entries
}

func cohortStats(cohort *domain.Cohort, studentCount int, facts []domain.EvaluationFact) domain.CohortRanking {
	var overall totals
	for _, f := range facts {
		overall.points += f.Score
		overall.scale += f.Scale
		overall.count++
	}

	var averages []float64
	for _, t := range accumulate(facts) {
		if avg := t.weightedAverage(); avg > 0 {
			averages = append(averages, avg)
		}
	}

	best, worst := 0.0, 0.0
	passed := 0
	for i, avg := range averages {
		if i == 0 || avg > best {
			best = avg
		}
		if i == 0 || avg < worst {
			worst = avg
		}
		if avg >= passMark {
			passed++
		}
	}

	passRate := 0.0
	if studentCount > 0 {
		passRate = 100 * float64(passed) / float64(studentCount)
	}

	return domain.CohortRanking{
		CohortID:        cohort.ID,
		Code:            cohort.Code,
		Label:           cohort.Label,
		Year:            cohort.Year,
		StudentCount:    studentCount,
		EvaluationCount: overall.count,
		Average:         round1(overall.weightedAverage()),
		BestAverage:     round1(best),
		WorstAverage:    round1(worst),
		PassRate:        round1(passRate),
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
