package store

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fairlens/internal/models"
)

// ReviewStore is the session-scoped, append-only collection of submitted
// reviews. It is constructed once at startup and injected into the handlers
// that need it; records live in insertion order for the process lifetime and
// are never persisted.
type ReviewStore interface {
	Append(review models.Review) models.Review
	All() []models.Review
	Len() int
	Seed()
}

type reviewStore struct {
	mu      sync.RWMutex
	reviews []models.Review
	logger  *zap.Logger
}

func NewReviewStore(logger *zap.Logger) ReviewStore {
	return &reviewStore{logger: logger}
}

// Append assigns the record an internal ID and stores it. Validation beyond
// what the handlers enforce is deliberately absent.
func (s *reviewStore) Append(review models.Review) models.Review {
	review.ID = uuid.NewString()
	s.mu.Lock()
	s.reviews = append(s.reviews, review)
	s.mu.Unlock()
	s.logger.Debug("Review stored",
		zap.String("id", review.ID),
		zap.String("employee_id", review.EmployeeID))
	return review
}

// All returns a snapshot of the full session history in insertion order.
func (s *reviewStore) All() []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}

func (s *reviewStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reviews)
}

// Seed preloads a small starter dataset so the fairness views have
// something to show on a fresh session.
func (s *reviewStore) Seed() {
	seed := []models.Review{
		{EmployeeID: "E001", Role: "Manager", Gender: "F", KPIRating: 4, CompetencyRating: 4, InitiativeRating: 4, OverallRating: 4, Comment: "Strong potential; team player."},
		{EmployeeID: "E002", Role: "Manager", Gender: "M", KPIRating: 3, CompetencyRating: 4, InitiativeRating: 3, OverallRating: 3, Comment: "Good attitude; average execution."},
		{EmployeeID: "E003", Role: "Manager", Gender: "F", KPIRating: 4, CompetencyRating: 3, InitiativeRating: 3, OverallRating: 3, Comment: "Works well under pressure; sometimes too energetic."},
		{EmployeeID: "E004", Role: "Manager", Gender: "M", KPIRating: 3, CompetencyRating: 3, InitiativeRating: 3, OverallRating: 3, Comment: "Not a good cultural fit. Hard worker though."},
		{EmployeeID: "E005", Role: "Manager", Gender: "F", KPIRating: 4, CompetencyRating: 4, InitiativeRating: 4, OverallRating: 4, Comment: "Great attitude; on-time delivery."},
		{EmployeeID: "E009", Role: "Analyst", Gender: "F", KPIRating: 3, CompetencyRating: 3, InitiativeRating: 3, OverallRating: 3, Comment: "Positive without evidence."},
	}
	for _, r := range seed {
		s.Append(r)
	}
}
