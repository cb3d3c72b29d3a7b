package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/finsaarthi/scholarhub/internal/app/models"
	"github.com/finsaarthi/scholarhub/internal/app/models/dto"
	"github.com/finsaarthi/scholarhub/internal/pkg/apperrors"
	"github.com/finsaarthi/scholarhub/internal/pkg/validation"
	"github.com/finsaarthi/scholarhub/internal/store"
)

// Sort keys accepted by scholarship listings. Exactly one is applied at
// a time; ties keep collection order (stable sort).
const (
	SortByDeadline = "deadline"
	SortByAmount   = "amount"
	SortByTitle    = "title"
)

// ScholarshipService defines the interface for scholarship operations
type ScholarshipService interface {
	Create(req dto.CreateScholarshipRequest) (models.Scholarship, error)
	Update(id string, req dto.UpdateScholarshipRequest) (models.Scholarship, error)
	Delete(id string) error
	GetByID(id string) (models.Scholarship, error)
	// ListActive applies the search/category/sort contract over active
	// scholarships only.
	ListActive(query dto.ScholarshipListQuery) []models.Scholarship
	// ListAll returns every scholarship, inactive included, for the
	// admin panel.
	ListAll() []models.Scholarship
}

// scholarshipServiceImpl implements the ScholarshipService interface
type scholarshipServiceImpl struct {
	store *store.Store
}

// NewScholarshipService creates a new scholarship service instance
func NewScholarshipService(st *store.Store) ScholarshipService {
	return &scholarshipServiceImpl{store: st}
}

// Create validates and stores a new scholarship.
func (s *scholarshipServiceImpl) Create(req dto.CreateScholarshipRequest) (models.Scholarship, error) {
	category := models.Category(req.Category)
	if err := validateScholarshipFields(req.Amount, req.Deadline, category); err != nil {
		return models.Scholarship{}, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	sch := s.store.AddScholarship(models.Scholarship{
		Title:        req.Title,
		Amount:       req.Amount,
		Eligibility:  req.Eligibility,
		Deadline:     req.Deadline,
		Description:  req.Description,
		Requirements: req.Requirements,
		Provider:     req.Provider,
		Category:     category,
		IsActive:     isActive,
	})
	return sch, nil
}

// Update validates and merges a partial scholarship update.
func (s *scholarshipServiceImpl) Update(id string, req dto.UpdateScholarshipRequest) (models.Scholarship, error) {
	patch := models.ScholarshipPatch{
		Title:        req.Title,
		Amount:       req.Amount,
		Eligibility:  req.Eligibility,
		Deadline:     req.Deadline,
		Description:  req.Description,
		Requirements: req.Requirements,
		Provider:     req.Provider,
		IsActive:     req.IsActive,
	}

	if req.Amount != nil && *req.Amount <= 0 {
		return models.Scholarship{}, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidationFailed)
	}
	if req.Deadline != nil && !validation.IsValidDate(*req.Deadline) {
		return models.Scholarship{}, fmt.Errorf("%w: deadline must be YYYY-MM-DD", apperrors.ErrValidationFailed)
	}
	if req.Category != nil {
		category := models.Category(*req.Category)
		if !category.IsValid() {
			return models.Scholarship{}, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidationFailed, *req.Category)
		}
		patch.Category = &category
	}

	return s.store.UpdateScholarship(id, patch)
}

// Delete removes the scholarship; the store cascades to its
// applications.
func (s *scholarshipServiceImpl) Delete(id string) error {
	return s.store.DeleteScholarship(id)
}

// GetByID returns the scholarship with the given id.
func (s *scholarshipServiceImpl) GetByID(id string) (models.Scholarship, error) {
	return s.store.FindScholarshipByID(id)
}

// ListActive filters and sorts active scholarships. Search matches
// case-insensitively against title, description and provider; category
// filter is exact-match; at most one sort key is applied.
func (s *scholarshipServiceImpl) ListActive(query dto.ScholarshipListQuery) []models.Scholarship {
	scholarships := s.store.ListActiveScholarships()

	filtered := scholarships[:0:0]
	search := strings.ToLower(strings.TrimSpace(query.Search))
	for _, sch := range scholarships {
		if search != "" && !matchesSearch(sch, search) {
			continue
		}
		if query.Category != "" && string(sch.Category) != query.Category {
			continue
		}
		filtered = append(filtered, sch)
	}

	sortScholarships(filtered, query.SortBy)
	return filtered
}

// ListAll returns every scholarship in storage order.
func (s *scholarshipServiceImpl) ListAll() []models.Scholarship {
	return s.store.ListScholarships()
}

func matchesSearch(sch models.Scholarship, search string) bool {
	return strings.Contains(strings.ToLower(sch.Title), search) ||
		strings.Contains(strings.ToLower(sch.Description), search) ||
		strings.Contains(strings.ToLower(sch.Provider), search)
}

// sortScholarships applies one sort key in place. Stable sort keeps
// collection order on ties; an empty key leaves storage order alone.
func sortScholarships(scholarships []models.Scholarship, sortBy string) {
	switch sortBy {
	case SortByAmount:
		sort.SliceStable(scholarships, func(i, j int) bool {
			return scholarships[i].Amount > scholarships[j].Amount
		})
	case SortByDeadline:
		sort.SliceStable(scholarships, func(i, j int) bool {
			return deadlineOrBackstop(scholarships[i]).Before(deadlineOrBackstop(scholarships[j]))
		})
	case SortByTitle:
		sort.SliceStable(scholarships, func(i, j int) bool {
			return scholarships[i].Title < scholarships[j].Title
		})
	}
}

// deadlineOrBackstop pushes unparsable deadlines to the end of an
// ascending sort.
func deadlineOrBackstop(sch models.Scholarship) time.Time {
	if t, ok := sch.DeadlineTime(); ok {
		return t
	}
	return time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
}

func validateScholarshipFields(amount float64, deadline string, category models.Category) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidationFailed)
	}
	if !validation.IsValidDate(deadline) {
		return fmt.Errorf("%w: deadline must be YYYY-MM-DD", apperrors.ErrValidationFailed)
	}
	if !category.IsValid() {
		return fmt.Errorf("%w: unknown category %q, use %q for anything outside the known set", apperrors.ErrValidationFailed, category, models.CategoryOther)
	}
	return nil
}
