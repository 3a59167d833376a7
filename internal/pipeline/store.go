// internal/pipeline/store.go
//
// Package pipeline is the headless engine behind the kanban board: it owns
// the in-memory deal collection and the fixed stage catalog, and exposes the
// two commands (MoveDeal, AddDeal) and two queries (Columns, Summary) that
// any host, whether the HTTP API or a test harness, drives it with.
package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/nightmare5831/sales-pipeline/internal/models"
)

// PlaceholderProductImage is attached to the product seeded by AddDeal;
// real product imagery arrives from an external editing surface.
const PlaceholderProductImage = "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=100&h=100&fit=crop"

// StageDefinition is one entry of the stage catalog supplied at construction.
type StageDefinition struct {
	ID    models.PipelineStage `json:"id"`
	Title string               `json:"title"`
}

// InvalidStageError is returned by MoveDeal when the target stage is not in
// the configured catalog. The store is left unchanged.
type InvalidStageError struct {
	Stage models.PipelineStage
}

func (e *InvalidStageError) Error() string {
	return fmt.Sprintf("invalid pipeline stage %q", string(e.Stage))
}

// AddDealInput is the record the add-deal form supplies. Validation of the
// raw form values (e.g. a negative budget) belongs to the caller; the store
// keeps values as given.
type AddDealInput struct {
	Stage             models.PipelineStage
	MasterOrderNumber string
	Contact           string
	InterestedProduct string
	EstimatedBudget   float64
}

// Store holds the deal sequence in insertion order plus the stage catalog.
// Every operation is a complete read-modify-write of the sequence, so a
// single mutex is the exclusive-access boundary for multi-threaded hosts.
type Store struct {
	mu     sync.Mutex
	stages []StageDefinition
	known  map[models.PipelineStage]bool
	deals  []models.Deal
}

// New builds a store over the given stage catalog. The catalog must be
// non-empty with unique ids and is immutable for the store's lifetime.
func New(stages []StageDefinition) (*Store, error) {
	if len(stages) == 0 {
		return nil, errors.New("stage catalog must not be empty")
	}

	known := make(map[models.PipelineStage]bool, len(stages))
	catalog := make([]StageDefinition, len(stages))
	for i, stage := range stages {
		if known[stage.ID] {
			return nil, fmt.Errorf("duplicate stage id %q", string(stage.ID))
		}
		known[stage.ID] = true
		catalog[i] = stage
	}

	return &Store{
		stages: catalog,
		known:  known,
	}, nil
}

// Stages returns the catalog in declaration order.
func (s *Store) Stages() []StageDefinition {
	out := make([]StageDefinition, len(s.stages))
	copy(out, s.stages)
	return out
}

// ValidStage reports whether the given stage is part of the catalog.
func (s *Store) ValidStage(stage models.PipelineStage) bool {
	return s.known[stage]
}

// MoveDeal replaces the matched deal's stage with targetStage, leaving every
// other field untouched. An unknown deal id is a silent no-op (that is how a
// drag dropped outside any column resolves) and the returned deal is nil.
// An unknown target stage fails with *InvalidStageError before any mutation.
func (s *Store) MoveDeal(dealID string, targetStage models.PipelineStage) (*models.Deal, error) {
	if !s.known[targetStage] {
		return nil, &InvalidStageError{Stage: targetStage}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.deals {
		if s.deals[i].ID == dealID {
			s.deals[i].Stage = targetStage
			moved := s.deals[i]
			return &moved, nil
		}
	}
	return nil, nil
}

// AddDeal creates a deal from the form input and appends it to the sequence.
// The contact and a single interested product are seeded from the supplied
// names; every financial aggregate starts at zero until the external editing
// surface fills it in.
func (s *Store) AddDeal(input AddDealInput) models.Deal {
	deal := models.Deal{
		ID:                uuid.NewString(),
		MasterOrderNumber: input.MasterOrderNumber,
		Stage:             input.Stage,
		Contact: models.Contact{
			ID:       uuid.NewString(),
			Name:     input.Contact,
			Initials: Initials(input.Contact),
		},
		InterestedProducts: []models.Product{
			{
				ID:       uuid.NewString(),
				Name:     input.InterestedProduct,
				Quantity: 1,
				Price:    0,
				ImageURL: PlaceholderProductImage,
			},
		},
		EstimatedBudget: input.EstimatedBudget,
		Badges:          []models.DealBadge{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.deals = append(s.deals, deal)
	return deal
}

// Columns derives one column per catalog stage, in declaration order. Each
// column carries the deals whose stage matches (keeping their relative
// insertion order), the count, and the sum of totalValue over them. The view
// is recomputed on every call.
func (s *Store) Columns() []models.PipelineColumn {
	s.mu.Lock()
	defer s.mu.Unlock()

	columns := make([]models.PipelineColumn, 0, len(s.stages))
	for _, stage := range s.stages {
		column := models.PipelineColumn{
			ID:    stage.ID,
			Title: stage.Title,
			Deals: []models.Deal{},
		}
		for _, deal := range s.deals {
			if deal.Stage == stage.ID {
				column.Deals = append(column.Deals, deal)
				column.TotalValue += deal.TotalValue
			}
		}
		column.DealCount = len(column.Deals)
		columns = append(columns, column)
	}
	return columns
}

// Summary derives the global aggregate across all deals.
func (s *Store) Summary() models.PipelineSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := models.PipelineSummary{DealCount: len(s.deals)}
	for _, deal := range s.deals {
		summary.TotalPipeline += deal.TotalValue
		summary.Margin += deal.Margin
	}
	return summary
}

// Deals returns a snapshot of the full sequence in insertion order.
func (s *Store) Deals() []models.Deal {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Deal, len(s.deals))
	copy(out, s.deals)
	return out
}

// Deal looks up a single deal by id.
func (s *Store) Deal(id string) (models.Deal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, deal := range s.deals {
		if deal.ID == id {
			return deal, true
		}
	}
	return models.Deal{}, false
}

// PaidRatio returns paid/totalPaid for the payment progress bar, or 0 when
// totalPaid is zero so the ratio never surfaces as NaN or Inf.
func PaidRatio(deal models.Deal) float64 {
	if deal.TotalPaid == 0 {
		return 0
	}
	return deal.Paid / deal.TotalPaid
}

// MarginTier classifies marginPercentage for display: >=20 high, >=15
// medium, below that low.
func MarginTier(deal models.Deal) models.MarginTier {
	switch {
	case deal.MarginPercentage >= 20:
		return models.MarginTierHigh
	case deal.MarginPercentage >= 15:
		return models.MarginTierMedium
	default:
		return models.MarginTierLow
	}
}

// Initials concatenates the first rune of each whitespace-separated token of
// the contact name, case preserved. "John Smith" -> "JS", "Madonna" -> "M",
// "" -> "".
func Initials(name string) string {
	var b strings.Builder
	for _, token := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(token)
		b.WriteRune(r)
	}
	return b.String()
}
