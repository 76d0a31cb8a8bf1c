package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"turismo-api/internal/common/pagination"
	"turismo-api/internal/domain/entity"
	"turismo-api/internal/repository"
)

// PageSize is the fixed window for review listings.
const PageSize = 10

// Scope is the query context for reviews: a specific venue, or all reviews.
type Scope struct {
	Kind    entity.Kind
	VenueID int64
}

// AllReviews is the unscoped query context.
var AllReviews = Scope{}

// IsAll reports whether the scope covers every review.
func (s Scope) IsAll() bool {
	return s.VenueID == 0
}

// Sort orders for review listings.
type Sort string

const (
	SortDateDesc   Sort = "date_desc"
	SortDateAsc    Sort = "date_asc"
	SortRatingDesc Sort = "rating_desc"
	SortRatingAsc  Sort = "rating_asc"
)

// ParseSort maps a query-string value to a Sort. An empty value defaults to
// newest first.
func ParseSort(s string) (Sort, error) {
	switch Sort(s) {
	case "":
		return SortDateDesc, nil
	case SortDateDesc, SortDateAsc, SortRatingDesc, SortRatingAsc:
		return Sort(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSort, s)
	}
}

// Filter narrows a review listing.
type Filter struct {
	Rating int // 0 matches any rating, 1..5 matches exactly
}

// QueryResult is one page of a filtered, sorted review listing.
type QueryResult struct {
	Items      []*entity.Review
	Pagination pagination.Metadata
}

// SubmitInput represents the input parameters for submitting a review.
type SubmitInput struct {
	Rating   int
	Title    string
	Body     string
	AuthorID *int64
}

// Service provides review use cases. It owns the two-phase submit protocol
// and the read paths built on the association index.
type Service struct {
	Repo  repository.ReviewRepository
	Links repository.ReviewLinkRepository
}

// Submit validates and creates a review, linking it to the scoped venue.
// When the scope names a venue and linking fails after the review row was
// created, the review is deleted again so callers never observe a review
// that silently failed to link. Returns ErrConsistency when that
// compensating delete fails too.
func (s *Service) Submit(ctx context.Context, scope Scope, in SubmitInput) (*entity.Review, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "is required"}
	}
	if strings.TrimSpace(in.Body) == "" {
		return nil, &entity.ValidationError{Field: "body", Message: "is required"}
	}
	if !entity.ValidRating(in.Rating) {
		return nil, &entity.ValidationError{Field: "rating", Message: "must be between 1 and 5"}
	}

	text, err := EncodeText(in.Title, in.Body)
	if err != nil {
		return nil, err
	}

	r := &entity.Review{
		Rating:     in.Rating,
		Text:       text,
		AuthoredOn: today(),
		AuthorID:   in.AuthorID,
	}
	if err := s.Repo.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	if scope.IsAll() {
		return r, nil
	}

	if err := s.Links.Link(ctx, scope.Kind, scope.VenueID, r.ID); err != nil {
		if delErr := s.Repo.Delete(ctx, r.ID); delErr != nil {
			slog.Error("compensating delete failed after link failure",
				slog.Int64("review_id", r.ID),
				slog.String("link_error", err.Error()),
				slog.String("delete_error", delErr.Error()))
			return nil, fmt.Errorf("%w: link failed: %v", ErrConsistency, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrLinkFailed, err)
	}
	return r, nil
}

// Remove unlinks and deletes a review. An unlink failure is logged and the
// delete proceeds anyway: a junction row pointing at a deleted review is
// harmless to readers, while a review the user asked to remove staying
// visible is not. The sweeper clears such rows later.
func (s *Service) Remove(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidReviewID
	}

	if err := s.Links.Unlink(ctx, id); err != nil {
		slog.Warn("unlink failed, deleting review anyway",
			slog.Int64("review_id", id),
			slog.String("error", err.Error()))
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrReviewNotFound
		}
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}

// Query returns one page of the scoped reviews, filtered and sorted.
// An out-of-range page clamps to the nearest valid page instead of erroring.
func (s *Service) Query(ctx context.Context, scope Scope, filter Filter, order Sort, page int) (*QueryResult, error) {
	reviews, err := s.scopedReviews(ctx, scope)
	if err != nil {
		return nil, err
	}

	if filter.Rating != 0 {
		filtered := make([]*entity.Review, 0, len(reviews))
		for _, r := range reviews {
			if r.Rating == filter.Rating {
				filtered = append(filtered, r)
			}
		}
		reviews = filtered
	}

	sortReviews(reviews, order)

	total := int64(len(reviews))
	totalPages := pagination.CalculateTotalPages(total, PageSize)
	page = pagination.ClampPage(page, totalPages)

	return &QueryResult{
		Items: pagination.Slice(reviews, page, PageSize),
		Pagination: pagination.Metadata{
			Total:      total,
			Page:       page,
			Limit:      PageSize,
			TotalPages: totalPages,
		},
	}, nil
}

// StatisticsFor computes rating statistics for a venue from its currently
// linked reviews. A venue with no links (including one that no longer
// exists) yields the zero state, not an error.
func (s *Service) StatisticsFor(ctx context.Context, kind entity.Kind, venueID int64) (entity.RatingStats, error) {
	ids, err := s.Links.ReviewIDsFor(ctx, kind, venueID)
	if err != nil {
		return entity.RatingStats{}, fmt.Errorf("resolve review ids: %w", err)
	}
	if len(ids) == 0 {
		return entity.ZeroStats(), nil
	}

	reviews, err := s.Repo.GetByIDs(ctx, ids)
	if err != nil {
		return entity.RatingStats{}, fmt.Errorf("fetch reviews: %w", err)
	}
	if len(reviews) == 0 {
		return entity.ZeroStats(), nil
	}

	stats := entity.ZeroStats()
	sum := 0
	for _, r := range reviews {
		stats.Distribution[r.Rating]++
		sum += r.Rating
	}
	stats.Count = len(reviews)
	stats.Average = math.Round(float64(sum)/float64(len(reviews))*10) / 10
	return stats, nil
}

// scopedReviews resolves the review set for a scope. Venue scopes use the
// two-step protocol: resolve ids from the junction index, then fetch rows.
// Zero associations short-circuit without touching the review store.
func (s *Service) scopedReviews(ctx context.Context, scope Scope) ([]*entity.Review, error) {
	if scope.IsAll() {
		reviews, err := s.Repo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list reviews: %w", err)
		}
		return reviews, nil
	}

	ids, err := s.Links.ReviewIDsFor(ctx, scope.Kind, scope.VenueID)
	if err != nil {
		return nil, fmt.Errorf("resolve review ids: %w", err)
	}
	if len(ids) == 0 {
		return []*entity.Review{}, nil
	}

	reviews, err := s.Repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch reviews: %w", err)
	}
	return reviews, nil
}

// sortReviews orders in place. Ties break by id descending so repeated
// queries page consistently.
func sortReviews(reviews []*entity.Review, order Sort) {
	sort.SliceStable(reviews, func(i, j int) bool {
		a, b := reviews[i], reviews[j]
		switch order {
		case SortDateAsc:
			if !a.AuthoredOn.Equal(b.AuthoredOn) {
				return a.AuthoredOn.Before(b.AuthoredOn)
			}
		case SortRatingDesc:
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
		case SortRatingAsc:
			if a.Rating != b.Rating {
				return a.Rating < b.Rating
			}
		default: // SortDateDesc
			if !a.AuthoredOn.Equal(b.AuthoredOn) {
				return a.AuthoredOn.After(b.AuthoredOn)
			}
		}
		return a.ID > b.ID
	})
}

// today returns the current calendar date at UTC midnight. Authored-on
// carries date precision only; time of day is dropped on submit.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
