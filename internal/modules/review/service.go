package review

import (
	"context"
	"strings"

	"travelgoals/internal/domain"
	"travelgoals/internal/repository"
)

type ReviewRepository interface {
	Create(ctx context.Context, rev *domain.Review) error
	ListByPackage(ctx context.Context, packageID int64) ([]domain.Review, error)
	Summary(ctx context.Context, packageID int64) (*domain.RatingSummary, error)
}

type PackageReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Package, error)
}

// Summarizer condenses a package's reviews into a short paragraph. Nil-safe;
// without one the summarize endpoint is unavailable.
type Summarizer interface {
	SummarizeReviews(ctx context.Context, packageName string, reviews []domain.Review) (string, error)
}

type Service struct {
	reviews    ReviewRepository
	packages   PackageReader
	summarizer Summarizer
}

func NewService(reviews ReviewRepository, packages PackageReader, summarizer Summarizer) *Service {
	return &Service{reviews: reviews, packages: packages, summarizer: summarizer}
}

// Submit records a review. Logged-in reviewers get their identity attached;
// guests can review under a display name.
func (s *Service) Submit(ctx context.Context, userID *int64, userName string, req SubmitReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if _, err := s.packages.GetByID(ctx, req.PackageID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}

	name := strings.TrimSpace(userName)
	if name == "" {
		name = strings.TrimSpace(req.UserName)
	}
	if name == "" {
		name = "Anonymous"
	}

	rev := &domain.Review{
		PackageID: req.PackageID,
		UserID:    userID,
		UserName:  name,
		Rating:    req.Rating,
		Comment:   strings.TrimSpace(req.Comment),
	}
	if err := s.reviews.Create(ctx, rev); err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *Service) ListForPackage(ctx context.Context, packageID int64) ([]domain.Review, error) {
	return s.reviews.ListByPackage(ctx, packageID)
}

func (s *Service) SummaryForPackage(ctx context.Context, packageID int64) (*domain.RatingSummary, error) {
	return s.reviews.Summary(ctx, packageID)
}

// Summarize asks the assistant for a prose digest of a package's reviews.
func (s *Service) Summarize(ctx context.Context, packageID int64) (string, error) {
	pkg, err := s.packages.GetByID(ctx, packageID)
	if err != nil {
		if repository.IsNotFound(err) {
			return "", ErrPackageNotFound
		}
		return "", err
	}

	reviews, err := s.reviews.ListByPackage(ctx, packageID)
	if err != nil {
		return "", err
	}
	if len(reviews) == 0 {
		return "No reviews yet for this package.", nil
	}
	if s.summarizer == nil {
		return "", nil
	}
	return s.summarizer.SummarizeReviews(ctx, pkg.Name, reviews)
}
