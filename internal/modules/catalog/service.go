package catalog

import (
	"context"
	"log"

	"travelgoals/internal/cache"
	"travelgoals/internal/domain"
	"travelgoals/internal/repository"
)

// Service serves the customer-facing catalog: destinations, active packages
// from verified vendors, and the vendor roster. Listings go through the
// redis cache when one is configured.
type Service struct {
	destinations *repository.DestinationRepository
	packages     *repository.PackageRepository
	vendors      *repository.VendorRepository
	cache        *cache.RedisCache
}

func NewService(
	destinations *repository.DestinationRepository,
	packages *repository.PackageRepository,
	vendors *repository.VendorRepository,
	cache *cache.RedisCache,
) *Service {
	return &Service{
		destinations: destinations,
		packages:     packages,
		vendors:      vendors,
		cache:        cache,
	}
}

func (s *Service) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	if cached, err := s.cache.GetDestinations(ctx); err != nil {
		log.Printf("level=warn msg=destination cache read failed err=%v", err)
	} else if cached != nil {
		return cached, nil
	}

	out, err := s.destinations.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetDestinations(ctx, out); err != nil {
		log.Printf("level=warn msg=destination cache write failed err=%v", err)
	}
	return out, nil
}

// ListPackages returns the bookable catalog, optionally narrowed to one
// destination. The unfiltered listing is cached.
func (s *Service) ListPackages(ctx context.Context, destinationID int64) ([]domain.Package, error) {
	if destinationID == 0 {
		if cached, err := s.cache.GetPackages(ctx); err != nil {
			log.Printf("level=warn msg=package cache read failed err=%v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	out, err := s.packages.Search(ctx, repository.PackageFilter{DestinationID: destinationID})
	if err != nil {
		return nil, err
	}

	if destinationID == 0 {
		if err := s.cache.SetPackages(ctx, out); err != nil {
			log.Printf("level=warn msg=package cache write failed err=%v", err)
		}
	}
	return out, nil
}

// Search is the query contract used by the AI booking assistant after it
// parses a natural-language request.
func (s *Service) Search(ctx context.Context, f repository.PackageFilter) ([]domain.Package, error) {
	return s.packages.Search(ctx, f)
}

func (s *Service) GetPackage(ctx context.Context, id int64) (*domain.Package, error) {
	return s.packages.GetByID(ctx, id)
}

// ListVendors is the active-vendor roster view.
func (s *Service) ListVendors(ctx context.Context) ([]domain.VendorProfile, error) {
	return s.vendors.ListVerifiedActive(ctx)
}
