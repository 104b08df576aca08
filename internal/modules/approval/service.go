package approval

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"travelgoals/internal/domain"
)

// CacheInvalidator drops cached catalog listings after a submission goes
// live. Nil-safe so tests and cacheless deployments can pass nil.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Service decides vendor submissions. Approval copies the pending row into
// the live table and marks the submission in one transaction, so a crash
// between the two steps can never leave an approved submission without
// its live counterpart.
type Service struct {
	db    *gorm.DB
	cache CacheInvalidator
}

func NewService(db *gorm.DB, cache CacheInvalidator) *Service {
	return &Service{db: db, cache: cache}
}

func (s *Service) ApproveDestination(ctx context.Context, id, adminID int64, notes string) (*domain.PendingDestination, error) {
	var p domain.PendingDestination
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if p.Decided() {
			return ErrAlreadyDecided
		}
		if err := tx.Create(p.Materialize()).Error; err != nil {
			return err
		}
		p.Decide(domain.SubmissionApproved, adminID, notes, time.Now().UTC())
		return tx.Save(&p).Error
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &p, nil
}

func (s *Service) RejectDestination(ctx context.Context, id, adminID int64, notes string) (*domain.PendingDestination, error) {
	if strings.TrimSpace(notes) == "" {
		return nil, ErrNotesRequired
	}
	var p domain.PendingDestination
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if p.Decided() {
			return ErrAlreadyDecided
		}
		p.Decide(domain.SubmissionRejected, adminID, notes, time.Now().UTC())
		return tx.Save(&p).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) ApprovePackage(ctx context.Context, id, adminID int64, notes string) (*domain.PendingPackage, error) {
	var p domain.PendingPackage
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if p.Decided() {
			return ErrAlreadyDecided
		}
		if err := tx.Create(p.Materialize()).Error; err != nil {
			return err
		}
		p.Decide(domain.SubmissionApproved, adminID, notes, time.Now().UTC())
		return tx.Save(&p).Error
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &p, nil
}

func (s *Service) RejectPackage(ctx context.Context, id, adminID int64, notes string) (*domain.PendingPackage, error) {
	if strings.TrimSpace(notes) == "" {
		return nil, ErrNotesRequired
	}
	var p domain.PendingPackage
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if p.Decided() {
			return ErrAlreadyDecided
		}
		p.Decide(domain.SubmissionRejected, adminID, notes, time.Now().UTC())
		return tx.Save(&p).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("approval: cache invalidation failed: %v", err)
	}
}
