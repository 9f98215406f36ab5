package service

import (
	"context"
	"fmt"

	"gym-admin/internal/domain"
	"gym-admin/internal/repository"
)

// TrainerService is the policy layer over the trainer collection.
type TrainerService interface {
	List(ctx context.Context) ([]domain.Trainer, error)
	Get(ctx context.Context, id string) (*domain.Trainer, error)
	Create(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error)
	Update(ctx context.Context, id string, patch domain.TrainerPatch) (*domain.Trainer, error)
	Delete(ctx context.Context, id string) error
}

type trainerService struct {
	trainerRepo repository.TrainerRepository
}

// NewTrainerService creates a new instance of trainerService.
func NewTrainerService(trainerRepo repository.TrainerRepository) TrainerService {
	return &trainerService{trainerRepo: trainerRepo}
}

func (s *trainerService) List(ctx context.Context) ([]domain.Trainer, error) {
	return s.trainerRepo.List(ctx)
}

func (s *trainerService) Get(ctx context.Context, id string) (*domain.Trainer, error) {
	return s.trainerRepo.GetByID(ctx, id)
}

func (s *trainerService) Create(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error) {
	if trainer == nil || trainer.Name == "" {
		return nil, fmt.Errorf("%w: trainer name is required", ErrInvalidInput)
	}
	if trainer.Rating < 0 || trainer.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalidInput)
	}
	return s.trainerRepo.Create(ctx, trainer)
}

func (s *trainerService) Update(ctx context.Context, id string, patch domain.TrainerPatch) (*domain.Trainer, error) {
	if patch.Name != nil && *patch.Name == "" {
		return nil, fmt.Errorf("%w: trainer name cannot be cleared", ErrInvalidInput)
	}
	if patch.Rating != nil && (*patch.Rating < 0 || *patch.Rating > 5) {
		return nil, fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalidInput)
	}
	return s.trainerRepo.Update(ctx, id, patch)
}

// Delete removes a trainer. Classes that still reference the trainer keep
// their instructorId; nothing cascades.
func (s *trainerService) Delete(ctx context.Context, id string) error {
	return s.trainerRepo.Delete(ctx, id)
}
