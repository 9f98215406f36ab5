package service

import (
	"context"
	"fmt"

	"gym-admin/internal/domain"
	"gym-admin/internal/repository"
)

// ClassService is the policy layer over the class collection.
//
// The enrollment bound (0 <= enrolled <= capacity) is enforced HERE, not in
// the store: the persistence layer stays schema-agnostic while every write
// path through the API gets the check. InstructorID is deliberately not
// validated against the trainers collection.
type ClassService interface {
	List(ctx context.Context) ([]domain.Class, error)
	Get(ctx context.Context, id string) (*domain.Class, error)
	Create(ctx context.Context, class *domain.Class) (*domain.Class, error)
	Update(ctx context.Context, id string, patch domain.ClassPatch) (*domain.Class, error)
	Delete(ctx context.Context, id string) error
}

type classService struct {
	classRepo repository.ClassRepository
}

// NewClassService creates a new instance of classService.
func NewClassService(classRepo repository.ClassRepository) ClassService {
	return &classService{classRepo: classRepo}
}

func (s *classService) List(ctx context.Context) ([]domain.Class, error) {
	return s.classRepo.List(ctx)
}

func (s *classService) Get(ctx context.Context, id string) (*domain.Class, error) {
	return s.classRepo.GetByID(ctx, id)
}

func (s *classService) Create(ctx context.Context, class *domain.Class) (*domain.Class, error) {
	if class == nil || class.Name == "" {
		return nil, fmt.Errorf("%w: class name is required", ErrInvalidInput)
	}
	if class.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity cannot be negative", ErrInvalidInput)
	}
	// Enrolled and attendees are forced to zero/empty by the store on create,
	// so a fresh class trivially satisfies the enrollment bound.
	return s.classRepo.Create(ctx, class)
}

func (s *classService) Update(ctx context.Context, id string, patch domain.ClassPatch) (*domain.Class, error) {
	if patch.Name != nil && *patch.Name == "" {
		return nil, fmt.Errorf("%w: class name cannot be cleared", ErrInvalidInput)
	}
	if patch.Capacity != nil && *patch.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity cannot be negative", ErrInvalidInput)
	}
	if patch.Enrolled != nil && *patch.Enrolled < 0 {
		return nil, fmt.Errorf("%w: enrolled cannot be negative", ErrInvalidInput)
	}

	// Check the enrollment bound against the state the patch would produce.
	current, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next := *current
	patch.Apply(&next)
	if next.Enrolled > next.Capacity {
		return nil, fmt.Errorf("%w: enrolled (%d) cannot exceed capacity (%d)", ErrInvalidInput, next.Enrolled, next.Capacity)
	}

	return s.classRepo.Update(ctx, id, patch)
}

func (s *classService) Delete(ctx context.Context, id string) error {
	return s.classRepo.Delete(ctx, id)
}
