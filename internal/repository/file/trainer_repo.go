package file

import (
	"context"

	"gym-admin/internal/domain"
	"gym-admin/internal/repository"
)

// fileTrainerRepository implements repository.TrainerRepository on the Store.
type fileTrainerRepository struct {
	store *Store
}

// NewTrainerRepository creates a trainer repository backed by the shared store.
func NewTrainerRepository(store *Store) repository.TrainerRepository {
	return &fileTrainerRepository{store: store}
}

func (r *fileTrainerRepository) List(ctx context.Context) ([]domain.Trainer, error) {
	var trainers []domain.Trainer
	err := r.store.view(ctx, func(img *image) error {
		c := img.clone()
		trainers = c.Trainers
		return nil
	})
	if err != nil {
		return nil, err
	}
	return trainers, nil
}

func (r *fileTrainerRepository) GetByID(ctx context.Context, id string) (*domain.Trainer, error) {
	var trainer *domain.Trainer
	err := r.store.view(ctx, func(img *image) error {
		for i := range img.Trainers {
			if img.Trainers[i].ID == id {
				t := img.Trainers[i]
				t.Specialties = append([]string{}, t.Specialties...)
				trainer = &t
				return nil
			}
		}
		return repository.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return trainer, nil
}

// Create allocates the next trainer ID and appends the record. The dashboard
// counters start at zero, a zero rating defaults to 5.0 (the add-trainer form
// default), and the specialties list is never nil. Any caller-supplied ID is
// discarded.
func (r *fileTrainerRepository) Create(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error) {
	var created domain.Trainer
	err := r.store.update(ctx, func(img *image) error {
		r.store.trainerSeq++

		created = *trainer
		created.ID = formatID(trainerIDPrefix, r.store.trainerSeq)
		created.Classes = 0
		created.Clients = 0
		if created.Rating == 0 {
			created.Rating = 5.0
		}
		created.Specialties = append([]string{}, created.Specialties...)

		img.Trainers = append(img.Trainers, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update applies a shallow field merge onto the stored record. The record ID
// is immutable; patches cannot touch it.
func (r *fileTrainerRepository) Update(ctx context.Context, id string, patch domain.TrainerPatch) (*domain.Trainer, error) {
	var updated domain.Trainer
	err := r.store.update(ctx, func(img *image) error {
		for i := range img.Trainers {
			if img.Trainers[i].ID == id {
				patch.Apply(&img.Trainers[i])
				img.Trainers[i].ID = id
				updated = img.Trainers[i]
				updated.Specialties = append([]string{}, updated.Specialties...)
				return nil
			}
		}
		return repository.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the record, preserving the relative order of the rest.
// Classes referencing this trainer are intentionally left alone.
func (r *fileTrainerRepository) Delete(ctx context.Context, id string) error {
	return r.store.update(ctx, func(img *image) error {
		for i := range img.Trainers {
			if img.Trainers[i].ID == id {
				img.Trainers = append(img.Trainers[:i], img.Trainers[i+1:]...)
				return nil
			}
		}
		return repository.ErrNotFound
	})
}
