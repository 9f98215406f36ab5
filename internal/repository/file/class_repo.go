package file

import (
	"context"

	"gym-admin/internal/domain"
	"gym-admin/internal/repository"
)

// fileClassRepository implements repository.ClassRepository on the Store.
type fileClassRepository struct {
	store *Store
}

// NewClassRepository creates a class repository backed by the shared store.
func NewClassRepository(store *Store) repository.ClassRepository {
	return &fileClassRepository{store: store}
}

func (r *fileClassRepository) List(ctx context.Context) ([]domain.Class, error) {
	var classes []domain.Class
	err := r.store.view(ctx, func(img *image) error {
		c := img.clone()
		classes = c.Classes
		return nil
	})
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *fileClassRepository) GetByID(ctx context.Context, id string) (*domain.Class, error) {
	var class *domain.Class
	err := r.store.view(ctx, func(img *image) error {
		for i := range img.Classes {
			if img.Classes[i].ID == id {
				c := img.Classes[i]
				c.Attendees = append([]string{}, c.Attendees...)
				class = &c
				return nil
			}
		}
		return repository.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return class, nil
}

// Create allocates the next class ID and appends the record. A new class
// always starts with zero enrollment and an empty attendee list, whatever the
// caller supplied. Any caller-supplied ID is discarded.
func (r *fileClassRepository) Create(ctx context.Context, class *domain.Class) (*domain.Class, error) {
	var created domain.Class
	err := r.store.update(ctx, func(img *image) error {
		r.store.classSeq++

		created = *class
		created.ID = formatID(classIDPrefix, r.store.classSeq)
		created.Enrolled = 0
		created.Attendees = []string{}

		img.Classes = append(img.Classes, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update applies a shallow field merge onto the stored record. The record ID
// is immutable; patches cannot touch it.
func (r *fileClassRepository) Update(ctx context.Context, id string, patch domain.ClassPatch) (*domain.Class, error) {
	var updated domain.Class
	err := r.store.update(ctx, func(img *image) error {
		for i := range img.Classes {
			if img.Classes[i].ID == id {
				patch.Apply(&img.Classes[i])
				img.Classes[i].ID = id
				updated = img.Classes[i]
				updated.Attendees = append([]string{}, updated.Attendees...)
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
func (r *fileClassRepository) Delete(ctx context.Context, id string) error {
	return r.store.update(ctx, func(img *image) error {
		for i := range img.Classes {
			if img.Classes[i].ID == id {
				img.Classes = append(img.Classes[:i], img.Classes[i+1:]...)
				return nil
			}
		}
		return repository.ErrNotFound
	})
}
