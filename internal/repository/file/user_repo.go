package file

import (
	"context"
	"strings"
	"time"

	"gym-admin/internal/domain"
	"gym-admin/internal/repository"

	"github.com/google/uuid"
)

// fileUserRepository implements repository.UserRepository on the Store.
type fileUserRepository struct {
	store *Store
}

// NewUserRepository creates a user repository backed by the shared store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &fileUserRepository{store: store}
}

// Create inserts a new user. The uniqueness check and the insert happen under
// the same write lock, so two concurrent registrations with the same email
// cannot both succeed. Returns repository.ErrConflict on a duplicate email.
func (r *fileUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	var created domain.User
	err := r.store.update(ctx, func(img *image) error {
		for i := range img.Users {
			if strings.EqualFold(img.Users[i].Email, user.Email) {
				return repository.ErrConflict
			}
		}

		created = *user
		created.ID = uuid.NewString()
		created.CreatedAt = time.Now().UTC()

		img.Users = append(img.Users, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByEmail retrieves a user by their email address.
func (r *fileUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user *domain.User
	err := r.store.view(ctx, func(img *image) error {
		for i := range img.Users {
			if strings.EqualFold(img.Users[i].Email, email) {
				u := img.Users[i]
				user = &u
				return nil
			}
		}
		return repository.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID retrieves a user by their ID.
func (r *fileUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user *domain.User
	err := r.store.view(ctx, func(img *image) error {
		for i := range img.Users {
			if img.Users[i].ID == id {
				u := img.Users[i]
				user = &u
				return nil
			}
		}
		return repository.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
