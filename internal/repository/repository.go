package repository

import (
	"context"

	"gym-admin/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
	ErrConflict = RepositoryError("conflict")
	ErrStorage  = RepositoryError("storage failure")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
// Email uniqueness is enforced here, inside the store's write lock, so a
// duplicate registration can never slip in between a check and a create.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// MemberRepository defines the interface for interacting with member records.
type MemberRepository interface {
	List(ctx context.Context) ([]domain.Member, error)
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	Update(ctx context.Context, id string, patch domain.MemberPatch) (*domain.Member, error)
	Delete(ctx context.Context, id string) error
}

// ClassRepository defines the interface for interacting with class records.
type ClassRepository interface {
	List(ctx context.Context) ([]domain.Class, error)
	GetByID(ctx context.Context, id string) (*domain.Class, error)
	Create(ctx context.Context, class *domain.Class) (*domain.Class, error)
	Update(ctx context.Context, id string, patch domain.ClassPatch) (*domain.Class, error)
	Delete(ctx context.Context, id string) error
}

// TrainerRepository defines the interface for interacting with trainer records.
type TrainerRepository interface {
	List(ctx context.Context) ([]domain.Trainer, error)
	GetByID(ctx context.Context, id string) (*domain.Trainer, error)
	Create(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error)
	Update(ctx context.Context, id string, patch domain.TrainerPatch) (*domain.Trainer, error)
	Delete(ctx context.Context, id string) error
}

// AnalyticsRepository provides one consistent snapshot of the record
// collections for read-only aggregation.
type AnalyticsRepository interface {
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
}

// Exporter serializes the full database image (all four collections) for
// backup purposes.
type Exporter interface {
	Export(ctx context.Context) ([]byte, error)
}
