package file

import (
	"context"
	"time"

	"gym-admin/internal/domain"
	"gym-admin/internal/repository"
)

// fileMemberRepository implements repository.MemberRepository on the Store.
type fileMemberRepository struct {
	store *Store
}

// NewMemberRepository creates a member repository backed by the shared store.
func NewMemberRepository(store *Store) repository.MemberRepository {
	return &fileMemberRepository{store: store}
}

func (r *fileMemberRepository) List(ctx context.Context) ([]domain.Member, error) {
	var members []domain.Member
	err := r.store.view(ctx, func(img *image) error {
		members = append([]domain.Member{}, img.Members...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *fileMemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	var member *domain.Member
	err := r.store.view(ctx, func(img *image) error {
		for i := range img.Members {
			if img.Members[i].ID == id {
				m := img.Members[i]
				member = &m
				return nil
			}
		}
		return repository.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

// Create allocates the next member ID and appends the record. Store-owned
// fields are forced: join date and last visit are today, and a missing status
// starts the member as pending. Any caller-supplied ID is discarded.
func (r *fileMemberRepository) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	var created domain.Member
	err := r.store.update(ctx, func(img *image) error {
		r.store.memberSeq++
		today := time.Now().Format(domain.DateLayout)

		created = *member
		created.ID = formatID(memberIDPrefix, r.store.memberSeq)
		created.JoinDate = today
		created.LastVisit = today
		if created.Status == "" {
			created.Status = domain.MemberStatusPending
		}

		img.Members = append(img.Members, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update applies a shallow field merge onto the stored record. The record ID
// is immutable; patches cannot touch it.
func (r *fileMemberRepository) Update(ctx context.Context, id string, patch domain.MemberPatch) (*domain.Member, error) {
	var updated domain.Member
	err := r.store.update(ctx, func(img *image) error {
		for i := range img.Members {
			if img.Members[i].ID == id {
				patch.Apply(&img.Members[i])
				img.Members[i].ID = id
				updated = img.Members[i]
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
func (r *fileMemberRepository) Delete(ctx context.Context, id string) error {
	return r.store.update(ctx, func(img *image) error {
		for i := range img.Members {
			if img.Members[i].ID == id {
				img.Members = append(img.Members[:i], img.Members[i+1:]...)
				return nil
			}
		}
		return repository.ErrNotFound
	})
}
