package service

import (
	"context"
	"fmt"

	"gym-admin/internal/domain"
	"gym-admin/internal/repository"
)

// MemberService is the policy layer over the member collection: input
// validation on top of the repository's CRUD.
type MemberService interface {
	List(ctx context.Context) ([]domain.Member, error)
	Get(ctx context.Context, id string) (*domain.Member, error)
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	Update(ctx context.Context, id string, patch domain.MemberPatch) (*domain.Member, error)
	Delete(ctx context.Context, id string) error
}

type memberService struct {
	memberRepo repository.MemberRepository
}

// NewMemberService creates a new instance of memberService.
func NewMemberService(memberRepo repository.MemberRepository) MemberService {
	return &memberService{memberRepo: memberRepo}
}

func (s *memberService) List(ctx context.Context) ([]domain.Member, error) {
	return s.memberRepo.List(ctx)
}

func (s *memberService) Get(ctx context.Context, id string) (*domain.Member, error) {
	return s.memberRepo.GetByID(ctx, id)
}

func (s *memberService) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	if member == nil || member.Name == "" {
		return nil, fmt.Errorf("%w: member name is required", ErrInvalidInput)
	}
	if member.Status != "" && !domain.ValidMemberStatus(member.Status) {
		return nil, fmt.Errorf("%w: unknown member status %q", ErrInvalidInput, member.Status)
	}
	return s.memberRepo.Create(ctx, member)
}

func (s *memberService) Update(ctx context.Context, id string, patch domain.MemberPatch) (*domain.Member, error) {
	if patch.Name != nil && *patch.Name == "" {
		return nil, fmt.Errorf("%w: member name cannot be cleared", ErrInvalidInput)
	}
	if patch.Status != nil && !domain.ValidMemberStatus(*patch.Status) {
		return nil, fmt.Errorf("%w: unknown member status %q", ErrInvalidInput, *patch.Status)
	}
	// An empty patch still goes through the repository so NotFound is
	// reported consistently; applying it is a no-op.
	return s.memberRepo.Update(ctx, id, patch)
}

func (s *memberService) Delete(ctx context.Context, id string) error {
	return s.memberRepo.Delete(ctx, id)
}
