package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"team-showcase.backend/internal/domain/entities"
	"team-showcase.backend/internal/domain/repositories"
)

const msgMemberNotFound = "member not found"

// MemberUsecase handles member roster business logic
type MemberUsecase struct {
	memberRepo repositories.MemberRepository
	now        func() time.Time
}

// NewMemberUsecase creates a new member usecase
func NewMemberUsecase(memberRepo repositories.MemberRepository) *MemberUsecase {
	return &MemberUsecase{
		memberRepo: memberRepo,
		now:        time.Now,
	}
}

// ListActive returns the public roster.
func (u *MemberUsecase) ListActive(ctx context.Context) ([]*entities.Member, error) {
	return u.list(ctx, entities.MemberFilter{ActiveOnly: true})
}

// ListAll includes soft-deleted members.
func (u *MemberUsecase) ListAll(ctx context.Context) ([]*entities.Member, error) {
	return u.list(ctx, entities.MemberFilter{})
}

func (u *MemberUsecase) list(ctx context.Context, filter entities.MemberFilter) ([]*entities.Member, error) {
	members, err := u.memberRepo.List(ctx, filter)
	if err != nil {
		return nil, storeError(err, msgMemberNotFound, "failed to list members")
	}
	return members, nil
}

func (u *MemberUsecase) GetMember(ctx context.Context, id uuid.UUID) (*entities.Member, error) {
	member, err := u.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, msgMemberNotFound, "failed to get member")
	}
	return member, nil
}

// CreateMember adds an active member joining now.
func (u *MemberUsecase) CreateMember(ctx context.Context, input *entities.CreateMemberInput) (*entities.Member, error) {
	if err := requireFields([]string{"name", "role"}, &input.Name, &input.Role); err != nil {
		return nil, err
	}

	now := u.now()
	member := &entities.Member{
		Name:      input.Name,
		Role:      input.Role,
		Avatar:    input.Avatar,
		Signature: input.Signature,
		Blog:      input.Blog,
		Direction: input.Direction,
		IsActive:  true,
		JoinDate:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.memberRepo.Create(ctx, member); err != nil {
		return nil, storeError(err, msgMemberNotFound, "failed to create member")
	}
	return member, nil
}

// UpdateMember overwrites the present fields. Name and role may be changed but not blanked.
func (u *MemberUsecase) UpdateMember(ctx context.Context, id uuid.UUID, patch entities.MemberPatch) (*entities.Member, error) {
	if err := trimPresent("name", patch.Name); err != nil {
		return nil, err
	}
	if err := trimPresent("role", patch.Role); err != nil {
		return nil, err
	}

	member, err := u.memberRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, storeError(err, msgMemberNotFound, "failed to update member")
	}
	return member, nil
}

// DeactivateMember is the soft delete: the member leaves the public roster but stays listed for admins.
func (u *MemberUsecase) DeactivateMember(ctx context.Context, id uuid.UUID) (*entities.Member, error) {
	inactive := false
	member, err := u.memberRepo.Update(ctx, id, entities.MemberPatch{IsActive: &inactive})
	if err != nil {
		return nil, storeError(err, msgMemberNotFound, "failed to delete member")
	}
	return member, nil
}

// PurgeMember removes the member outright.
func (u *MemberUsecase) PurgeMember(ctx context.Context, id uuid.UUID) (*entities.Member, error) {
	member, err := u.memberRepo.Delete(ctx, id)
	if err != nil {
		return nil, storeError(err, msgMemberNotFound, "failed to permanently delete member")
	}
	return member, nil
}
