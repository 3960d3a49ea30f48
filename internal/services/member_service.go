package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"gymtrack/internal/models/db_models"
	"gymtrack/internal/models/request_models"
	"gymtrack/internal/models/response_models"
	"gymtrack/internal/repositories"
	"gymtrack/pkg/utils"
)

type MemberServiceInterface interface {
	CreateMember(ctx context.Context, identity Identity, request request_models.CreateMemberRequest) (response_models.MemberResponse, error)
	ListMembers(ctx context.Context, identity Identity, limit, offset int) ([]response_models.MemberResponse, error)
	GetMember(ctx context.Context, identity Identity, memberID uuid.UUID) (response_models.MemberResponse, error)
	SearchMembersByName(ctx context.Context, identity Identity, name string) ([]response_models.MemberResponse, error)
	FindMembersByGender(ctx context.Context, identity Identity, gender string) ([]response_models.MemberResponse, error)
	UpdateMember(ctx context.Context, identity Identity, memberID uuid.UUID, request request_models.UpdateMemberRequest) (response_models.MemberResponse, error)
	DeleteMember(ctx context.Context, identity Identity, memberID uuid.UUID) error
}

type MemberService struct {
	memberRepo repositories.MemberRepository
}

func NewMemberService(memberRepo repositories.MemberRepository) MemberServiceInterface {
	return &MemberService{
		memberRepo: memberRepo,
	}
}

func (m *MemberService) CreateMember(ctx context.Context, identity Identity, request request_models.CreateMemberRequest) (response_models.MemberResponse, error) {
	if !identity.IsAdmin() {
		return response_models.MemberResponse{}, utils.ErrForbidden
	}

	existing, err := m.memberRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return response_models.MemberResponse{}, utils.ErrDatabaseError
	}
	if existing != nil {
		return response_models.MemberResponse{}, utils.ErrUsernameTaken
	}

	joinedDate, err := utils.ParseDate(request.JoinedDate)
	if err != nil {
		return response_models.MemberResponse{}, utils.ErrInvalidDateRange
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return response_models.MemberResponse{}, utils.ErrDatabaseError
	}

	member := &db_models.Member{
		Username:     request.Username,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleMember,
		Name:         request.Name,
		Age:          request.Age,
		Gender:       request.Gender,
		JoinedDate:   joinedDate,
		Phone:        request.Phone,
		Email:        request.Email,
	}

	if err := m.memberRepo.Insert(ctx, member); err != nil {
		return response_models.MemberResponse{}, utils.ErrDatabaseError
	}

	log.Printf("Added member id=%s name=%s", member.ID, member.Name)

	return toMemberResponse(member), nil
}

// ListMembers gives admins the whole roster; a plain member only ever
// sees their own record.
func (m *MemberService) ListMembers(ctx context.Context, identity Identity, limit, offset int) ([]response_models.MemberResponse, error) {
	if !identity.IsAdmin() {
		self, err := m.memberRepo.FindByID(ctx, identity.MemberID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if self == nil {
			return nil, utils.ErrMemberNotFound
		}
		return []response_models.MemberResponse{toMemberResponse(self)}, nil
	}

	members, err := m.memberRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toMemberResponses(members), nil
}

func (m *MemberService) GetMember(ctx context.Context, identity Identity, memberID uuid.UUID) (response_models.MemberResponse, error) {
	if !identity.CanAccess(memberID) {
		return response_models.MemberResponse{}, utils.ErrForbidden
	}

	member, err := m.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return response_models.MemberResponse{}, utils.ErrDatabaseError
	}
	if member == nil {
		return response_models.MemberResponse{}, utils.ErrMemberNotFound
	}

	return toMemberResponse(member), nil
}

func (m *MemberService) SearchMembersByName(ctx context.Context, identity Identity, name string) ([]response_models.MemberResponse, error) {
	if !identity.IsAdmin() {
		return nil, utils.ErrForbidden
	}

	members, err := m.memberRepo.SearchByName(ctx, name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toMemberResponses(members), nil
}

func (m *MemberService) FindMembersByGender(ctx context.Context, identity Identity, gender string) ([]response_models.MemberResponse, error) {
	if !identity.IsAdmin() {
		return nil, utils.ErrForbidden
	}

	members, err := m.memberRepo.FindByGender(ctx, gender)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toMemberResponses(members), nil
}

// UpdateMember applies the provided fields only. Role is immutable after
// creation, so no path through here ever rewrites it.
func (m *MemberService) UpdateMember(ctx context.Context, identity Identity, memberID uuid.UUID, request request_models.UpdateMemberRequest) (response_models.MemberResponse, error) {
	if !identity.CanAccess(memberID) {
		return response_models.MemberResponse{}, utils.ErrForbidden
	}

	member, err := m.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return response_models.MemberResponse{}, utils.ErrDatabaseError
	}
	if member == nil {
		return response_models.MemberResponse{}, utils.ErrMemberNotFound
	}

	if request.Username != nil && *request.Username != member.Username {
		existing, err := m.memberRepo.FindByUsername(ctx, *request.Username)
		if err != nil {
			return response_models.MemberResponse{}, utils.ErrDatabaseError
		}
		if existing != nil {
			return response_models.MemberResponse{}, utils.ErrUsernameTaken
		}
		member.Username = *request.Username
	}
	if request.Password != nil {
		hashedPassword, err := utils.HashPassword(*request.Password)
		if err != nil {
			return response_models.MemberResponse{}, utils.ErrDatabaseError
		}
		member.PasswordHash = hashedPassword
	}
	if request.Name != nil {
		member.Name = *request.Name
	}
	if request.Age != nil {
		member.Age = *request.Age
	}
	if request.Gender != nil {
		member.Gender = *request.Gender
	}
	if request.JoinedDate != nil {
		joinedDate, err := utils.ParseDate(*request.JoinedDate)
		if err != nil {
			return response_models.MemberResponse{}, utils.ErrInvalidDateRange
		}
		member.JoinedDate = joinedDate
	}
	if request.Phone != nil {
		member.Phone = *request.Phone
	}
	if request.Email != nil {
		member.Email = *request.Email
	}

	if err := m.memberRepo.Update(ctx, member); err != nil {
		return response_models.MemberResponse{}, utils.ErrDatabaseError
	}

	log.Printf("Updated member id=%s", member.ID)

	return toMemberResponse(member), nil
}

// DeleteMember relies on the foreign-key cascades to remove the member's
// sessions, logs and measurements; nothing is traversed here.
func (m *MemberService) DeleteMember(ctx context.Context, identity Identity, memberID uuid.UUID) error {
	if !identity.IsAdmin() {
		return utils.ErrForbidden
	}

	rows, err := m.memberRepo.Delete(ctx, memberID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if rows == 0 {
		return utils.ErrMemberNotFound
	}

	log.Printf("Deleted member id=%s", memberID)

	return nil
}

func toMemberResponse(member *db_models.Member) response_models.MemberResponse {
	joinedDate := ""
	if !member.JoinedDate.IsZero() {
		joinedDate = member.JoinedDate.Format(utils.DateLayout)
	}
	return response_models.MemberResponse{
		ID:         member.ID.String(),
		Username:   member.Username,
		Role:       member.Role,
		Name:       member.Name,
		Age:        member.Age,
		Gender:     member.Gender,
		JoinedDate: joinedDate,
		Phone:      member.Phone,
		Email:      member.Email,
	}
}

func toMemberResponses(members []db_models.Member) []response_models.MemberResponse {
	responses := make([]response_models.MemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, toMemberResponse(&members[i]))
	}
	return responses
}
