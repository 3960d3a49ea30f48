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

// Identity is the actor resolved from the request credentials. There is
// no session state; every request re-authenticates and gets a fresh one.
type Identity struct {
	MemberID uuid.UUID
	Username string
	Role     string
}

func (i Identity) IsAdmin() bool {
	return i.Role == db_models.RoleAdmin
}

// CanAccess reports whether the identity may touch records owned by the
// given member. Admins may touch anyone's.
func (i Identity) CanAccess(memberID uuid.UUID) bool {
	return i.IsAdmin() || i.MemberID == memberID
}

type AuthServiceInterface interface {
	Authenticate(ctx context.Context, username, password string) (Identity, error)
	Login(ctx context.Context, request request_models.LoginRequest) (response_models.MemberResponse, error)
	Profile(ctx context.Context, identity Identity) (response_models.MemberResponse, error)
	RegisterAdmin(ctx context.Context, request request_models.RegisterAdminRequest) (response_models.MemberResponse, error)
}

type AuthService struct {
	memberRepo repositories.MemberRepository
}

func NewAuthService(memberRepo repositories.MemberRepository) AuthServiceInterface {
	return &AuthService{
		memberRepo: memberRepo,
	}
}

func (a *AuthService) Authenticate(ctx context.Context, username, password string) (Identity, error) {
	if username == "" || password == "" {
		return Identity{}, utils.ErrMissingCredentials
	}

	member, err := a.memberRepo.FindByUsername(ctx, username)
	if err != nil {
		return Identity{}, utils.ErrDatabaseError
	}
	if member == nil {
		return Identity{}, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(member.PasswordHash, password); err != nil {
		return Identity{}, utils.ErrInvalidCredentials
	}

	return Identity{
		MemberID: member.ID,
		Username: member.Username,
		Role:     member.Role,
	}, nil
}

func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (response_models.MemberResponse, error) {
	identity, err := a.Authenticate(ctx, request.Username, request.Password)
	if err != nil {
		return response_models.MemberResponse{}, err
	}

	log.Printf("Member %s logged in", identity.Username)

	return a.Profile(ctx, identity)
}

func (a *AuthService) Profile(ctx context.Context, identity Identity) (response_models.MemberResponse, error) {
	member, err := a.memberRepo.FindByID(ctx, identity.MemberID)
	if err != nil {
		return response_models.MemberResponse{}, utils.ErrDatabaseError
	}
	if member == nil {
		return response_models.MemberResponse{}, utils.ErrMemberNotFound
	}
	return toMemberResponse(member), nil
}

// RegisterAdmin is the bootstrap path for creating the first admin
// account; it requires no existing identity.
func (a *AuthService) RegisterAdmin(ctx context.Context, request request_models.RegisterAdminRequest) (response_models.MemberResponse, error) {
	existing, err := a.memberRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return response_models.MemberResponse{}, utils.ErrDatabaseError
	}
	if existing != nil {
		return response_models.MemberResponse{}, utils.ErrUsernameTaken
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return response_models.MemberResponse{}, utils.ErrDatabaseError
	}

	name := request.Name
	if name == "" {
		name = "Admin"
	}

	admin := &db_models.Member{
		Username:     request.Username,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleAdmin,
		Name:         name,
		Phone:        request.Phone,
		Email:        request.Email,
	}

	if err := a.memberRepo.Insert(ctx, admin); err != nil {
		return response_models.MemberResponse{}, utils.ErrDatabaseError
	}

	log.Printf("Admin created id=%s username=%s", admin.ID, admin.Username)

	return toMemberResponse(admin), nil
}
