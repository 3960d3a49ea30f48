package member_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gymtrack/internal/repositories"
	"gymtrack/internal/services"
)

var Module = fx.Provide(
	provideMemberRepo, provideMemberService, provideAuthService)

func provideMemberRepo(db *gorm.DB) repositories.MemberRepository {
	return repositories.NewMemberRepository(db)
}

func provideMemberService(memberRepo repositories.MemberRepository) services.MemberServiceInterface {
	return services.NewMemberService(memberRepo)
}

func provideAuthService(memberRepo repositories.MemberRepository) services.AuthServiceInterface {
	return services.NewAuthService(memberRepo)
}
