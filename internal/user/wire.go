//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	userHttp "github.com/balasagoth/mi-supermercado/internal/user/delivery/http"
	"github.com/balasagoth/mi-supermercado/internal/user/domain"
	"github.com/balasagoth/mi-supermercado/internal/user/repository"
	"github.com/balasagoth/mi-supermercado/internal/user/usecase/command"
	"github.com/balasagoth/mi-supermercado/internal/user/usecase/query"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepository(db)
}

// Command Handlers Providers
func ProvideRegisterUserHandler(repo domain.UserRepository) *command.RegisterUserHandler {
	return command.NewRegisterUserHandler(repo)
}

func ProvideLoginUserHandler(repo domain.UserRepository) *command.LoginUserHandler {
	return command.NewLoginUserHandler(repo)
}

// Query Handlers Providers
func ProvideGetUserHandler(repo domain.UserRepository) *query.GetUserHandler {
	return query.NewGetUserHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
)

var HandlerSet = wire.NewSet(
	ProvideRegisterUserHandler,
	ProvideLoginUserHandler,
	ProvideGetUserHandler,
)

// InitializeHandler initializes user handler with all dependencies
func InitializeHandler(db *gorm.DB) (*userHttp.UserHandler, error) {
	wire.Build(
		RepositorySet,
		HandlerSet,
		userHttp.NewUserHandler,
	)
	return nil, nil
}
