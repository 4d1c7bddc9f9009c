package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wanderlust/internal/api/controllers"
	"wanderlust/internal/repositories"
	"wanderlust/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo,
	provideAccountService,
	controllers.NewAccountController,
)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo)
}
