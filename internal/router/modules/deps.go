package modules

import (
	"github.com/orderdeck/orderdeck/internal/container"
	repo "github.com/orderdeck/orderdeck/internal/domain/repository"
	pginfra "github.com/orderdeck/orderdeck/internal/infrastructure/postgres"
)

// Repository constructors over the shared pool. Cheap to build per module.

func newUserRepo() repo.UserRepository {
	return pginfra.NewUserRepository(container.GetPGPool())
}

func newAccountRepo() repo.AccountRepository {
	return pginfra.NewAccountRepository(container.GetPGPool())
}

func newTokenRepo() repo.TokenRepository {
	return pginfra.NewTokenRepository(container.GetPGPool())
}

func newOrderRepo() repo.OrderRepository {
	return pginfra.NewOrderRepository(container.GetPGPool())
}

func newMaintenanceRepo() repo.MaintenanceRepository {
	return pginfra.NewMaintenanceRepository(container.GetPGPool())
}
