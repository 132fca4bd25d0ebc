package application

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	repo "github.com/orderdeck/orderdeck/internal/domain/repository"
	"github.com/orderdeck/orderdeck/internal/seed"
)

// SeedService backs the development reset endpoint and the seed CLI. Every
// entry point refuses to run outside development mode.
type SeedService struct {
	Users       repo.UserRepository
	Accounts    repo.AccountRepository
	Orders      repo.OrderRepository
	Maintenance repo.MaintenanceRepository
	DevMode     bool
	Logger      *logrus.Logger

	rng *rand.Rand
	now func() time.Time
}

func NewSeedService(users repo.UserRepository, accounts repo.AccountRepository, orders repo.OrderRepository,
	maintenance repo.MaintenanceRepository, devMode bool, logger *logrus.Logger) *SeedService {
	return &SeedService{
		Users:       users,
		Accounts:    accounts,
		Orders:      orders,
		Maintenance: maintenance,
		DevMode:     devMode,
		Logger:      logger,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		now:         time.Now,
	}
}

type ResetResult struct {
	Mode          string `json:"mode"`
	OrdersCreated int    `json:"ordersCreated"`
}

// Reset runs one of three mutually exclusive maintenance modes:
//
//   - accountID set: wipe the account's orders and regenerate 30 days of
//     demo data for it.
//   - userID set: purge everything except that user and its account.
//   - neither set: purge all data.
func (s *SeedService) Reset(ctx context.Context, accountID, userID string) (*ResetResult, error) {
	if !s.DevMode {
		return nil, ErrForbidden
	}
	if accountID != "" && userID != "" {
		return nil, invalid("query", "accountId and userId are mutually exclusive")
	}

	switch {
	case accountID != "":
		return s.reseedAccount(ctx, accountID)
	case userID != "":
		return s.purgeExcept(ctx, userID)
	default:
		if err := s.Maintenance.PurgeAll(ctx); err != nil {
			return nil, err
		}
		s.Logger.Warn("database wiped")
		return &ResetResult{Mode: "wipe"}, nil
	}
}

func (s *SeedService) reseedAccount(ctx context.Context, accountID string) (*ResetResult, error) {
	if _, err := s.Accounts.GetByID(ctx, accountID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	if err := s.Orders.DeleteByAccount(ctx, accountID); err != nil {
		return nil, err
	}
	orders := seed.Generate(s.rng, accountID, s.now())
	if err := s.Orders.CreateBatch(ctx, orders); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{
		"account_id": accountID,
		"orders":     len(orders),
	}).Info("account reseeded with demo orders")
	return &ResetResult{Mode: "reseed", OrdersCreated: len(orders)}, nil
}

func (s *SeedService) purgeExcept(ctx context.Context, userID string) (*ResetResult, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if u.AccountID == nil {
		return nil, ErrAccountNotFound
	}
	if err := s.Maintenance.PurgeExcept(ctx, userID, *u.AccountID); err != nil {
		return nil, err
	}
	s.Logger.WithField("user_id", userID).Warn("database purged except one user")
	return &ResetResult{Mode: "purge-except"}, nil
}
