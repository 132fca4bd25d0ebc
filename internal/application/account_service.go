package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/orderdeck/orderdeck/internal/domain/entity"
	repo "github.com/orderdeck/orderdeck/internal/domain/repository"
)

// AccountService exposes account reads, renaming and full account removal.
type AccountService struct {
	Accounts repo.AccountRepository
	Logger   *logrus.Logger
}

func NewAccountService(accounts repo.AccountRepository, logger *logrus.Logger) *AccountService {
	return &AccountService{Accounts: accounts, Logger: logger}
}

type AccountDetail struct {
	Account *entity.Account
	Members []entity.Member
}

func (s *AccountService) Get(ctx context.Context, accountID string) (*AccountDetail, error) {
	acc, err := s.Accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	members, err := s.Accounts.Members(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &AccountDetail{Account: acc, Members: members}, nil
}

func (s *AccountService) UpdateName(ctx context.Context, accountID, name string) (*entity.Account, error) {
	if name == "" {
		return nil, invalid("name", "must not be empty")
	}
	acc, err := s.Accounts.UpdateName(ctx, accountID, name)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return acc, nil
}

// Delete removes the account and everything under it: order items, orders,
// member users and finally the owner. All of it happens in one transaction.
func (s *AccountService) Delete(ctx context.Context, accountID string) error {
	err := s.Accounts.Delete(ctx, accountID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	}
	s.Logger.WithField("account_id", accountID).Info("account deleted")
	return nil
}
