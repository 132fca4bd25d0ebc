package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/orderdeck/orderdeck/internal/domain/entity"
	repo "github.com/orderdeck/orderdeck/internal/domain/repository"
	"github.com/orderdeck/orderdeck/pkg/helpers"
	"github.com/orderdeck/orderdeck/pkg/mailer"
)

// UserService handles profile reads and self-service profile mutations.
type UserService struct {
	Users     repo.UserRepository
	Accounts  repo.AccountRepository
	Tokens    repo.TokenRepository
	Mail      mailer.Sender
	VerifyURL string
	Logger    *logrus.Logger

	now func() time.Time
}

func NewUserService(users repo.UserRepository, accounts repo.AccountRepository, tokens repo.TokenRepository,
	mail mailer.Sender, verifyURL string, logger *logrus.Logger) *UserService {
	return &UserService{
		Users:     users,
		Accounts:  accounts,
		Tokens:    tokens,
		Mail:      mail,
		VerifyURL: verifyURL,
		Logger:    logger,
		now:       time.Now,
	}
}

type Profile struct {
	User    *entity.User
	Account *entity.Account
	Members []entity.Member
}

// GetProfile returns the user together with its account and the account's
// member roster. Users without an account get a bare profile.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	p := &Profile{User: u}
	if u.AccountID == nil {
		return p, nil
	}
	if p.Account, err = s.Accounts.GetByID(ctx, *u.AccountID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return p, nil
		}
		return nil, err
	}
	if p.Members, err = s.Accounts.Members(ctx, *u.AccountID); err != nil {
		return nil, err
	}
	return p, nil
}

type UpdateProfileResult struct {
	User         *entity.User
	EmailChanged bool
	EmailSent    bool
}

// UpdateProfile changes name and/or email. Changing the email drops the
// verified stamp and issues a fresh verification token for the new address.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, name, email *string) (*UpdateProfileResult, error) {
	current, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	emailChanged := email != nil && *email != current.Email
	if emailChanged {
		if other, err := s.Users.GetByEmail(ctx, *email); err == nil && other.ID != userID {
			return nil, ErrDuplicateEmail
		} else if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
	}

	if err := s.Users.UpdateProfile(ctx, userID, name, email); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	updated, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := &UpdateProfileResult{User: updated, EmailChanged: emailChanged}
	if emailChanged {
		tokenStr, err := helpers.GenVerificationToken()
		if err != nil {
			return nil, err
		}
		tok := &entity.VerificationToken{
			Identifier: updated.Email,
			Token:      tokenStr,
			Expires:    s.now().Add(TokenTTL),
		}
		if err := s.Tokens.Replace(ctx, tok); err != nil {
			return nil, err
		}
		job, err := mailer.VerificationEmail(updated.Email, updated.Name, s.VerifyURL, tokenStr)
		if err == nil {
			err = s.Mail.Send(ctx, job)
		}
		if err != nil {
			s.Logger.WithError(err).WithField("email", updated.Email).Warn("verification email not sent")
		} else {
			res.EmailSent = true
		}
	}
	return res, nil
}

// ChangePassword swaps the password after re-checking the current one.
func (s *UserService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !helpers.CompareHashAndPassword(u.Password, currentPassword) {
		return ErrInvalidCredentials
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		if errors.Is(err, helpers.ErrEmptyPassword) {
			return invalid("newPassword", "must not be empty")
		}
		return err
	}
	return s.Users.UpdatePassword(ctx, userID, hash)
}
