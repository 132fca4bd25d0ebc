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

// TokenTTL is how long an email verification token stays valid.
const TokenTTL = 24 * time.Hour

// AuthService covers registration, login and the verification token
// lifecycle.
type AuthService struct {
	Users     repo.UserRepository
	Accounts  repo.AccountRepository
	Tokens    repo.TokenRepository
	JWT       *helpers.JWTManager
	Mail      mailer.Sender
	VerifyURL string
	Logger    *logrus.Logger

	// now is swappable in tests.
	now func() time.Time
}

func NewAuthService(users repo.UserRepository, accounts repo.AccountRepository, tokens repo.TokenRepository,
	jwt *helpers.JWTManager, mail mailer.Sender, verifyURL string, logger *logrus.Logger) *AuthService {
	return &AuthService{
		Users:     users,
		Accounts:  accounts,
		Tokens:    tokens,
		JWT:       jwt,
		Mail:      mail,
		VerifyURL: verifyURL,
		Logger:    logger,
		now:       time.Now,
	}
}

type RegisterResult struct {
	User      *entity.User
	Account   *entity.Account
	EmailSent bool
}

// Register creates the user, its account and a verification token as one
// atomic unit, then sends the verification email best-effort. A failed send
// never undoes the registration; EmailSent tells the caller what happened.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*RegisterResult, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		if errors.Is(err, helpers.ErrEmptyPassword) {
			return nil, invalid("password", "must not be empty")
		}
		return nil, err
	}

	tokenStr, err := helpers.GenVerificationToken()
	if err != nil {
		return nil, err
	}
	tok := &entity.VerificationToken{
		Identifier: email,
		Token:      tokenStr,
		Expires:    s.now().Add(TokenTTL),
	}

	user := &entity.User{Name: name, Email: email, Password: hash}
	account, err := s.Accounts.CreateWithOwner(ctx, user, name+"'s Restaurant", tok)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	sent := s.sendVerification(ctx, email, name, tokenStr)
	return &RegisterResult{User: user, Account: account, EmailSent: sent}, nil
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
	Account   *entity.Account
}

// Login validates credentials and issues a session token. Unverified users
// are rejected before a token is ever minted.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	if !u.Verified() {
		return nil, ErrEmailNotVerified
	}

	accountID := ""
	var account *entity.Account
	if u.AccountID != nil {
		accountID = *u.AccountID
		if account, err = s.Accounts.GetByID(ctx, accountID); err != nil && !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
	}

	token, exp, err := s.JWT.GenerateSessionToken(u.ID, u.Email, accountID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate session token failed")
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: exp, User: u, Account: account}, nil
}

// CheckUser reports whether the credentials belong to a not-yet-verified
// user. Wrong credentials answer false rather than erroring, so the endpoint
// cannot be used to enumerate accounts.
func (s *AuthService) CheckUser(ctx context.Context, email, password string) (bool, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return false, nil
	}
	return !u.Verified(), nil
}

// VerifyEmail consumes a verification token exactly once. Expired tokens are
// purged on detection, so a retry reports not-found.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	tok, err := s.Tokens.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrTokenNotFound
		}
		return err
	}
	if tok.Expired(s.now()) {
		if err := s.Tokens.Delete(ctx, token); err != nil {
			return err
		}
		return ErrTokenExpired
	}

	u, err := s.Users.GetByEmail(ctx, tok.Identifier)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.Users.MarkVerified(ctx, u.ID, token)
}

// ResendVerification replaces any outstanding token for the email and sends
// a fresh verification message.
func (s *AuthService) ResendVerification(ctx context.Context, email string) (bool, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}
	if u.Verified() {
		return false, ErrAlreadyVerified
	}

	tokenStr, err := helpers.GenVerificationToken()
	if err != nil {
		return false, err
	}
	tok := &entity.VerificationToken{
		Identifier: email,
		Token:      tokenStr,
		Expires:    s.now().Add(TokenTTL),
	}
	if err := s.Tokens.Replace(ctx, tok); err != nil {
		return false, err
	}
	return s.sendVerification(ctx, email, u.Name, tokenStr), nil
}

func (s *AuthService) sendVerification(ctx context.Context, to, name, token string) bool {
	job, err := mailer.VerificationEmail(to, name, s.VerifyURL, token)
	if err == nil {
		err = s.Mail.Send(ctx, job)
	}
	if err != nil {
		s.Logger.WithError(err).WithField("email", to).Warn("verification email not sent")
		return false
	}
	return true
}
