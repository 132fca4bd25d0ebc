package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/orderdeck/orderdeck/internal/domain/entity"
	repo "github.com/orderdeck/orderdeck/internal/domain/repository"
	"github.com/orderdeck/orderdeck/pkg/mailer"
)

// memStore is an in-memory implementation of every repository interface.
// Composite operations mimic the transactional all-or-nothing behavior of
// the SQL implementations; failOn injects a fault into a named operation to
// assert that state stays untouched.
type memStore struct {
	mu       sync.Mutex
	users    map[string]*entity.User
	accounts map[string]*entity.Account
	tokens   map[string]*entity.VerificationToken
	orders   map[string]*entity.Order
	nextID   int
	failOn   string
}

var errInjected = errors.New("injected fault")

func newMemStore() *memStore {
	return &memStore{
		users:    map[string]*entity.User{},
		accounts: map[string]*entity.Account{},
		tokens:   map[string]*entity.VerificationToken{},
		orders:   map[string]*entity.Order{},
	}
}

func (s *memStore) id() string {
	s.nextID++
	return fmt.Sprintf("id-%04d", s.nextID)
}

// --- UserRepository ---

func (s *memStore) GetByID(_ context.Context, id string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *memStore) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (s *memStore) UpdateProfile(_ context.Context, id string, name, email *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return repo.ErrNotFound
	}
	if email != nil && *email != u.Email {
		for _, other := range s.users {
			if other.ID != id && other.Email == *email {
				return repo.ErrDuplicateEmail
			}
		}
		u.Email = *email
		u.EmailVerified = nil
	}
	if name != nil {
		u.Name = *name
	}
	u.UpdatedAt = time.Now()
	return nil
}

func (s *memStore) UpdatePassword(_ context.Context, id, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return repo.ErrNotFound
	}
	u.Password = passwordHash
	return nil
}

func (s *memStore) MarkVerified(_ context.Context, userID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return repo.ErrNotFound
	}
	now := time.Now()
	u.EmailVerified = &now
	delete(s.tokens, token)
	return nil
}

// --- AccountRepository ---

func (s *memStore) CreateWithOwner(_ context.Context, u *entity.User, accountName string, tok *entity.VerificationToken) (*entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOn == "CreateWithOwner" {
		return nil, errInjected
	}
	for _, other := range s.users {
		if other.Email == u.Email {
			return nil, repo.ErrDuplicateEmail
		}
	}
	now := time.Now()
	u.ID = s.id()
	u.CreatedAt, u.UpdatedAt = now, now

	acc := &entity.Account{ID: s.id(), Name: &accountName, OwnerID: u.ID, CreatedAt: now, UpdatedAt: now}
	aid := acc.ID
	u.AccountID = &aid

	stored := *u
	s.users[u.ID] = &stored
	s.accounts[acc.ID] = acc
	tcp := *tok
	s.tokens[tok.Token] = &tcp
	return acc, nil
}

func (s *memStore) GetAccountByID(_ context.Context, id string) (*entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *memStore) Members(_ context.Context, accountID string) ([]entity.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Member
	for _, u := range s.users {
		if u.AccountID != nil && *u.AccountID == accountID {
			out = append(out, entity.Member{ID: u.ID, Name: u.Name, Email: u.Email, EmailVerified: u.EmailVerified})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) UpdateName(_ context.Context, id, name string) (*entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	a.Name = &name
	a.UpdatedAt = time.Now()
	cp := *a
	return &cp, nil
}

func (s *memStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOn == "Delete" {
		return errInjected
	}
	a, ok := s.accounts[id]
	if !ok {
		return repo.ErrNotFound
	}
	for oid, o := range s.orders {
		if o.AccountID == id {
			delete(s.orders, oid)
		}
	}
	for uid, u := range s.users {
		if u.AccountID != nil && *u.AccountID == id && uid != a.OwnerID {
			delete(s.users, uid)
		}
	}
	delete(s.accounts, id)
	delete(s.users, a.OwnerID)
	return nil
}

// --- TokenRepository ---

func (s *memStore) Replace(_ context.Context, t *entity.VerificationToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range s.tokens {
		if v.Identifier == t.Identifier {
			delete(s.tokens, k)
		}
	}
	cp := *t
	s.tokens[t.Token] = &cp
	return nil
}

func (s *memStore) GetByToken(_ context.Context, token string) (*entity.VerificationToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tokens[token]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (s *memStore) DeleteToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

// --- OrderRepository ---

func (s *memStore) List(_ context.Context, f repo.OrderFilter) ([]entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Order
	for _, o := range s.orders {
		if f.AccountID != "" && o.AccountID != f.AccountID {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memStore) GetOrderByID(_ context.Context, id string) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (s *memStore) Create(_ context.Context, o *entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = s.id()
	now := time.Now()
	if o.CreatedAt.IsZero() {
		o.CreatedAt, o.UpdatedAt = now, now
	}
	for i := range o.Items {
		o.Items[i].ID = s.id()
		o.Items[i].OrderID = o.ID
	}
	cp := *o
	s.orders[o.ID] = &cp
	return nil
}

func (s *memStore) UpdateStatus(_ context.Context, id string, status entity.OrderStatus) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	cp := *o
	return &cp, nil
}

func (s *memStore) DeleteOrder(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return repo.ErrNotFound
	}
	delete(s.orders, id)
	return nil
}

func (s *memStore) CreateBatch(_ context.Context, orders []entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOn == "CreateBatch" {
		return errInjected
	}
	for _, o := range orders {
		o.ID = s.id()
		for i := range o.Items {
			o.Items[i].ID = s.id()
			o.Items[i].OrderID = o.ID
		}
		cp := o
		s.orders[o.ID] = &cp
	}
	return nil
}

func (s *memStore) DeleteByAccount(_ context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, o := range s.orders {
		if o.AccountID == accountID {
			delete(s.orders, id)
		}
	}
	return nil
}

func (s *memStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.orders)), nil
}

// --- MaintenanceRepository ---

func (s *memStore) PurgeAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = map[string]*entity.User{}
	s.accounts = map[string]*entity.Account{}
	s.tokens = map[string]*entity.VerificationToken{}
	s.orders = map[string]*entity.Order{}
	return nil
}

func (s *memStore) PurgeExcept(_ context.Context, userID, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.users {
		if id != userID {
			delete(s.users, id)
		}
	}
	for id := range s.accounts {
		if id != accountID {
			delete(s.accounts, id)
		}
	}
	s.tokens = map[string]*entity.VerificationToken{}
	s.orders = map[string]*entity.Order{}
	return nil
}

// Adapters: the store has method-name collisions across interfaces, so each
// repository view renames the clashing ones.

type userRepoFake struct{ *memStore }

type accountRepoFake struct{ *memStore }

func (f accountRepoFake) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	return f.GetAccountByID(ctx, id)
}

type tokenRepoFake struct{ *memStore }

func (f tokenRepoFake) Delete(ctx context.Context, token string) error {
	return f.DeleteToken(ctx, token)
}

type orderRepoFake struct{ *memStore }

func (f orderRepoFake) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return f.GetOrderByID(ctx, id)
}

func (f orderRepoFake) Delete(ctx context.Context, id string) error {
	return f.DeleteOrder(ctx, id)
}

type maintenanceRepoFake struct{ *memStore }

// sentSpy records outgoing email jobs; fail makes every send error.
type sentSpy struct {
	mu   sync.Mutex
	jobs []mailer.EmailJob
	fail bool
}

func (s *sentSpy) Send(_ context.Context, job mailer.EmailJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errInjected
	}
	s.jobs = append(s.jobs, job)
	return nil
}

func (s *sentSpy) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// onlyToken returns the single stored verification token, failing the test
// if there is not exactly one.
func (s *memStore) onlyToken(t *testing.T) *entity.VerificationToken {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.tokens) != 1 {
		t.Fatalf("expected exactly one token, have %d", len(s.tokens))
	}
	for _, tok := range s.tokens {
		cp := *tok
		return &cp
	}
	return nil
}
