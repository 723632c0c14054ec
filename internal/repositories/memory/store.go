// Package memory provides an in-memory implementation of the repository
// store. It backs unit tests and local development without Postgres while
// keeping the same transactional contract: a failed transaction leaves no
// trace, and transactions against the store serialize.
package memory

import (
	"sort"
	"sync"
	"time"

	"crease/internal/models"
	"crease/internal/repositories"
)

type state struct {
	accounts    map[uint]models.Account
	contests    map[uint]models.Contest
	teams       map[string]models.Team
	payments    map[uint]models.PaymentRecord
	withdrawals map[uint]models.Withdrawal
	entries     []models.LedgerEntry

	accountSeq    uint
	contestSeq    uint
	paymentSeq    uint
	withdrawalSeq uint
	entrySeq      uint
	teamSeq       uint
}

func (s *state) clone() *state {
	c := &state{
		accounts:      make(map[uint]models.Account, len(s.accounts)),
		contests:      make(map[uint]models.Contest, len(s.contests)),
		teams:         make(map[string]models.Team, len(s.teams)),
		payments:      make(map[uint]models.PaymentRecord, len(s.payments)),
		withdrawals:   make(map[uint]models.Withdrawal, len(s.withdrawals)),
		entries:       make([]models.LedgerEntry, len(s.entries)),
		accountSeq:    s.accountSeq,
		contestSeq:    s.contestSeq,
		paymentSeq:    s.paymentSeq,
		withdrawalSeq: s.withdrawalSeq,
		entrySeq:      s.entrySeq,
		teamSeq:       s.teamSeq,
	}
	for k, v := range s.accounts {
		c.accounts[k] = v
	}
	for k, v := range s.contests {
		c.contests[k] = v
	}
	for k, v := range s.teams {
		c.teams[k] = v
	}
	for k, v := range s.payments {
		c.payments[k] = v
	}
	for k, v := range s.withdrawals {
		c.withdrawals[k] = v
	}
	copy(c.entries, s.entries)
	return c
}

// Store implements repositories.Store in memory.
type Store struct {
	mu    sync.Mutex
	state *state
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		state: &state{
			accounts:    make(map[uint]models.Account),
			contests:    make(map[uint]models.Contest),
			teams:       make(map[string]models.Team),
			payments:    make(map[uint]models.PaymentRecord),
			withdrawals: make(map[uint]models.Withdrawal),
		},
	}
}

func (s *Store) Accounts() repositories.AccountRepository {
	return &accountRepo{store: s, locking: true}
}

func (s *Store) Contests() repositories.ContestRepository {
	return &contestRepo{store: s, locking: true}
}

func (s *Store) Teams() repositories.TeamRepository {
	return &teamRepo{store: s, locking: true}
}

func (s *Store) Payments() repositories.PaymentRepository {
	return &paymentRepo{store: s, locking: true}
}

func (s *Store) Withdrawals() repositories.WithdrawalRepository {
	return &withdrawalRepo{store: s, locking: true}
}

// ExecuteInTransaction holds the store lock for the whole callback, so
// transactions are strictly serialized. The state is snapshotted first and
// restored if fn fails, which is what makes the debit-failure path release a
// reserved slot.
func (s *Store) ExecuteInTransaction(fn func(tx repositories.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	if err := fn(&txStore{store: s}); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}

var _ repositories.Store = (*Store)(nil)

// txStore is the transaction-scoped handle; the caller already holds the
// store lock, so its repositories skip locking.
type txStore struct {
	store *Store
}

func (t *txStore) Accounts() repositories.AccountRepository {
	return &accountRepo{store: t.store}
}

func (t *txStore) Contests() repositories.ContestRepository {
	return &contestRepo{store: t.store}
}

func (t *txStore) Teams() repositories.TeamRepository {
	return &teamRepo{store: t.store}
}

func (t *txStore) Payments() repositories.PaymentRepository {
	return &paymentRepo{store: t.store}
}

func (t *txStore) Withdrawals() repositories.WithdrawalRepository {
	return &withdrawalRepo{store: t.store}
}

func (t *txStore) ExecuteInTransaction(fn func(tx repositories.Store) error) error {
	return fn(t)
}

func (s *Store) lock(locking bool) func() {
	if !locking {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// now returns a strictly increasing timestamp so creation-time tiebreaks
// are deterministic even for back-to-back writes.
func (s *Store) now() time.Time {
	s.state.teamSeq++
	return time.Now().UTC().Add(time.Duration(s.state.teamSeq) * time.Microsecond)
}

type teamRepo struct {
	store   *Store
	locking bool
}

func (r *teamRepo) Create(team *models.Team) error {
	defer r.store.lock(r.locking)()
	if team.CreatedAt.IsZero() {
		team.CreatedAt = r.store.now()
	}
	r.store.state.teams[team.ID] = *team
	return nil
}

func (r *teamRepo) GetByID(id string) (*models.Team, error) {
	defer r.store.lock(r.locking)()
	team, ok := r.store.state.teams[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	return &team, nil
}

func (r *teamRepo) ExistsForContest(accountID, contestID uint) (bool, error) {
	defer r.store.lock(r.locking)()
	for _, team := range r.store.state.teams {
		if team.AccountID == accountID && team.ContestID == contestID {
			return true, nil
		}
	}
	return false, nil
}

func (r *teamRepo) ListByContest(contestID uint) ([]models.Team, error) {
	defer r.store.lock(r.locking)()
	var teams []models.Team
	for _, team := range r.store.state.teams {
		if team.ContestID == contestID {
			teams = append(teams, team)
		}
	}
	sort.Slice(teams, func(i, j int) bool {
		if teams[i].TotalPoints != teams[j].TotalPoints {
			return teams[i].TotalPoints > teams[j].TotalPoints
		}
		return teams[i].CreatedAt.Before(teams[j].CreatedAt)
	})
	return teams, nil
}

func (r *teamRepo) UpdateTotalPoints(teamID string, points int) error {
	defer r.store.lock(r.locking)()
	team, ok := r.store.state.teams[teamID]
	if !ok {
		return repositories.ErrTeamNotFound
	}
	team.TotalPoints = points
	r.store.state.teams[teamID] = team
	return nil
}
