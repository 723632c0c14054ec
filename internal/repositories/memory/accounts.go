package memory

import (
	"sort"
	"time"

	"crease/internal/models"
	"crease/internal/repositories"

	"github.com/shopspring/decimal"
)

type accountRepo struct {
	store   *Store
	locking bool
}

func (r *accountRepo) Create(account *models.Account) error {
	defer r.store.lock(r.locking)()
	if account.ID == 0 {
		r.store.state.accountSeq++
		account.ID = r.store.state.accountSeq
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}
	r.store.state.accounts[account.ID] = *account
	return nil
}

func (r *accountRepo) GetByID(id uint) (*models.Account, error) {
	defer r.store.lock(r.locking)()
	return r.get(id)
}

func (r *accountRepo) get(id uint) (*models.Account, error) {
	account, ok := r.store.state.accounts[id]
	if !ok {
		return nil, repositories.ErrAccountNotFound
	}
	return &account, nil
}

func (r *accountRepo) Credit(accountID uint, amount decimal.Decimal) error {
	defer r.store.lock(r.locking)()
	account, err := r.get(accountID)
	if err != nil {
		return err
	}
	account.Balance = account.Balance.Add(amount)
	r.store.state.accounts[accountID] = *account
	return nil
}

func (r *accountRepo) Debit(accountID uint, amount decimal.Decimal) error {
	defer r.store.lock(r.locking)()
	account, err := r.get(accountID)
	if err != nil {
		return err
	}
	if account.Balance.LessThan(amount) {
		return repositories.ErrInsufficientFunds
	}
	account.Balance = account.Balance.Sub(amount)
	r.store.state.accounts[accountID] = *account
	return nil
}

func (r *accountRepo) AddWinnings(accountID uint, amount decimal.Decimal) error {
	defer r.store.lock(r.locking)()
	account, err := r.get(accountID)
	if err != nil {
		return err
	}
	account.Balance = account.Balance.Add(amount)
	account.TotalWinnings = account.TotalWinnings.Add(amount)
	r.store.state.accounts[accountID] = *account
	return nil
}

func (r *accountRepo) IncrementContestsJoined(accountID uint) error {
	defer r.store.lock(r.locking)()
	account, err := r.get(accountID)
	if err != nil {
		return err
	}
	account.TotalContestsJoined++
	r.store.state.accounts[accountID] = *account
	return nil
}

func (r *accountRepo) CreateEntry(entry *models.LedgerEntry) error {
	defer r.store.lock(r.locking)()
	r.store.state.entrySeq++
	entry.ID = r.store.state.entrySeq
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.store.now()
	}
	r.store.state.entries = append(r.store.state.entries, *entry)
	return nil
}

func (r *accountRepo) ListEntries(accountID uint, limit, offset int) ([]models.LedgerEntry, error) {
	defer r.store.lock(r.locking)()
	var entries []models.LedgerEntry
	for _, entry := range r.store.state.entries {
		if entry.AccountID == accountID {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if offset > len(entries) {
		offset = len(entries)
	}
	entries = entries[offset:]
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}
