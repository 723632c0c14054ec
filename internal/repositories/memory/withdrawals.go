package memory

import (
	"sort"
	"time"

	"crease/internal/models"
	"crease/internal/repositories"
)

type withdrawalRepo struct {
	store   *Store
	locking bool
}

func (r *withdrawalRepo) Create(withdrawal *models.Withdrawal) error {
	defer r.store.lock(r.locking)()
	if withdrawal.ID == 0 {
		r.store.state.withdrawalSeq++
		withdrawal.ID = r.store.state.withdrawalSeq
	}
	if withdrawal.CreatedAt.IsZero() {
		withdrawal.CreatedAt = time.Now().UTC()
	}
	r.store.state.withdrawals[withdrawal.ID] = *withdrawal
	return nil
}

func (r *withdrawalRepo) GetByID(id uint) (*models.Withdrawal, error) {
	defer r.store.lock(r.locking)()
	withdrawal, ok := r.store.state.withdrawals[id]
	if !ok {
		return nil, repositories.ErrWithdrawalNotFound
	}
	return &withdrawal, nil
}

func (r *withdrawalRepo) GetByIDForUpdate(id uint) (*models.Withdrawal, error) {
	return r.GetByID(id)
}

func (r *withdrawalRepo) UpdateStatus(id uint, from, to string) error {
	defer r.store.lock(r.locking)()
	withdrawal, ok := r.store.state.withdrawals[id]
	if !ok || withdrawal.Status != from {
		return repositories.ErrWithdrawalNotFound
	}
	withdrawal.Status = to
	r.store.state.withdrawals[id] = withdrawal
	return nil
}

func (r *withdrawalRepo) ListPending(limit int) ([]models.Withdrawal, error) {
	defer r.store.lock(r.locking)()
	var withdrawals []models.Withdrawal
	for _, w := range r.store.state.withdrawals {
		if w.Status == models.WithdrawalStatusPending {
			withdrawals = append(withdrawals, w)
		}
	}
	sort.Slice(withdrawals, func(i, j int) bool {
		return withdrawals[i].CreatedAt.Before(withdrawals[j].CreatedAt)
	})
	if limit > 0 && limit < len(withdrawals) {
		withdrawals = withdrawals[:limit]
	}
	return withdrawals, nil
}
