package memory

import (
	"time"

	"crease/internal/models"
	"crease/internal/repositories"
)

type paymentRepo struct {
	store   *Store
	locking bool
}

func (r *paymentRepo) Create(record *models.PaymentRecord) error {
	defer r.store.lock(r.locking)()
	if record.ID == 0 {
		r.store.state.paymentSeq++
		record.ID = r.store.state.paymentSeq
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	r.store.state.payments[record.ID] = *record
	return nil
}

func (r *paymentRepo) GetByOrderRef(orderRef string) (*models.PaymentRecord, error) {
	defer r.store.lock(r.locking)()
	return r.getByOrderRef(orderRef)
}

func (r *paymentRepo) GetByOrderRefForUpdate(orderRef string) (*models.PaymentRecord, error) {
	return r.GetByOrderRef(orderRef)
}

func (r *paymentRepo) getByOrderRef(orderRef string) (*models.PaymentRecord, error) {
	for _, record := range r.store.state.payments {
		if record.OrderRef == orderRef {
			rec := record
			return &rec, nil
		}
	}
	return nil, repositories.ErrOrderNotFound
}

func (r *paymentRepo) MarkCompleted(id uint, externalRef string) error {
	defer r.store.lock(r.locking)()
	record, ok := r.store.state.payments[id]
	if !ok || record.Status != models.PaymentStatusCreated {
		return repositories.ErrOrderNotFound
	}
	record.Status = models.PaymentStatusCompleted
	record.ExternalPaymentRef = &externalRef
	r.store.state.payments[id] = record
	return nil
}

func (r *paymentRepo) MarkFailed(id uint) error {
	defer r.store.lock(r.locking)()
	record, ok := r.store.state.payments[id]
	if !ok || record.Status != models.PaymentStatusCreated {
		return repositories.ErrOrderNotFound
	}
	record.Status = models.PaymentStatusFailed
	r.store.state.payments[id] = record
	return nil
}
