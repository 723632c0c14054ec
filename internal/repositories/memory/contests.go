package memory

import (
	"time"

	"crease/internal/models"
	"crease/internal/repositories"
)

type contestRepo struct {
	store   *Store
	locking bool
}

func (r *contestRepo) Create(contest *models.Contest) error {
	defer r.store.lock(r.locking)()
	if contest.ID == 0 {
		r.store.state.contestSeq++
		contest.ID = r.store.state.contestSeq
	}
	if contest.CreatedAt.IsZero() {
		contest.CreatedAt = time.Now().UTC()
	}
	r.store.state.contests[contest.ID] = *contest
	return nil
}

func (r *contestRepo) GetByID(id uint) (*models.Contest, error) {
	defer r.store.lock(r.locking)()
	return r.get(id)
}

func (r *contestRepo) get(id uint) (*models.Contest, error) {
	contest, ok := r.store.state.contests[id]
	if !ok {
		return nil, repositories.ErrContestNotFound
	}
	return &contest, nil
}

func (r *contestRepo) ListByMatch(matchRef string) ([]models.Contest, error) {
	defer r.store.lock(r.locking)()
	var contests []models.Contest
	for _, contest := range r.store.state.contests {
		if contest.MatchRef == matchRef {
			contests = append(contests, contest)
		}
	}
	return contests, nil
}

func (r *contestRepo) ReserveSlot(contestID uint) error {
	defer r.store.lock(r.locking)()
	contest, err := r.get(contestID)
	if err != nil {
		return err
	}
	if !contest.Active {
		return repositories.ErrContestClosed
	}
	if contest.JoinedTeams >= contest.MaxTeams {
		return repositories.ErrContestFull
	}
	contest.JoinedTeams++
	r.store.state.contests[contestID] = *contest
	return nil
}

func (r *contestRepo) ReleaseSlot(contestID uint) error {
	defer r.store.lock(r.locking)()
	contest, err := r.get(contestID)
	if err != nil {
		return err
	}
	if contest.JoinedTeams > 0 {
		contest.JoinedTeams--
	}
	r.store.state.contests[contestID] = *contest
	return nil
}

func (r *contestRepo) Close(contestID uint) error {
	defer r.store.lock(r.locking)()
	contest, err := r.get(contestID)
	if err != nil {
		return err
	}
	contest.Active = false
	r.store.state.contests[contestID] = *contest
	return nil
}
