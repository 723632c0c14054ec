package join

import (
	"context"
	"errors"
	"log"
	"time"

	"crease/internal/events"
	"crease/internal/models"
	"crease/internal/repositories"
	"crease/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type service struct {
	store     repositories.Store
	publisher events.Publisher
	config    Config
}

// NewService creates a new join coordinator
func NewService(store repositories.Store, publisher events.Publisher, config Config) Service {
	if store == nil {
		panic("store is required")
	}
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if config.MaxRetries == 0 {
		config.MaxRetries = DefaultRetries
	}
	if config.RetryBackoff == 0 {
		config.RetryBackoff = DefaultRetryBackoff
	}
	return &service{
		store:     store,
		publisher: publisher,
		config:    config,
	}
}

func (s *service) JoinContest(ctx context.Context, req Request) (*models.Team, error) {
	// Roster problems are rejected before anything is touched.
	if err := validation.ValidateRoster(req.Players, req.CaptainID, req.ViceCaptainID); err != nil {
		return nil, err
	}

	var (
		team     *models.Team
		entryFee decimal.Decimal
		err      error
	)

	backoff := s.config.RetryBackoff
	for attempt := 0; attempt <= s.config.MaxRetries; attempt++ {
		team, entryFee, err = s.joinOnce(req)
		if !errors.Is(err, repositories.ErrConcurrencyConflict) {
			break
		}
		log.Printf("join conflict for account %d contest %d, retrying (%d/%d)",
			req.AccountID, req.ContestID, attempt+1, s.config.MaxRetries)
		time.Sleep(backoff)
		backoff *= 2
	}
	if err != nil {
		return nil, err
	}

	event := events.ContestJoined{
		AccountID:  req.AccountID,
		ContestID:  req.ContestID,
		TeamID:     team.ID,
		EntryFee:   entryFee,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, events.TopicContestJoined, event); err != nil {
		log.Printf("failed to publish join event for team %s: %v", team.ID, err)
	}
	return team, nil
}

// joinOnce runs the whole five-step sequence in a single database
// transaction. A failure at any step rolls back every earlier one, so the
// slot reserved in step two is released whenever the debit in step three
// rejects the account.
func (s *service) joinOnce(req Request) (*models.Team, decimal.Decimal, error) {
	var (
		team     *models.Team
		entryFee decimal.Decimal
	)

	err := s.store.ExecuteInTransaction(func(tx repositories.Store) error {
		contest, err := tx.Contests().GetByID(req.ContestID)
		if err != nil {
			return err
		}
		entryFee = contest.EntryFee

		if !s.config.AllowMultipleEntries {
			exists, err := tx.Teams().ExistsForContest(req.AccountID, req.ContestID)
			if err != nil {
				return err
			}
			if exists {
				return ErrAlreadyJoined
			}
		}

		// Reserve capacity before taking money, so a full contest never
		// holds a debited balance.
		if err := tx.Contests().ReserveSlot(req.ContestID); err != nil {
			return err
		}

		if err := tx.Accounts().Debit(req.AccountID, contest.EntryFee); err != nil {
			return err
		}

		players := make([]interface{}, len(req.Players))
		for i, p := range req.Players {
			players[i] = map[string]interface{}{"player_id": p.PlayerID, "role": p.Role}
		}
		team = &models.Team{
			ID:            uuid.NewString(),
			AccountID:     req.AccountID,
			ContestID:     req.ContestID,
			Players:       models.NewJSON(map[string]interface{}{"players": players}),
			CaptainID:     req.CaptainID,
			ViceCaptainID: req.ViceCaptainID,
		}
		if err := tx.Teams().Create(team); err != nil {
			return err
		}

		if err := tx.Accounts().IncrementContestsJoined(req.AccountID); err != nil {
			return err
		}

		return tx.Accounts().CreateEntry(&models.LedgerEntry{
			AccountID: req.AccountID,
			Type:      models.EntryTypeEntryFee,
			Amount:    contest.EntryFee.Neg(),
			Reference: team.ID,
			Metadata: models.NewJSON(map[string]interface{}{
				"contest_id": req.ContestID,
			}),
		})
	})
	if err != nil {
		return nil, decimal.Zero, s.mapError(err)
	}
	return team, entryFee, nil
}

func (s *service) mapError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrContestNotFound):
		return ErrContestNotFound
	case errors.Is(err, repositories.ErrContestFull):
		return ErrContestFull
	case errors.Is(err, repositories.ErrContestClosed):
		return ErrContestClosed
	case errors.Is(err, repositories.ErrInsufficientFunds):
		return ErrInsufficientFunds
	case errors.Is(err, repositories.ErrAccountNotFound):
		return ErrAccountNotFound
	default:
		return err
	}
}
