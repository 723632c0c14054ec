package contest

import (
	"context"
	"errors"
	"fmt"

	"crease/internal/models"
	"crease/internal/repositories"
)

type service struct {
	repo repositories.ContestRepository
}

// NewService creates a new contest registry service
func NewService(repo repositories.ContestRepository) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context, contestID uint) (*models.Contest, error) {
	contest, err := s.repo.GetByID(contestID)
	if err != nil {
		if errors.Is(err, repositories.ErrContestNotFound) {
			return nil, ErrContestNotFound
		}
		return nil, fmt.Errorf("failed to get contest: %w", err)
	}
	return contest, nil
}

func (s *service) Register(ctx context.Context, contest *models.Contest) error {
	if contest == nil {
		return ErrInvalidContest
	}
	if !contest.EntryFee.IsPositive() || contest.MaxTeams <= 0 {
		return ErrInvalidContest
	}
	contest.JoinedTeams = 0
	contest.Active = true

	if err := s.repo.Create(contest); err != nil {
		return fmt.Errorf("failed to register contest: %w", err)
	}
	return nil
}

func (s *service) ReserveSlot(ctx context.Context, contestID uint) error {
	if err := s.repo.ReserveSlot(contestID); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *service) ReleaseSlot(ctx context.Context, contestID uint) error {
	if err := s.repo.ReleaseSlot(contestID); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *service) Close(ctx context.Context, contestID uint) error {
	if err := s.repo.Close(contestID); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *service) mapError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrContestNotFound):
		return ErrContestNotFound
	case errors.Is(err, repositories.ErrContestFull):
		return ErrContestFull
	case errors.Is(err, repositories.ErrContestClosed):
		return ErrContestClosed
	default:
		return err
	}
}
