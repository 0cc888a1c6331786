package schedule

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"proxima-dashboard/internal/storage"
)

type ScheduleStorage interface {
	GetAllAvailabilities(ctx context.Context) ([]storage.Availability, error)
	GetRecurringAbsences(ctx context.Context) ([]storage.RecurringAbsence, error)
	GetGlobalDays(ctx context.Context) ([]storage.GlobalDay, error)
}

type Service struct {
	storage ScheduleStorage
}

func NewService(storage ScheduleStorage) *Service {
	return &Service{storage: storage}
}

func (s *Service) Load(ctx context.Context) (Input, error) {
	const op = "service.schedule.Load"

	var in Input
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := s.storage.GetAllAvailabilities(gctx)
		if err != nil {
			return fmt.Errorf("availabilities: %w", err)
		}
		in.Availabilities = list
		return nil
	})

	g.Go(func() error {
		list, err := s.storage.GetRecurringAbsences(gctx)
		if err != nil {
			return fmt.Errorf("recurring absences: %w", err)
		}
		in.Absences = list
		return nil
	})

	g.Go(func() error {
		list, err := s.storage.GetGlobalDays(gctx)
		if err != nil {
			return fmt.Errorf("global days: %w", err)
		}
		in.GlobalDays = list
		return nil
	})

	if err := g.Wait(); err != nil {
		return Input{}, fmt.Errorf("%s: %w", op, err)
	}

	return in, nil
}

// Calendar returns the planner days between from and to, both inclusive.
func (s *Service) Calendar(ctx context.Context, from, to string) ([]Day, error) {
	const op = "service.schedule.Calendar"

	start, end, err := ParseRange(from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	in, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	return Calendar(in, start, end), nil
}
