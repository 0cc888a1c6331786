package statistics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"proxima-dashboard/internal/storage"
)

type StatisticsStorage interface {
	GetAllOrders(ctx context.Context) ([]storage.WorkOrder, error)
	GetAllWorkLogs(ctx context.Context) ([]storage.WorkLog, error)
	GetAllInvoices(ctx context.Context) ([]storage.PurchaseInvoice, error)
	GetWorkerRates(ctx context.Context) (storage.RateTable, error)
}

type Service struct {
	storage StatisticsStorage
}

func NewService(storage StatisticsStorage) *Service {
	return &Service{storage: storage}
}

// Load fetches the four input collections in parallel.
func (s *Service) Load(ctx context.Context) (Input, error) {
	const op = "service.statistics.Load"

	var in Input
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		orders, err := s.storage.GetAllOrders(gctx)
		if err != nil {
			return fmt.Errorf("orders: %w", err)
		}
		in.Orders = orders
		return nil
	})

	g.Go(func() error {
		logs, err := s.storage.GetAllWorkLogs(gctx)
		if err != nil {
			return fmt.Errorf("work logs: %w", err)
		}
		in.Logs = logs
		return nil
	})

	g.Go(func() error {
		invoices, err := s.storage.GetAllInvoices(gctx)
		if err != nil {
			return fmt.Errorf("invoices: %w", err)
		}
		in.Invoices = invoices
		return nil
	})

	g.Go(func() error {
		rates, err := s.storage.GetWorkerRates(gctx)
		if err != nil {
			return fmt.Errorf("worker rates: %w", err)
		}
		in.Rates = rates
		return nil
	})

	if err := g.Wait(); err != nil {
		return Input{}, fmt.Errorf("%s: %w", op, err)
	}

	return in, nil
}

func (s *Service) Report(ctx context.Context, selection string) (Report, error) {
	in, err := s.Load(ctx)
	if err != nil {
		return Report{}, err
	}
	return Build(in, selection), nil
}

// Registry returns only the joined log rows for the selection.
func (s *Service) Registry(ctx context.Context, selection string) ([]RegistryRow, error) {
	const op = "service.statistics.Registry"

	var (
		orders []storage.WorkOrder
		logs   []storage.WorkLog
	)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		orders, err = s.storage.GetAllOrders(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		logs, err = s.storage.GetAllWorkLogs(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if selection == "" {
		selection = AllOrders
	}
	return BuildLogRegistry(SelectLogs(logs, selection), orders), nil
}
