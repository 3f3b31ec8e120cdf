package service

import (
	"context"
	"fmt"

	"food-admin/internal/model"
	"food-admin/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// dashboardService implements DashboardService.
type dashboardService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	logger      zerolog.Logger
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	logger zerolog.Logger,
) DashboardService {
	return &dashboardService{
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		logger:      logger.With().Str("service", "dashboard").Logger(),
	}
}

// Summary counts users, products and orders and sums order revenue.
// Figures are read live on every call; the four queries run concurrently.
func (s *dashboardService) Summary(ctx context.Context) (*model.DashboardSummary, error) {
	var summary model.DashboardSummary

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.userRepo.Count(gctx)
		if err != nil {
			return fmt.Errorf("failed to count users: %w", err)
		}
		summary.TotalUsers = n
		return nil
	})
	g.Go(func() error {
		n, err := s.productRepo.Count(gctx)
		if err != nil {
			return fmt.Errorf("failed to count products: %w", err)
		}
		summary.TotalProducts = n
		return nil
	})
	g.Go(func() error {
		n, err := s.orderRepo.Count(gctx)
		if err != nil {
			return fmt.Errorf("failed to count orders: %w", err)
		}
		summary.TotalOrders = n
		return nil
	})
	g.Go(func() error {
		revenue, err := s.orderRepo.TotalRevenue(gctx)
		if err != nil {
			return fmt.Errorf("failed to sum revenue: %w", err)
		}
		summary.TotalRevenue = revenue
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("failed to compute dashboard summary")
		return nil, err
	}

	return &summary, nil
}
