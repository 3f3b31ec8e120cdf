package service

import (
	"context"
	"fmt"

	"food-admin/internal/metrics"
	"food-admin/internal/model"
	"food-admin/internal/projection"
	"food-admin/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// OrderTotal returns the sum of price times quantity over items.
// The arithmetic is done in decimal so that 0.1 * 3 totals 0.3.
func OrderTotal(items []model.OrderItemRequest) float64 {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total.InexactFloat64()
}

// CreateOrder validates the request, computes the total from the submitted
// line item prices and stores the order with its items in one transaction.
// User and product references are not checked.
func (s *orderService) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	// Validate request
	userID, productIDs, err := s.validateOrderRequest(req)
	if err != nil {
		return nil, err
	}

	// Start transaction
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	now := timestamp()
	order := &model.Order{
		ID:          uuid.New(),
		UserID:      userID,
		TotalAmount: OrderTotal(req.Items),
		OrderDate:   now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Create order items
	orderItems := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		orderItems[i] = model.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: productIDs[i],
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(orderItems)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	// Commit transaction
	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	order.Items = orderItems
	metrics.RecordOrderCreated(len(orderItems), order.TotalAmount)

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("user_id", order.UserID.String()).
		Int("item_count", len(orderItems)).
		Float64("total_amount", order.TotalAmount).
		Msg("order created successfully")

	return order, nil
}

// List retrieves every order with its user and line item products expanded.
func (s *orderService) List(ctx context.Context) ([]model.OrderView, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	userIDs, productIDs := projection.OrderReferences(orders)

	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve order users: %w", err)
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve product details: %w", err)
	}

	return projection.Orders(orders, projection.UsersByID(users), projection.ProductsByID(products)), nil
}

// validateOrderRequest checks the request and returns the parsed user and
// product ids. Items are checked before anything else.
func (s *orderService) validateOrderRequest(req *model.OrderRequest) (uuid.UUID, []uuid.UUID, error) {
	if req == nil || len(req.Items) == 0 {
		return uuid.Nil, nil, model.ErrInvalidOrder
	}

	if req.UserID == "" {
		return uuid.Nil, nil, model.ErrMissingUser
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil || userID == uuid.Nil {
		s.logger.Warn().Str("user_id", req.UserID).Msg("invalid order user id")
		return uuid.Nil, nil, model.ErrInvalidUserID
	}

	// Validate each item
	productIDs := make([]uuid.UUID, len(req.Items))
	for i, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil || productID == uuid.Nil || item.Quantity < 1 || item.Price < 0 {
			s.logger.Warn().
				Int("item_index", i).
				Str("product_id", item.ProductID).
				Int("quantity", item.Quantity).
				Float64("price", item.Price).
				Msg("invalid order item")
			return uuid.Nil, nil, model.ErrInvalidItem
		}
		productIDs[i] = productID
	}

	return userID, productIDs, nil
}
