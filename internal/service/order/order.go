package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"order-service/internal/entities"
)

type Order struct {
	repository Repository
	catalog    CatalogGateway
	txManager  TxManager
}

func New(repository Repository, catalog CatalogGateway, txManager TxManager) *Order {
	return &Order{
		repository: repository,
		catalog:    catalog,
		txManager:  txManager,
	}
}

func (s *Order) CreateOrder(ctx context.Context, userID, productID, quantity int64) (*entities.Order, error) {
	product, err := s.catalog.FetchProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("fetch product %d: %w", productID, err)
	}

	// quantity намеренно не ограничено снизу, нулевое/отрицательное значение
	// принимается и дает неположительный total
	total := product.Price.Mul(decimal.NewFromInt(quantity))

	// проверка остатка без резервирования, между проверкой и записью
	// остаток может измениться
	if product.Stock < quantity {
		return nil, ErrInsufficientStock
	}

	orderEntity := entities.Order{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		Total:     total,
		Status:    entities.DefaultOrderStatus,
		CreatedAt: time.Now().UTC(),
	}

	var created *entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repository.Create(ctx, orderEntity)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Order) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	orderEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return orderEntity, nil
}
