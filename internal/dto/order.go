package dto

import (
	"encoding/json"
	"time"

	"order-service/internal/entities"
)

type OrderCreate struct {
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type Order struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	ProductID int64       `json:"product_id"`
	Quantity  int64       `json:"quantity"`
	Total     json.Number `json:"total"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

type Error struct {
	Detail string `json:"detail"`
}

// OrderFromEntity сериализует total через json.Number,
// чтобы в ответе было точное число, а не строка и не float64.
func OrderFromEntity(orderEntity *entities.Order) Order {
	return Order{
		ID:        orderEntity.ID,
		UserID:    orderEntity.UserID,
		ProductID: orderEntity.ProductID,
		Quantity:  orderEntity.Quantity,
		Total:     json.Number(orderEntity.Total.String()),
		Status:    orderEntity.Status.String(),
		CreatedAt: orderEntity.CreatedAt,
	}
}
