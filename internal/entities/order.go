package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  int64
	Total     decimal.Decimal
	Status    OrderStatusType
	CreatedAt time.Time
}

type OrderStatusType string

const (
	OrderPending OrderStatusType = "PENDING"
)

const DefaultOrderStatus = OrderPending

func (s OrderStatusType) String() string {
	return string(s)
}
