package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  int64
	Total     decimal.Decimal
	Status    string
	CreatedAt time.Time
}
