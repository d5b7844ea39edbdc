package entities

import "github.com/shopspring/decimal"

// Product — снапшот цены и остатка из каталога на момент создания заказа.
// Не персистится: если каталог поменялся позже, прошлые заказы не пересчитываются.
type Product struct {
	Price decimal.Decimal
	Stock int64
}
