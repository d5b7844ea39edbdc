package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
	"order-service/internal/entities"
)

func toDomain(productModel productResponse) (*entities.Product, error) {
	price, err := decimal.NewFromString(productModel.Price.String())
	if err != nil {
		return nil, fmt.Errorf("parse price %q: %w", productModel.Price.String(), err)
	}

	return &entities.Product{
		Price: price,
		Stock: productModel.Stock,
	}, nil
}
