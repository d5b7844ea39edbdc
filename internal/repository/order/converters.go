package order

import (
	"order-service/internal/entities"
)

func ToDomain(orderModel *OrderDB) *entities.Order {
	if orderModel == nil {
		return nil
	}

	return &entities.Order{
		ID:        orderModel.ID,
		UserID:    orderModel.UserID,
		ProductID: orderModel.ProductID,
		Quantity:  orderModel.Quantity,
		Total:     orderModel.Total,
		Status:    entities.OrderStatusType(orderModel.Status),
		CreatedAt: orderModel.CreatedAt,
	}
}

func FromDomain(orderEntity *entities.Order) *OrderDB {
	if orderEntity == nil {
		return nil
	}

	return &OrderDB{
		ID:        orderEntity.ID,
		UserID:    orderEntity.UserID,
		ProductID: orderEntity.ProductID,
		Quantity:  orderEntity.Quantity,
		Total:     orderEntity.Total,
		Status:    orderEntity.Status.String(),
		CreatedAt: orderEntity.CreatedAt,
	}
}
