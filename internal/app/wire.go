//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	catalogGateway "order-service/internal/gateway/http/catalog"
	"order-service/internal/pkg/config"
	orderRepo "order-service/internal/repository/order"
	orderService "order-service/internal/service/order"
	"order-service/pkg/logger"
	"order-service/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	catalogClient *http.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideCatalogGateway,
		provideServiceOrder,

		provideSystemMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.CatalogGateway), new(*catalogGateway.Gateway)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
	)
	return &Application{}, nil
}
