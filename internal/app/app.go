package app

import (
	"context"
	"net/http"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"

	catalogGateway "order-service/internal/gateway/http/catalog"
	"order-service/internal/handlers/rest/order_get"
	"order-service/internal/handlers/rest/order_post"
	"order-service/internal/handlers/tasks/system_metrics"
	"order-service/internal/pkg/config"
	orderRepo "order-service/internal/repository/order"
	orderService "order-service/internal/service/order"
	"order-service/pkg/background"
	"order-service/pkg/logger"
	"order-service/pkg/querier"
	"order-service/pkg/tx"
)

type Application struct {
	ServiceOrder      ServiceOrder
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideCatalogGateway(client *http.Client, cfg *config.Config) *catalogGateway.Gateway {
	return catalogGateway.New(client, cfg.Catalog.BaseURL)
}

func provideServiceOrder(
	repository orderService.Repository,
	catalog orderService.CatalogGateway,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(repository, catalog, txManager)
}

func provideSystemMetricsTask(log logger.Logger, cfg *config.Config) *system_metrics.SystemMetrics {
	return system_metrics.New(log, cfg.Tasks.SystemMetricsInterval)
}

func provideTaskList(
	systemMetricsTask *system_metrics.SystemMetrics,
) []background.Task {
	return []background.Task{
		systemMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
