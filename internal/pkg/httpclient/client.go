package httpclient

import (
	"net/http"

	"order-service/internal/pkg/config"
	"order-service/pkg/logger"
)

// NewCatalogClient собирает HTTP клиент для походов в каталог.
// Таймаут ограничивает весь запрос целиком, ретраев и circuit breaker нет.
func NewCatalogClient(log logger.Logger, cfg *config.Catalog) *http.Client {
	log.With(
		logger.NewField("base_url", cfg.BaseURL),
		logger.NewField("timeout", cfg.RequestTimeout.String()),
	).Info("catalog HTTP client configured")

	return &http.Client{
		Timeout: cfg.RequestTimeout,
	}
}
