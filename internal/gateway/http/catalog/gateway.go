package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"order-service/internal/entities"
	"order-service/internal/service/order"
)

const (
	serviceName = "product-catalog"

	codeTransportError = "transport_error"
)

type Gateway struct {
	client  httpDoer
	baseURL string
}

func New(client httpDoer, baseURL string) *Gateway {
	return &Gateway{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type productResponse struct {
	Price json.Number `json:"price"`
	Stock int64       `json:"stock"`
}

func (g *Gateway) FetchProduct(ctx context.Context, productID int64) (*entities.Product, error) {
	url := fmt.Sprintf("%s/products/%d", g.baseURL, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("gateway catalog, build request: %w", err)
	}

	start := time.Now()
	resp, err := g.client.Do(req)
	observeRequest(start, resp, err)
	if err != nil {
		return nil, fmt.Errorf("gateway catalog, get product %d: %w", productID, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// любой неуспешный статус каталога считаем отсутствием товара,
	// таймаут/5xx от этой ветки не отличаются
	if resp.StatusCode != http.StatusOK {
		return nil, order.ErrProductNotFound
	}

	// цена приходит внешним числом, парсим через json.Number
	// чтобы не потерять точность на float64
	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()

	var productModel productResponse
	if err := decoder.Decode(&productModel); err != nil {
		return nil, fmt.Errorf("gateway catalog, decode product %d: %w", productID, err)
	}

	product, err := toDomain(productModel)
	if err != nil {
		return nil, fmt.Errorf("gateway catalog, product %d: %w", productID, err)
	}

	return product, nil
}

func observeRequest(start time.Time, resp *http.Response, err error) {
	code := codeTransportError
	if err == nil && resp != nil {
		code = strconv.Itoa(resp.StatusCode)
	}

	// Метрики Prometheus
	GatewayRequestDuration.WithLabelValues(serviceName, "GetProduct", code).Observe(time.Since(start).Seconds())
	GatewayRequestTotal.WithLabelValues(serviceName, "GetProduct", code).Inc()
}
