package healthz_get

import (
	"net/http"

	"order-service/pkg/logger"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

// ServeHTTP отвечает константным "ok" без проверки зависимостей:
// это liveness, доступность БД и каталога тут не проверяется.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write([]byte("ok"))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("write healthz response")
	}
}
