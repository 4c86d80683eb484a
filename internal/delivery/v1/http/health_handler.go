package http

import "net/http"

type HealthHandler struct {
	service string
	version string
}

func NewHealthHandler(service, version string) *HealthHandler {
	return &HealthHandler{service: service, version: version}
}

// healthCheck
//
//	@Summary		Проверка здоровья сервиса
//	@Tags			service
//	@Produce		json
//	@Success		200	{object}	HealthResponse	"Состояние сервиса"
//	@Router			/health [get]
func (h *HealthHandler) healthCheck(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, &HealthResponse{
		Status:  "healthy",
		Service: h.service,
		Version: h.version,
	})
}

// root возвращает справочную информацию о сервисе.
func (h *HealthHandler) root(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, map[string]any{
		"service": h.service,
		"version": h.version,
		"docs":    "/swagger/index.html",
		"health":  "/health",
	})
}
