package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Cotizaciones-api/internal/application/analytics"
	"github.com/jhoicas/Cotizaciones-api/internal/application/dto"
)

// DashboardHandler panel principal e historial de precios.
type DashboardHandler struct {
	stats   *appanalytics.DashboardUseCase
	history *appanalytics.HistoryUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(stats *appanalytics.DashboardUseCase, history *appanalytics.HistoryUseCase) *DashboardHandler {
	return &DashboardHandler{stats: stats, history: history}
}

// Stats godoc
// @Summary      Cantidad de cotizaciones y monto total cotizado
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.stats.Stats(c.UserContext()))
}

// History godoc
// @Summary      Buscar precios cotizados por nombre de producto
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "palabra clave (vacío = todo)"
// @Param        offset  query  int     false  "desplazamiento"
// @Param        limit   query  int     false  "tamaño de página"
// @Success      200  {object}  dto.HistoryPageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/history [get]
func (h *DashboardHandler) History(c *fiber.Ctx) error {
	var q dto.HistoryQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	return c.JSON(h.history.Search(c.UserContext(), q))
}
