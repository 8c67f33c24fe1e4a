package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Jugueteria-api/internal/application/analytics"
	"github.com/jhoicas/Jugueteria-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del dashboard
// @Description  Total de productos, productos con inventario bajo (stock < 10) y suma histórica de ventas.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("resumen del dashboard")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al obtener datos del dashboard"})
	}
	return c.JSON(out)
}

// GetMonthlySales godoc
// @Summary      Ventas por mes
// @Description  Serie de totales por mes calendario en orden cronológico, con etiqueta "Ene 2025".."Dic 2025".
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}   dto.MonthlySalesItem
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /dashboard/sales-by-month [get]
func (h *DashboardHandler) GetMonthlySales(c *fiber.Ctx) error {
	out, err := h.uc.GetMonthlySales(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("ventas por mes")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al obtener ventas por mes"})
	}
	return c.JSON(out)
}
