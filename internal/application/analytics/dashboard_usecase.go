// Package analytics contiene los casos de uso de solo lectura del dashboard:
// KPIs del catálogo y serie de ventas por mes.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Jugueteria-api/internal/application/dto"
	"github.com/jhoicas/Jugueteria-api/internal/domain/repository"
)

// lowStockThreshold umbral fijo de "inventario bajo": stock estrictamente menor a 10.
const lowStockThreshold = 10

// DashboardUseCase genera los agregados del dashboard.
//
// Fuente de datos: DashboardRepository (consultas read-only). No accede
// directamente a las tablas; delega todo en el repositorio.
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo}
}

// GetSummary construye el resumen de KPIs: total de productos, productos con
// inventario bajo y suma histórica de ventas (cero si no hay ninguna).
//
// Las tres consultas se lanzan en paralelo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.SummaryResponse, error) {
	type countResult struct {
		n   int
		err error
	}
	type sumResult struct {
		total decimal.Decimal
		err   error
	}

	totalCh := make(chan countResult, 1)
	lowCh := make(chan countResult, 1)
	salesCh := make(chan sumResult, 1)

	go func() {
		n, err := uc.dashboardRepo.CountProducts(ctx)
		totalCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashboardRepo.CountLowStock(ctx, lowStockThreshold)
		lowCh <- countResult{n, err}
	}()
	go func() {
		total, err := uc.dashboardRepo.SumSales(ctx)
		salesCh <- sumResult{total, err}
	}()

	total := <-totalCh
	low := <-lowCh
	sales := <-salesCh

	if total.err != nil {
		return nil, fmt.Errorf("dashboard: total de productos: %w", total.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: inventario bajo: %w", low.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas totales: %w", sales.err)
	}

	return &dto.SummaryResponse{
		TotalProducts: total.n,
		LowInventory:  low.n,
		TotalSales:    sales.total,
	}, nil
}

// GetMonthlySales agrupa las ventas por año-mes calendario, suma los totales
// por grupo y devuelve la serie en orden cronológico ascendente. Sin ventas
// devuelve una secuencia vacía, no un error.
func (uc *DashboardUseCase) GetMonthlySales(ctx context.Context) ([]dto.MonthlySalesItem, error) {
	totals, err := uc.dashboardRepo.ListSaleTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: ventas por mes: %w", err)
	}
	return groupByMonth(totals), nil
}

// groupByMonth acumula los totales por año-mes. Recibe las ventas ordenadas
// por fecha ascendente, así que el primer avistamiento de cada mes ya deja la
// serie en orden cronológico.
func groupByMonth(totals []repository.SaleTotal) []dto.MonthlySalesItem {
	items := make([]dto.MonthlySalesItem, 0, len(totals))
	index := make(map[string]int)

	for _, t := range totals {
		key := fmt.Sprintf("%04d-%02d", t.SoldAt.Year(), int(t.SoldAt.Month()))
		i, ok := index[key]
		if !ok {
			i = len(items)
			index[key] = i
			items = append(items, dto.MonthlySalesItem{
				Month: monthLabel(t.SoldAt),
				Total: decimal.Zero,
			})
		}
		items[i].Total = items[i].Total.Add(t.Total)
	}
	return items
}

// monthLabel devuelve la etiqueta abreviada del mes, ej: "Ene 2025".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Ene", "Feb", "Mar", "Abr", "May", "Jun",
		"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
