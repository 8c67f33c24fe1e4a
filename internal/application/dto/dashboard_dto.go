package dto

import "github.com/shopspring/decimal"

// SummaryResponse KPIs del dashboard.
type SummaryResponse struct {
	TotalProducts int             `json:"totalProducts"`
	LowInventory  int             `json:"lowInventory"`
	TotalSales    decimal.Decimal `json:"totalSales"`
}

// MonthlySalesItem total vendido en un mes calendario, ej. {"month": "Ene 2025", "total": "150"}.
type MonthlySalesItem struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}
