// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xpress-ledger/backend/internal/application/usecase/summary"
	"github.com/xpress-ledger/backend/internal/domain/entity"
)

// CategoryTotalResponse represents one category's aggregated figures.
type CategoryTotalResponse struct {
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Total        decimal.Decimal `json:"total"`
	Count        int             `json:"count"`
}

// CategoryTotalsResponse represents the per-category aggregation response.
type CategoryTotalsResponse struct {
	Categories []CategoryTotalResponse `json:"categories"`
}

// PeriodTotalResponse represents one time bucket with per-category subtotals.
type PeriodTotalResponse struct {
	Period     string                  `json:"period"`
	Start      string                  `json:"start"`
	Total      decimal.Decimal         `json:"total"`
	Count      int                     `json:"count"`
	Categories []CategoryTotalResponse `json:"categories"`
}

// PeriodTotalsResponse represents the period aggregation response.
type PeriodTotalsResponse struct {
	Granularity string                `json:"granularity"`
	Periods     []PeriodTotalResponse `json:"periods"`
}

// DatasetTotalsResponse represents the headline dataset figures.
type DatasetTotalsResponse struct {
	IncomeTotal  decimal.Decimal `json:"income_total"`
	ExpenseTotal decimal.Decimal `json:"expense_total"`
	NetTotal     decimal.Decimal `json:"net_total"`
	Count        int             `json:"count"`
}

// ToDatasetTotalsResponse converts the headline output to the response form.
func ToDatasetTotalsResponse(output *summary.GetTotalsOutput) DatasetTotalsResponse {
	return DatasetTotalsResponse{
		IncomeTotal:  output.Totals.IncomeTotal,
		ExpenseTotal: output.Totals.ExpenseTotal,
		NetTotal:     output.Totals.NetTotal,
		Count:        output.Count,
	}
}

// ToCategoryTotalResponse converts a category total to the response form.
func ToCategoryTotalResponse(total entity.CategoryTotal) CategoryTotalResponse {
	return CategoryTotalResponse{
		CategoryID:   total.CategoryID.String(),
		CategoryName: total.CategoryName,
		Total:        total.Total,
		Count:        total.Count,
	}
}

// ToCategoryTotalsResponse converts the per-category output to the response form.
func ToCategoryTotalsResponse(output *summary.TotalsByCategoryOutput) CategoryTotalsResponse {
	categories := make([]CategoryTotalResponse, len(output.Categories))
	for i, total := range output.Categories {
		categories[i] = ToCategoryTotalResponse(total)
	}
	return CategoryTotalsResponse{Categories: categories}
}

// ToPeriodTotalsResponse converts the period output to the response form.
func ToPeriodTotalsResponse(output *summary.TotalsByPeriodOutput) PeriodTotalsResponse {
	periods := make([]PeriodTotalResponse, len(output.Periods))
	for i, period := range output.Periods {
		categories := make([]CategoryTotalResponse, len(period.ByCategory))
		for j, total := range period.ByCategory {
			categories[j] = ToCategoryTotalResponse(total)
		}
		periods[i] = PeriodTotalResponse{
			Period:     period.Key,
			Start:      period.Start.Format(time.DateOnly),
			Total:      period.Total,
			Count:      period.Count,
			Categories: categories,
		}
	}
	return PeriodTotalsResponse{
		Granularity: string(output.Granularity),
		Periods:     periods,
	}
}
