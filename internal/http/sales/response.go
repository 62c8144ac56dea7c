package sales

import (
	"time"

	"github.com/pablolacamera1/ventaspanel/internal/analytics"
	"github.com/pablolacamera1/ventaspanel/internal/sale"
)

type listResponse struct {
	Totals analytics.ListingTotals `json:"totals"`
	Sales  []saleResponse          `json:"sales"`
}

type saleResponse struct {
	ID        int    `json:"id"`
	Date      string `json:"date"`
	Product   string `json:"product"`
	Category  string `json:"category"`
	Customer  string `json:"customer"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	Total     int64  `json:"total"`
	Status    string `json:"status"`
}

func toResponse(v sale.Sale) saleResponse {
	return saleResponse{
		ID:        v.ID,
		Date:      v.Date.Format(time.RFC3339),
		Product:   v.ProductName,
		Category:  v.Category,
		Customer:  v.CustomerName,
		Quantity:  v.Quantity,
		UnitPrice: v.UnitPrice,
		Total:     v.Total,
		Status:    string(v.Status),
	}
}

func toResponseList(sales []sale.Sale) []saleResponse {
	out := make([]saleResponse, len(sales))
	for i, v := range sales {
		out[i] = toResponse(v)
	}

	return out
}
