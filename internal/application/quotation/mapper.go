package quotation

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cotizaciones-api/internal/application/dto"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

func toQuotationResponse(q *entity.Quotation, clientName string, items []*entity.QuotationItem) dto.QuotationResponse {
	out := dto.QuotationResponse{
		DocumentNumber: q.Number,
		QuotationID:    q.ID,
		Date:           q.Date.Format(dateLayout),
		ClientID:       q.ClientID,
		ClientName:     clientName,
		Items:          make([]dto.QuotationItemResponse, 0, len(items)),
		Total:          decimal.Zero,
	}
	for _, it := range items {
		sub := it.Subtotal()
		out.Items = append(out.Items, dto.QuotationItemResponse{
			ID:          it.ID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			DealerPrice: it.DealerPriceSnapshot,
			Subtotal:    sub,
		})
		out.Total = out.Total.Add(sub)
	}
	return out
}

// DocumentFromResponse arma la entrada del generador de PDF a partir de una cotización guardada.
func DocumentFromResponse(q dto.QuotationResponse) dto.QuoteDocument {
	doc := dto.QuoteDocument{
		DocumentNumber: q.DocumentNumber,
		Date:           q.Date,
		ClientName:     q.ClientName,
		Items:          make([]dto.QuoteDocumentRow, 0, len(q.Items)),
	}
	for _, it := range q.Items {
		doc.Items = append(doc.Items, dto.QuoteDocumentRow{
			Name:      it.ProductName,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}
	return doc
}
