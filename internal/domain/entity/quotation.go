package entity

import "time"

// Quotation representa la cabecera de una cotización.
// Number es el número de documento visible (QUO-YYYYMM-NNN), único en el almacén.
type Quotation struct {
	ID        string
	Number    string
	ClientID  string
	Date      time.Time
	CreatedAt time.Time
	Items     []*QuotationItem
}
