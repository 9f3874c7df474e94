package entity

import "time"

// Client representa un cliente al que se le emiten cotizaciones.
// Se crea de forma explícita y no se modifica ni se elimina.
type Client struct {
	ID            string
	Name          string
	TaxID         string // número de identificación tributaria (統一編號)
	ContactPerson string
	Phone         string
	Address       string
	CreatedAt     time.Time
}
