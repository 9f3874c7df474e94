package dto

import "time"

// CreateClientRequest body para POST /api/clients.
type CreateClientRequest struct {
	Name          string `json:"name"`
	TaxID         string `json:"tax_id"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TaxID         string    `json:"tax_id"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ClientListResponse listado de clientes. Degraded indica que el almacén no respondió.
type ClientListResponse struct {
	Items    []ClientResponse `json:"items"`
	Degraded bool             `json:"degraded,omitempty"`
}
