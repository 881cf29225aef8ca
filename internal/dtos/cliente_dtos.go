package dtos

import "github.com/ecogestao/erp-backend/internal/models"

type ClientRequest struct {
	Name       string `json:"name" validate:"required"`
	Contact    string `json:"contact" validate:"required"`
	CNPJ       string `json:"cnpj" validate:"required"`
	Address    string `json:"address" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
}

type ClientResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Contact    string  `json:"contact"`
	CNPJ       string  `json:"cnpj"`
	Address    string  `json:"address"`
	PostalCode string  `json:"postal_code"`
	UserID     *string `json:"user_id,omitempty"`
}

// ClientBasicInfo is the flattened client shape embedded in pickup
// responses, keeping the payload cycle-free.
type ClientBasicInfo struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	CNPJ    string `json:"cnpj"`
}

func NewClientResponseFromModel(c *models.Client) *ClientResponse {
	return &ClientResponse{
		ID:         c.ID,
		Name:       c.Name,
		Contact:    c.Contact,
		CNPJ:       c.CNPJ,
		Address:    c.Address,
		PostalCode: c.PostalCode,
		UserID:     c.UserID,
	}
}

func NewClientBasicInfoFromModel(c *models.Client) *ClientBasicInfo {
	if c == nil {
		return nil
	}
	return &ClientBasicInfo{
		ID:      c.ID,
		Name:    c.Name,
		Contact: c.Contact,
		CNPJ:    c.CNPJ,
	}
}
