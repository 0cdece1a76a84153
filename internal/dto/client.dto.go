package dto

import (
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/client"
	"github.com/BruksfildServices01/cesta-amigo/internal/format"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
)

// ClientDTO acrescenta o CPF mascarado e a data de nascimento em texto.
type ClientDTO struct {
	models.Client
	BirthDate      string `json:"birth_date"`
	DocumentMasked string `json:"document_masked"`
}

func NewClientDTO(c models.Client) ClientDTO {
	out := ClientDTO{
		Client:    c,
		BirthDate: client.BirthDateString(c),
	}
	if c.DocumentNumber != nil {
		out.DocumentMasked = format.MaskCPF(*c.DocumentNumber)
	}
	return out
}

func NewClientDTOs(cs []models.Client) []ClientDTO {
	out := make([]ClientDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, NewClientDTO(c))
	}
	return out
}
