package schema

import (
	"strings"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
)

// SupplierInput is the client-supplied supplier shape
type SupplierInput struct {
	Name  string `json:"name" validate:"required" example:"Acme"`
	Email string `json:"email" validate:"required,email" example:"a@acme.com"`
	Phone string `json:"phone" validate:"required,min=7,max=15,phone_pattern,phone_digits" example:"+1234567"`
}

// Normalize trims surrounding whitespace from every field
func (in *SupplierInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
}

// Validate normalizes the input and checks every field rule
func (in *SupplierInput) Validate() error {
	in.Normalize()
	return validateStruct(in)
}

// Apply replaces all mutable supplier fields with the input values
func (in SupplierInput) Apply(s *domain.Supplier) {
	s.Name = in.Name
	s.Email = in.Email
	s.Phone = in.Phone
}

// SupplierOutput is the client-facing supplier shape
type SupplierOutput struct {
	ID    uint   `json:"id" example:"1"`
	Name  string `json:"name" example:"Acme"`
	Email string `json:"email" example:"a@acme.com"`
	Phone string `json:"phone" example:"+1234567"`
}

// NewSupplierOutput projects a persisted supplier
func NewSupplierOutput(s *domain.Supplier) SupplierOutput {
	return SupplierOutput{
		ID:    s.ID,
		Name:  s.Name,
		Email: s.Email,
		Phone: s.Phone,
	}
}

// NewSupplierOutputs projects a list of suppliers; the result is never nil
func NewSupplierOutputs(suppliers []domain.Supplier) []SupplierOutput {
	out := make([]SupplierOutput, 0, len(suppliers))
	for i := range suppliers {
		out = append(out, NewSupplierOutput(&suppliers[i]))
	}
	return out
}
