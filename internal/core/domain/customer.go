package domain

// Customer is a client record as served by the ERP API. CpfCnpj is the
// Brazilian tax identifier, kept opaque.
type Customer struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	CpfCnpj  string `json:"cpf_cnpj"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	IsActive bool   `json:"is_active"`
}
