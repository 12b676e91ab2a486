package entity

// DefaultCompanyName nombre placeholder cuando no hay configuración guardada
// (mismo valor que el sistema legado).
const DefaultCompanyName = "Minha Empresa"

// CompanySettings registro singleton con los datos de la empresa.
// Logo es una referencia de imagen embebida (data URL base64) o vacío.
type CompanySettings struct {
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// DefaultSettings devuelve la configuración placeholder.
func DefaultSettings() CompanySettings {
	return CompanySettings{Name: DefaultCompanyName}
}
