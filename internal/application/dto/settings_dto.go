package dto

// SaveSettingsRequest entrada para sobreescribir los datos de la empresa.
// Logo es una data URL base64 o vacío para quitar el logo.
type SaveSettingsRequest struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}
