package dto

// SyncRequest entrada para push/pull: el código que direcciona el slot remoto.
type SyncRequest struct {
	Code string `json:"code"`
}

// SyncCodeResponse salida de la generación de código.
type SyncCodeResponse struct {
	Code string `json:"code"`
}

// OptimizeDescriptionRequest entrada del optimizador de descripciones.
type OptimizeDescriptionRequest struct {
	Description string `json:"description"`
}

// OptimizeDescriptionResponse salida del optimizador. Si el colaborador
// externo falla, Description es el texto original sin modificar.
type OptimizeDescriptionResponse struct {
	Description string `json:"description"`
}
