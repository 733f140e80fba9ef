package handlers

// ProxyErrorMessage is the only failure text the proxy ever returns.
const ProxyErrorMessage = "Error al obtener datos meteorológicos"

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
