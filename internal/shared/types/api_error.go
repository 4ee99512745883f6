package types

import "fmt"

// Códigos de erro padronizados para falhas ao consumir o backend.
const (
	APIErrorCodeNetwork = "NETWORK_ERROR"
	APIErrorCodeHTTP    = "HTTP_ERROR"
	APIErrorCodeDecode  = "DECODE_ERROR"
)

// APIError descreve uma falha ao chamar o backend, preservando o status HTTP
// quando houver.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Status  int    `json:"status,omitempty"`
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (%s, HTTP %d)", e.Message, e.Code, e.Status)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// NewNetworkError embrulha uma falha de transporte (DNS, conexão recusada,
// timeout).
func NewNetworkError(err error) *APIError {
	return &APIError{
		Message: fmt.Sprintf("não foi possível alcançar o backend: %v", err),
		Code:    APIErrorCodeNetwork,
	}
}

// NewHTTPError embrulha uma resposta não-2xx.
func NewHTTPError(status int, body string) *APIError {
	message := fmt.Sprintf("o backend respondeu com status %d", status)
	if body != "" {
		message = fmt.Sprintf("%s: %s", message, body)
	}
	return &APIError{
		Message: message,
		Code:    APIErrorCodeHTTP,
		Status:  status,
	}
}

// NewDecodeError embrulha uma resposta 2xx com corpo fora do contrato.
func NewDecodeError(err error) *APIError {
	return &APIError{
		Message: fmt.Sprintf("resposta do backend em formato inesperado: %v", err),
		Code:    APIErrorCodeDecode,
	}
}
