package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfigured = errors.New("data source não configurado")
	ErrPageNotFound  = errors.New("página não encontrada")
	ErrUpstream      = errors.New("falha ao consultar o Notion")
)

// ConfigError indica um identificador de data source ausente.
// É um erro do cliente (400), nunca repetido.
type ConfigError struct {
	Setting     string
	Remediation string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotConfigured.Error(), e.Setting)
}

func (e *ConfigError) Unwrap() error {
	return ErrNotConfigured
}

// NewConfigError cria o erro com a mensagem de correção para o operador
func NewConfigError(setting, remediation string) *ConfigError {
	return &ConfigError{Setting: setting, Remediation: remediation}
}

// UpstreamError embrulha falhas de rede/API do Notion com um motivo curto
type UpstreamError struct {
	Reason string
	Err    error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrUpstream.Error(), e.Reason, e.Err)
}

func (e *UpstreamError) Unwrap() []error {
	return []error{ErrUpstream, e.Err}
}
