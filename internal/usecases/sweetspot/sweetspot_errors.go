package sweetspot

import "errors"

// Erros específicos para o contexto do sweet spot
var (
	// Erros de validação
	ErrEntryNotFound    = errors.New("sweet spot entry not found")
	ErrNicheRequired    = errors.New("niche is required")
	ErrAccountRequired  = errors.New("account is required")
	ErrNegativeAudience = errors.New("audience must not be negative")
	ErrNegativeTarget   = errors.New("target monthly revenue must not be negative")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")

	// Erros de geração de identificadores
	ErrGenerateID = errors.New("error generating entry ID")
)
