package content

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de conteúdos
var (
	// Erros de validação
	ErrContentNotFound = errors.New("content item not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidStatus   = errors.New("invalid content status")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")

	// Erros de geração de identificadores
	ErrGenerateID = errors.New("error generating content ID")
)

// ContentError é um erro com contexto adicional para conteúdos
type ContentError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	ContentID string // ID do conteúdo envolvido (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ContentError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ContentError) Unwrap() error {
	return e.Err
}

// NewContentError cria um novo ContentError
func NewContentError(err error, code string, details string) *ContentError {
	return &ContentError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewContentErrorWithID cria um novo ContentError com ID do conteúdo
func NewContentErrorWithID(err error, code string, contentID string, details string) *ContentError {
	return &ContentError{
		Err:       err,
		Code:      code,
		ContentID: contentID,
		Details:   details,
	}
}
