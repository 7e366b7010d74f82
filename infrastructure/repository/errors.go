package repository

import (
	"fmt"

	"github.com/lib/pq"
)

// wrapPqError expõe o código de erro do Postgres quando disponível
func wrapPqError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}
