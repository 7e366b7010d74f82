package postgres

import (
	"database/sql"
)

// Queryer é o subconjunto de operações de consulta que os repositórios usam,
// satisfeito tanto pela conexão quanto por uma transação aberta
type Queryer interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}
