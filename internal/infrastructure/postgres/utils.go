package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// whereBuilder arma cláusulas WHERE dinámicas con placeholders posicionales.
// Todas las consultas de listado parten de "deleted_at IS NULL": la política
// de soft delete se aplica acá, no en cada servicio.
type whereBuilder struct {
	clauses []string
	args    []any
}

func newWhere() *whereBuilder {
	return &whereBuilder{clauses: []string{"deleted_at IS NULL"}}
}

// add agrega una condición; clause debe contener un único %d para el placeholder.
func (w *whereBuilder) add(clause string, arg any) {
	w.args = append(w.args, arg)
	w.clauses = append(w.clauses, fmt.Sprintf(clause, len(w.args)))
}

// ilike agrega búsqueda parcial case-insensitive si val no es vacío.
func (w *whereBuilder) ilike(column, val string) {
	if val != "" {
		w.add(column+" ILIKE $%d", "%"+val+"%")
	}
}

func (w *whereBuilder) where() string {
	return "WHERE " + strings.Join(w.clauses, " AND ")
}

// next devuelve el índice del próximo placeholder (para LIMIT/OFFSET).
func (w *whereBuilder) next() int {
	return len(w.args) + 1
}
