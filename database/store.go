package database

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store agrupa todo el acceso SQL del servicio sobre un pool explícito.
// Los handlers reciben el Store ya construido; no tocan el pool directamente.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore crea un Store sobre el pool de conexiones dado
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}
