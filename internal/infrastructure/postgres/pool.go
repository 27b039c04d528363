package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jhoicas/store-api/pkg/config"
)

// NewPool abre la conexión a PostgreSQL y verifica que responde.
// Con MaxConns = 1 (valor por defecto) el proceso trabaja con una única conexión de larga
// vida compartida por todas las peticiones; las consultas concurrentes esperan su turno
// sobre ella, igual que un cliente de socket único encola comandos.
// Un error aquí es fatal para el arranque: no hay reintentos.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	maxConns := cfg.MaxConns
	if maxConns < 1 {
		maxConns = 1
	}
	poolConfig.MaxConns = maxConns
	// La conexión se abre al arrancar, no en la primera petición.
	poolConfig.MinConns = 1

	// Registrar codec para NUMERIC -> shopspring/decimal: los precios viajan sin pérdida
	// y se serializan como string JSON ("1299.99").
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}
