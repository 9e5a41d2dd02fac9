package database

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/vfg2006/sales-data-sync/internal/config"
)

// Dialect reúne o que muda entre os drivers suportados
type Dialect struct {
	Driver      string
	Placeholder squirrel.PlaceholderFormat
}

func DialectFor(driver string) Dialect {
	if driver == config.DriverPostgres {
		return Dialect{Driver: config.DriverPostgres, Placeholder: squirrel.Dollar}
	}
	return Dialect{Driver: config.DriverSQLite, Placeholder: squirrel.Question}
}

type Connection struct {
	*sql.DB
	dialect Dialect
}

// Open abre a conexão com o destino: caminho do arquivo no SQLite, nome do banco no Postgres
func Open(ctx context.Context, cfg config.Database, destination string) (*Connection, error) {
	dialect := DialectFor(cfg.Driver)

	db, err := sql.Open(dialect.Driver, cfg.DSN(destination))
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir banco %s", dialect.Driver)
	}

	if dialect.Driver == config.DriverSQLite {
		// SQLite é single-writer
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "erro ao conectar ao banco %s", dialect.Driver)
	}

	return &Connection{DB: db, dialect: dialect}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

func (c *Connection) Dialect() Dialect {
	return c.dialect
}

// Session reserva uma conexão dedicada para que DDL e transação usem a mesma sessão
func (c *Connection) Session(ctx context.Context) (*sql.Conn, error) {
	conn, err := c.DB.Conn(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao obter sessão do banco")
	}
	return conn, nil
}
