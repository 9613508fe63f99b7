package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

type sqlRows struct {
	*sql.Rows
}

func (r sqlRows) Close() {
	r.Rows.Close()
}

type sqlQuerier struct {
	db *sql.DB
}

func (q sqlQuerier) query(ctx context.Context, query string) (rowIterator, error) {
	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return sqlRows{rows}, nil
}

func (q sqlQuerier) close() {
	q.db.Close()
}

// NewSQLiteSource opens a Chinook SQLite file read only
func NewSQLiteSource(ctx context.Context, path string) (Source, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewSQLiteSourceFromDB(db), nil
}

// NewSQLiteSourceFromDB wraps an already open database. The source takes
// ownership of db and closes it on Close.
func NewSQLiteSourceFromDB(db *sql.DB) Source {
	return &source{q: sqlQuerier{db: db}}
}
