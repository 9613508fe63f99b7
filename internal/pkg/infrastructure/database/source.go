package database

import (
	"context"
	"fmt"

	"github.com/diwise/chinook-rdf/pkg/datamodels/chinook"
)

// Source streams the rows of the Chinook tables, ordered by primary key,
// as typed records
type Source interface {
	Genres(ctx context.Context, fn func(chinook.Genre) error) error
	MediaTypes(ctx context.Context, fn func(chinook.MediaType) error) error
	Artists(ctx context.Context, fn func(chinook.Artist) error) error
	Albums(ctx context.Context, fn func(chinook.Album) error) error
	Tracks(ctx context.Context, fn func(chinook.Track) error) error
	Employees(ctx context.Context, fn func(chinook.Employee) error) error
	Customers(ctx context.Context, fn func(chinook.Customer) error) error
	Invoices(ctx context.Context, fn func(chinook.Invoice) error) error
	InvoiceLines(ctx context.Context, fn func(chinook.InvoiceLine) error) error

	Close()
}

// Identifiers are quoted so that the same statements work against both the
// SQLite and the PostgreSQL editions of the Chinook schema
const (
	genreQuery       = `SELECT "GenreId", "Name" FROM "Genre" ORDER BY "GenreId"`
	mediaTypeQuery   = `SELECT "MediaTypeId", "Name" FROM "MediaType" ORDER BY "MediaTypeId"`
	artistQuery      = `SELECT "ArtistId", "Name" FROM "Artist" ORDER BY "ArtistId"`
	albumQuery       = `SELECT "AlbumId", "Title", "ArtistId" FROM "Album" ORDER BY "AlbumId"`
	trackQuery       = `SELECT "TrackId", "Name", "AlbumId", "MediaTypeId", "GenreId" FROM "Track" ORDER BY "TrackId"`
	employeeQuery    = `SELECT "EmployeeId", "FirstName", "LastName", "Title", "ReportsTo" FROM "Employee" ORDER BY "EmployeeId"`
	customerQuery    = `SELECT "CustomerId", "FirstName", "LastName", "SupportRepId" FROM "Customer" ORDER BY "CustomerId"`
	invoiceQuery     = `SELECT "InvoiceId", "CustomerId", "InvoiceDate", "Total" FROM "Invoice" ORDER BY "InvoiceId"`
	invoiceLineQuery = `SELECT "InvoiceLineId", "InvoiceId", "TrackId", "UnitPrice", "Quantity" FROM "InvoiceLine" ORDER BY "InvoiceLineId"`
)

type rowIterator interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

type querier interface {
	query(ctx context.Context, sql string) (rowIterator, error)
	close()
}

type source struct {
	q querier
}

func each[T any](ctx context.Context, q querier, sql string, scan func(rowIterator, *T) error, fn func(T) error) error {
	rows, err := q.query(ctx, sql)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row T

		if err := scan(rows, &row); err != nil {
			return fmt.Errorf("failed to scan row: %w", err)
		}

		if err := fn(row); err != nil {
			return err
		}
	}

	return rows.Err()
}

func (s *source) Genres(ctx context.Context, fn func(chinook.Genre) error) error {
	return each(ctx, s.q, genreQuery, func(r rowIterator, g *chinook.Genre) error {
		return r.Scan(&g.GenreID, &g.Name)
	}, fn)
}

func (s *source) MediaTypes(ctx context.Context, fn func(chinook.MediaType) error) error {
	return each(ctx, s.q, mediaTypeQuery, func(r rowIterator, m *chinook.MediaType) error {
		return r.Scan(&m.MediaTypeID, &m.Name)
	}, fn)
}

func (s *source) Artists(ctx context.Context, fn func(chinook.Artist) error) error {
	return each(ctx, s.q, artistQuery, func(r rowIterator, a *chinook.Artist) error {
		return r.Scan(&a.ArtistID, &a.Name)
	}, fn)
}

func (s *source) Albums(ctx context.Context, fn func(chinook.Album) error) error {
	return each(ctx, s.q, albumQuery, func(r rowIterator, a *chinook.Album) error {
		return r.Scan(&a.AlbumID, &a.Title, &a.ArtistID)
	}, fn)
}

func (s *source) Tracks(ctx context.Context, fn func(chinook.Track) error) error {
	return each(ctx, s.q, trackQuery, func(r rowIterator, t *chinook.Track) error {
		return r.Scan(&t.TrackID, &t.Name, &t.AlbumID, &t.MediaTypeID, &t.GenreID)
	}, fn)
}

func (s *source) Employees(ctx context.Context, fn func(chinook.Employee) error) error {
	return each(ctx, s.q, employeeQuery, func(r rowIterator, e *chinook.Employee) error {
		return r.Scan(&e.EmployeeID, &e.FirstName, &e.LastName, &e.Title, &e.ReportsTo)
	}, fn)
}

func (s *source) Customers(ctx context.Context, fn func(chinook.Customer) error) error {
	return each(ctx, s.q, customerQuery, func(r rowIterator, c *chinook.Customer) error {
		return r.Scan(&c.CustomerID, &c.FirstName, &c.LastName, &c.SupportRepID)
	}, fn)
}

func (s *source) Invoices(ctx context.Context, fn func(chinook.Invoice) error) error {
	return each(ctx, s.q, invoiceQuery, func(r rowIterator, i *chinook.Invoice) error {
		return r.Scan(&i.InvoiceID, &i.CustomerID, &i.InvoiceDate, &i.Total)
	}, fn)
}

func (s *source) InvoiceLines(ctx context.Context, fn func(chinook.InvoiceLine) error) error {
	return each(ctx, s.q, invoiceLineQuery, func(r rowIterator, l *chinook.InvoiceLine) error {
		return r.Scan(&l.InvoiceLineID, &l.InvoiceID, &l.TrackID, &l.UnitPrice, &l.Quantity)
	}, fn)
}

func (s *source) Close() {
	s.q.close()
}
