package exporter

import (
	"context"
	"time"

	"github.com/diwise/chinook-rdf/pkg/datamodels/chinook"
)

type fakeSource struct {
	genres       []chinook.Genre
	mediaTypes   []chinook.MediaType
	artists      []chinook.Artist
	albums       []chinook.Album
	tracks       []chinook.Track
	employees    []chinook.Employee
	customers    []chinook.Customer
	invoices     []chinook.Invoice
	invoiceLines []chinook.InvoiceLine

	err error
}

func testSource() *fakeSource {
	id := chinook.Present[int64]

	return &fakeSource{
		genres: []chinook.Genre{
			{GenreID: id(1), Name: chinook.Present("Rock")},
			{GenreID: id(2), Name: chinook.Present("Jazz")},
		},
		mediaTypes: []chinook.MediaType{{MediaTypeID: id(1), Name: chinook.Present("MPEG audio file")}},
		artists:    []chinook.Artist{{ArtistID: id(1), Name: chinook.Present("AC/DC")}},
		albums:     []chinook.Album{{AlbumID: id(1), Title: chinook.Present("For Those About To Rock"), ArtistID: id(1)}},
		tracks:     []chinook.Track{{TrackID: id(1), Name: chinook.Present("Balls to the Wall"), AlbumID: id(1), MediaTypeID: id(1), GenreID: id(1)}},
		employees:  []chinook.Employee{{EmployeeID: id(1), FirstName: chinook.Present("Andrew"), LastName: chinook.Present("Adams")}},
		customers:  []chinook.Customer{{CustomerID: id(2), FirstName: chinook.Present("Leonie"), LastName: chinook.Present("Köhler"), SupportRepID: id(1)}},
		invoices: []chinook.Invoice{{
			InvoiceID:   id(1),
			CustomerID:  id(2),
			InvoiceDate: chinook.TimestampOf(time.Date(2009, 1, 1, 0, 0, 0, 0, time.UTC)),
			Total:       chinook.DecimalFromText("1.98"),
		}},
		invoiceLines: []chinook.InvoiceLine{{
			InvoiceLineID: id(1),
			InvoiceID:     id(1),
			TrackID:       id(1),
			UnitPrice:     chinook.DecimalOf(0.99),
			Quantity:      id(2),
		}},
	}
}

func iterate[T any](ctx context.Context, rows []T, err error, fn func(T) error) error {
	for _, row := range rows {
		if err := fn(row); err != nil {
			return err
		}
	}
	return err
}

func (f *fakeSource) Genres(ctx context.Context, fn func(chinook.Genre) error) error {
	return iterate(ctx, f.genres, f.err, fn)
}

func (f *fakeSource) MediaTypes(ctx context.Context, fn func(chinook.MediaType) error) error {
	return iterate(ctx, f.mediaTypes, f.err, fn)
}

func (f *fakeSource) Artists(ctx context.Context, fn func(chinook.Artist) error) error {
	return iterate(ctx, f.artists, f.err, fn)
}

func (f *fakeSource) Albums(ctx context.Context, fn func(chinook.Album) error) error {
	return iterate(ctx, f.albums, f.err, fn)
}

func (f *fakeSource) Tracks(ctx context.Context, fn func(chinook.Track) error) error {
	return iterate(ctx, f.tracks, f.err, fn)
}

func (f *fakeSource) Employees(ctx context.Context, fn func(chinook.Employee) error) error {
	return iterate(ctx, f.employees, f.err, fn)
}

func (f *fakeSource) Customers(ctx context.Context, fn func(chinook.Customer) error) error {
	return iterate(ctx, f.customers, f.err, fn)
}

func (f *fakeSource) Invoices(ctx context.Context, fn func(chinook.Invoice) error) error {
	return iterate(ctx, f.invoices, f.err, fn)
}

func (f *fakeSource) InvoiceLines(ctx context.Context, fn func(chinook.InvoiceLine) error) error {
	return iterate(ctx, f.invoiceLines, f.err, fn)
}

func (f *fakeSource) Close() {}
