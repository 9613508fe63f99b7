package exporter

import (
	"context"

	"github.com/diwise/chinook-rdf/internal/pkg/infrastructure/database"
	"github.com/diwise/chinook-rdf/pkg/datamodels/chinook"
	"github.com/diwise/chinook-rdf/pkg/rdf/types"
)

type rowMapper func(types.Sink) error

type table struct {
	kind   chinook.Kind
	export func(ctx context.Context, src database.Source, each func(rowMapper) error) error
}

func tableOf[T any](kind chinook.Kind, read func(database.Source, context.Context, func(T) error) error, mapper func(T, types.Sink) error) table {
	return table{
		kind: kind,
		export: func(ctx context.Context, src database.Source, each func(rowMapper) error) error {
			return read(src, ctx, func(row T) error {
				return each(func(s types.Sink) error {
					return mapper(row, s)
				})
			})
		},
	}
}

// tables lists the Chinook tables in export order
var tables = []table{
	tableOf(chinook.GenreTypeName, database.Source.Genres, chinook.MapGenre),
	tableOf(chinook.MediaTypeTypeName, database.Source.MediaTypes, chinook.MapMediaType),
	tableOf(chinook.ArtistTypeName, database.Source.Artists, chinook.MapArtist),
	tableOf(chinook.AlbumTypeName, database.Source.Albums, chinook.MapAlbum),
	tableOf(chinook.TrackTypeName, database.Source.Tracks, chinook.MapTrack),
	tableOf(chinook.EmployeeTypeName, database.Source.Employees, chinook.MapEmployee),
	tableOf(chinook.CustomerTypeName, database.Source.Customers, chinook.MapCustomer),
	tableOf(chinook.InvoiceTypeName, database.Source.Invoices, chinook.MapInvoice),
	tableOf(chinook.InvoiceLineTypeName, database.Source.InvoiceLines, chinook.MapInvoiceLine),
}
