package chinook

import (
	"database/sql"

	"github.com/diwise/chinook-rdf/pkg/rdf/types"
)

type Invoice struct {
	InvoiceID   sql.Null[int64]
	CustomerID  sql.Null[int64]
	InvoiceDate Timestamp
	Total       Decimal
}

// MapInvoice links the invoice to its customer with an edge that starts at
// the customer
func MapInvoice(row Invoice, sink types.Sink) error {
	return emit(sink, InvoiceTypeName, row.InvoiceID,
		integer(PredicateInvoiceID, InvoiceTypeName.KeyColumn(), row.InvoiceID),
		dateTime(PredicateInvoiceDate, "InvoiceDate", row.InvoiceDate),
		decimal(PredicateTotal, "Total", row.Total, false),
		referredBy(PredicateHasInvoice, CustomerTypeName, CustomerTypeName.KeyColumn(), row.CustomerID),
	)
}

type InvoiceLine struct {
	InvoiceLineID sql.Null[int64]
	InvoiceID     sql.Null[int64]
	TrackID       sql.Null[int64]
	UnitPrice     Decimal
	Quantity      sql.Null[int64]
}

func MapInvoiceLine(row InvoiceLine, sink types.Sink) error {
	return emit(sink, InvoiceLineTypeName, row.InvoiceLineID,
		decimal(PredicateUnitPrice, "UnitPrice", row.UnitPrice, true),
		integer(PredicateQuantity, "Quantity", row.Quantity),
		referredBy(PredicateHasLine, InvoiceTypeName, InvoiceTypeName.KeyColumn(), row.InvoiceID),
		linksTo(PredicateLineTrack, TrackTypeName, TrackTypeName.KeyColumn(), row.TrackID),
	)
}
