package chinook

import (
	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/rdf"
)

// Namespace is the prefix of every subject, class and predicate minted for
// the Chinook catalog
const Namespace = "http://example.org/chinook#"

// Kind names one of the mapped tables. The kind name doubles as the class
// name and as the first path segment of every subject of that kind.
type Kind string

const (
	GenreTypeName       Kind = "Genre"
	MediaTypeTypeName   Kind = "MediaType"
	ArtistTypeName      Kind = "Artist"
	AlbumTypeName       Kind = "Album"
	TrackTypeName       Kind = "Track"
	EmployeeTypeName    Kind = "Employee"
	CustomerTypeName    Kind = "Customer"
	InvoiceTypeName     Kind = "Invoice"
	InvoiceLineTypeName Kind = "InvoiceLine"
)

// Kinds lists every kind in export order: lookup tables first, the sales
// ledger last
var Kinds = []Kind{
	GenreTypeName,
	MediaTypeTypeName,
	ArtistTypeName,
	AlbumTypeName,
	TrackTypeName,
	EmployeeTypeName,
	CustomerTypeName,
	InvoiceTypeName,
	InvoiceLineTypeName,
}

// KeyColumn returns the name of the primary key column of the kind's table
func (k Kind) KeyColumn() string {
	return string(k) + "Id"
}

var PredicateType = quad.IRI(rdf.Type).Full()

const (
	PredicateName        quad.IRI = Namespace + "name"
	PredicateFullName    quad.IRI = Namespace + "fullName"
	PredicateTitle       quad.IRI = Namespace + "title"
	PredicateEmployeeID  quad.IRI = Namespace + "employeeId"
	PredicateCustomerID  quad.IRI = Namespace + "customerId"
	PredicateInvoiceID   quad.IRI = Namespace + "invoiceId"
	PredicateInvoiceDate quad.IRI = Namespace + "invoiceDate"
	PredicateTotal       quad.IRI = Namespace + "total"
	PredicateUnitPrice   quad.IRI = Namespace + "unitPrice"
	PredicateQuantity    quad.IRI = Namespace + "quantity"

	PredicateHasArtist    quad.IRI = Namespace + "hasArtist"
	PredicateHasAlbum     quad.IRI = Namespace + "hasAlbum"
	PredicateHasGenre     quad.IRI = Namespace + "hasGenre"
	PredicateHasMediaType quad.IRI = Namespace + "hasMediaType"
	PredicateReportsTo    quad.IRI = Namespace + "reportsTo"
	PredicateSupportedBy  quad.IRI = Namespace + "supportedBy"
	PredicateHasInvoice   quad.IRI = Namespace + "hasInvoice"
	PredicateHasLine      quad.IRI = Namespace + "hasLine"
	PredicateLineTrack    quad.IRI = Namespace + "lineTrack"
)
