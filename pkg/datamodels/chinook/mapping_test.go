package chinook

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/cayleygraph/quad"
	rdferrors "github.com/diwise/chinook-rdf/pkg/rdf/errors"
	"github.com/diwise/chinook-rdf/pkg/rdf/literals"
	"github.com/diwise/chinook-rdf/pkg/rdf/sink"
	"github.com/diwise/chinook-rdf/pkg/rdf/types"
	"github.com/matryer/is"
)

func TestMapGenre(t *testing.T) {
	is, g := setupMappingTest(t)

	err := MapGenre(Genre{GenreID: Present[int64](1), Name: Present("Rock")}, g)
	is.NoErr(err)

	is.Equal(g.Statements(), []types.Statement{
		st(Subject(GenreTypeName, 1), PredicateType, Class(GenreTypeName)),
		st(Subject(GenreTypeName, 1), PredicateName, quad.String("Rock")),
	})
}

func TestMapMediaTypeAndArtist(t *testing.T) {
	is, g := setupMappingTest(t)

	is.NoErr(MapMediaType(MediaType{MediaTypeID: Present[int64](1), Name: Present("MPEG")}, g))
	is.NoErr(MapArtist(Artist{ArtistID: Present[int64](9), Name: Present("NIN")}, g))

	is.Equal(g.Statements(), []types.Statement{
		st(Subject(MediaTypeTypeName, 1), PredicateType, Class(MediaTypeTypeName)),
		st(Subject(MediaTypeTypeName, 1), PredicateName, quad.String("MPEG")),
		st(Subject(ArtistTypeName, 9), PredicateType, Class(ArtistTypeName)),
		st(Subject(ArtistTypeName, 9), PredicateName, quad.String("NIN")),
	})
}

func TestMapArtistWithoutName(t *testing.T) {
	is, g := setupMappingTest(t)

	is.NoErr(MapArtist(Artist{ArtistID: Present[int64](3)}, g))

	is.Equal(g.Len(), 1) // only the class statement
}

func TestMapAlbum(t *testing.T) {
	is, g := setupMappingTest(t)

	is.NoErr(MapAlbum(Album{AlbumID: Present[int64](2), Title: Present("The Wall"), ArtistID: Present[int64](7)}, g))

	is.Equal(g.Statements(), []types.Statement{
		st(Subject(AlbumTypeName, 2), PredicateType, Class(AlbumTypeName)),
		st(Subject(AlbumTypeName, 2), PredicateName, quad.String("The Wall")),
		st(Subject(AlbumTypeName, 2), PredicateHasArtist, Subject(ArtistTypeName, 7)),
	})
}

func TestMapTrackWithAllLinks(t *testing.T) {
	is, g := setupMappingTest(t)

	is.NoErr(MapTrack(Track{
		TrackID:     Present[int64](3),
		Name:        Present("Track 3"),
		AlbumID:     Present[int64](2),
		GenreID:     Present[int64](1),
		MediaTypeID: Present[int64](5),
	}, g))

	is.Equal(g.Statements(), []types.Statement{
		st(Subject(TrackTypeName, 3), PredicateType, Class(TrackTypeName)),
		st(Subject(TrackTypeName, 3), PredicateName, quad.String("Track 3")),
		st(Subject(TrackTypeName, 3), PredicateHasAlbum, Subject(AlbumTypeName, 2)),
		st(Subject(TrackTypeName, 3), PredicateHasGenre, Subject(GenreTypeName, 1)),
		st(Subject(TrackTypeName, 3), PredicateHasMediaType, Subject(MediaTypeTypeName, 5)),
	})
}

func TestMapTrackOmitsMissingLinks(t *testing.T) {
	is, g := setupMappingTest(t)

	is.NoErr(MapTrack(Track{TrackID: Present[int64](30), Name: Present("Solo")}, g))

	is.Equal(g.Statements(), []types.Statement{
		st(Subject(TrackTypeName, 30), PredicateType, Class(TrackTypeName)),
		st(Subject(TrackTypeName, 30), PredicateName, quad.String("Solo")),
	})
}

func TestMapEmployee(t *testing.T) {
	is, g := setupMappingTest(t)

	is.NoErr(MapEmployee(Employee{
		EmployeeID: Present[int64](1),
		FirstName:  Present("Jane"),
		LastName:   Present("Doe"),
		Title:      Present("Rep"),
		ReportsTo:  Present[int64](2),
	}, g))

	is.Equal(g.Statements(), []types.Statement{
		st(Subject(EmployeeTypeName, 1), PredicateType, Class(EmployeeTypeName)),
		st(Subject(EmployeeTypeName, 1), PredicateEmployeeID, literals.NewInteger(1)),
		st(Subject(EmployeeTypeName, 1), PredicateFullName, quad.String("Jane Doe")),
		st(Subject(EmployeeTypeName, 1), PredicateTitle, quad.String("Rep")),
		st(Subject(EmployeeTypeName, 1), PredicateReportsTo, Subject(EmployeeTypeName, 2)),
	})
}

func TestFullNameComposition(t *testing.T) {
	is := is.New(t)

	cases := []struct {
		first, last   *string
		expected      string
		expectPresent bool
	}{
		{ptr("Ana"), ptr("Silva"), "Ana Silva", true},
		{ptr(""), ptr(""), "", false},
		{nil, nil, "", false},
		{ptr("Madonna"), nil, "Madonna", true},
		{nil, ptr("Prince"), "Prince", true},
		{ptr("  "), ptr(" "), "", false},
	}

	for _, c := range cases {
		g := sink.New()
		is.NoErr(MapEmployee(Employee{EmployeeID: Present[int64](2), FirstName: nullable(c.first), LastName: nullable(c.last)}, g))

		names := objectsOf(g, PredicateFullName)
		if !c.expectPresent {
			is.Equal(len(names), 0) // blank names must not produce a fullName statement
			continue
		}

		is.Equal(names, []quad.Value{quad.String(c.expected)})
	}
}

func TestEmployeeReportsToOnlyWhenPresent(t *testing.T) {
	is, g := setupMappingTest(t)

	is.NoErr(MapEmployee(Employee{EmployeeID: Present[int64](5)}, g))

	is.Equal(len(objectsOf(g, PredicateReportsTo)), 0)
	is.Equal(len(objectsOf(g, PredicateTitle)), 0)
	is.Equal(g.Len(), 2) // class and employeeId
}

func TestEmployeeCyclesAreNotDetected(t *testing.T) {
	is, g := setupMappingTest(t)

	is.NoErr(MapEmployee(Employee{EmployeeID: Present[int64](1), ReportsTo: Present[int64](2)}, g))
	is.NoErr(MapEmployee(Employee{EmployeeID: Present[int64](2), ReportsTo: Present[int64](1)}, g))
	is.NoErr(MapEmployee(Employee{EmployeeID: Present[int64](3), ReportsTo: Present[int64](3)}, g))

	is.Equal(len(objectsOf(g, PredicateReportsTo)), 3)
}

func TestMapCustomer(t *testing.T) {
	is, g := setupMappingTest(t)

	is.NoErr(MapCustomer(Customer{
		CustomerID:   Present[int64](42),
		FirstName:    Present("John"),
		LastName:     Present("Smith"),
		SupportRepID: Present[int64](1),
	}, g))

	is.Equal(g.Statements(), []types.Statement{
		st(Subject(CustomerTypeName, 42), PredicateType, Class(CustomerTypeName)),
		st(Subject(CustomerTypeName, 42), PredicateCustomerID, literals.NewInteger(42)),
		st(Subject(CustomerTypeName, 42), PredicateFullName, quad.String("John Smith")),
		st(Subject(CustomerTypeName, 42), PredicateSupportedBy, Subject(EmployeeTypeName, 1)),
	})
}

func TestCustomerSupportedByOnlyWhenPresent(t *testing.T) {
	is, g := setupMappingTest(t)

	is.NoErr(MapCustomer(Customer{CustomerID: Present[int64](11), FirstName: Present("Maria"), LastName: Present("Oliveira")}, g))

	is.Equal(len(objectsOf(g, PredicateSupportedBy)), 0)
}

func TestMapInvoice(t *testing.T) {
	is, g := setupMappingTest(t)
	date := time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC)

	is.NoErr(MapInvoice(Invoice{
		InvoiceID:   Present[int64](10),
		CustomerID:  Present[int64](99),
		InvoiceDate: TimestampOf(date),
		Total:       DecimalOf(12.34),
	}, g))

	total, _ := literals.NewDecimal("12.34")

	is.Equal(g.Statements(), []types.Statement{
		st(Subject(InvoiceTypeName, 10), PredicateType, Class(InvoiceTypeName)),
		st(Subject(InvoiceTypeName, 10), PredicateInvoiceID, literals.NewInteger(10)),
		st(Subject(InvoiceTypeName, 10), PredicateInvoiceDate, literals.NewDateTime(date)),
		st(Subject(InvoiceTypeName, 10), PredicateTotal, total),
		st(Subject(CustomerTypeName, 99), PredicateHasInvoice, Subject(InvoiceTypeName, 10)),
	})
}

func TestInvoiceEdgeStartsAtCustomer(t *testing.T) {
	is, g := setupMappingTest(t)

	is.NoErr(MapInvoice(Invoice{InvoiceID: Present[int64](10), CustomerID: Present[int64](99)}, g))

	edges := withPredicate(g, PredicateHasInvoice)
	is.Equal(len(edges), 1)
	is.Equal(edges[0].Subject, Subject(CustomerTypeName, 99)) // has-invoice goes from customer ...
	is.Equal(edges[0].Object, Subject(InvoiceTypeName, 10))   // ... to invoice
}

func TestInvoiceDateAcceptsTimeAndString(t *testing.T) {
	is := is.New(t)

	g1 := sink.New()
	is.NoErr(MapInvoice(Invoice{
		InvoiceID:   Present[int64](20),
		CustomerID:  Present[int64](99),
		InvoiceDate: TimestampOf(time.Date(2020, 3, 3, 8, 0, 0, 0, time.UTC)),
	}, g1))

	g2 := sink.New()
	is.NoErr(MapInvoice(Invoice{
		InvoiceID:   Present[int64](20),
		CustomerID:  Present[int64](99),
		InvoiceDate: TimestampFromText("2020-03-03T08:00:00Z"),
	}, g2))

	is.Equal(objectsOf(g1, PredicateInvoiceDate), objectsOf(g2, PredicateInvoiceDate))
	is.Equal(objectsOf(g1, PredicateInvoiceDate)[0].(quad.TypedString).Value, quad.String("2020-03-03T08:00:00.000Z"))
}

func TestInvoiceOptionalFieldsAreOmitted(t *testing.T) {
	is, g := setupMappingTest(t)

	is.NoErr(MapInvoice(Invoice{InvoiceID: Present[int64](10), CustomerID: Present[int64](99)}, g))

	is.Equal(len(objectsOf(g, PredicateInvoiceDate)), 0)
	is.Equal(len(objectsOf(g, PredicateTotal)), 0)
	is.Equal(g.Len(), 3) // class, invoiceId, hasInvoice
}

func TestInvoiceWithBadDateIsRejectedAsAWhole(t *testing.T) {
	is, g := setupMappingTest(t)

	err := MapInvoice(Invoice{
		InvoiceID:   Present[int64](10),
		CustomerID:  Present[int64](99),
		InvoiceDate: TimestampFromText("the day after tomorrow"),
		Total:       DecimalOf(1),
	}, g)

	is.True(errors.Is(err, rdferrors.ErrInvalidLiteral))
	is.Equal(g.Len(), 0) // nothing from a rejected row may reach the sink
}

func TestInvoiceWithoutCustomerIsRejected(t *testing.T) {
	is, g := setupMappingTest(t)

	err := MapInvoice(Invoice{InvoiceID: Present[int64](10), Total: DecimalOf(1)}, g)

	is.True(errors.Is(err, rdferrors.ErrMissingKey))
	is.Equal(g.Len(), 0)
}

func TestMapInvoiceLine(t *testing.T) {
	is, g := setupMappingTest(t)

	is.NoErr(MapInvoiceLine(InvoiceLine{
		InvoiceLineID: Present[int64](7),
		InvoiceID:     Present[int64](10),
		TrackID:       Present[int64](3),
		UnitPrice:     DecimalOf(0.99),
		Quantity:      Present[int64](2),
	}, g))

	price, _ := literals.NewDecimal("0.99")

	is.Equal(g.Statements(), []types.Statement{
		st(Subject(InvoiceLineTypeName, 7), PredicateType, Class(InvoiceLineTypeName)),
		st(Subject(InvoiceLineTypeName, 7), PredicateUnitPrice, price),
		st(Subject(InvoiceLineTypeName, 7), PredicateQuantity, literals.NewInteger(2)),
		st(Subject(InvoiceTypeName, 10), PredicateHasLine, Subject(InvoiceLineTypeName, 7)),
		st(Subject(InvoiceLineTypeName, 7), PredicateLineTrack, Subject(TrackTypeName, 3)),
	})
}

func TestInvoiceLineRequiresAllColumns(t *testing.T) {
	is := is.New(t)

	complete := InvoiceLine{
		InvoiceLineID: Present[int64](7),
		InvoiceID:     Present[int64](10),
		TrackID:       Present[int64](3),
		UnitPrice:     DecimalOf(0.99),
		Quantity:      Present[int64](2),
	}

	broken := []func(l *InvoiceLine){
		func(l *InvoiceLine) { l.InvoiceLineID = absent() },
		func(l *InvoiceLine) { l.InvoiceID = absent() },
		func(l *InvoiceLine) { l.TrackID = absent() },
		func(l *InvoiceLine) { l.Quantity = absent() },
		func(l *InvoiceLine) { l.UnitPrice = Decimal{} },
	}

	for _, breakRow := range broken {
		row := complete
		breakRow(&row)

		g := sink.New()
		err := MapInvoiceLine(row, g)

		is.True(errors.Is(err, rdferrors.ErrMissingKey)) // missing required column must reject the row
		is.Equal(g.Len(), 0)
	}
}

func TestMissingPrimaryKeyIsRejectedForEveryKind(t *testing.T) {
	is, g := setupMappingTest(t)

	errs := []error{
		MapGenre(Genre{Name: Present("Rock")}, g),
		MapMediaType(MediaType{}, g),
		MapArtist(Artist{}, g),
		MapAlbum(Album{ArtistID: Present[int64](1)}, g),
		MapTrack(Track{}, g),
		MapEmployee(Employee{}, g),
		MapCustomer(Customer{}, g),
		MapInvoice(Invoice{CustomerID: Present[int64](1)}, g),
		MapInvoiceLine(InvoiceLine{}, g),
	}

	for _, err := range errs {
		is.True(errors.Is(err, rdferrors.ErrMissingKey))
	}
	is.Equal(g.Len(), 0)
}

func TestOptionalFieldPresenceControlsPredicate(t *testing.T) {
	is := is.New(t)

	without := sink.New()
	is.NoErr(MapAlbum(Album{AlbumID: Present[int64](1)}, without))
	is.Equal(len(objectsOf(without, PredicateName)), 0)
	is.Equal(len(objectsOf(without, PredicateHasArtist)), 0)

	with := sink.New()
	is.NoErr(MapAlbum(Album{AlbumID: Present[int64](1), Title: Present(""), ArtistID: Present[int64](1)}, with))
	is.Equal(objectsOf(with, PredicateName), []quad.Value{quad.String("")}) // present but empty is still present
	is.Equal(len(objectsOf(with, PredicateHasArtist)), 1)
}

func setupMappingTest(t *testing.T) (*is.I, *sink.Graph) {
	return is.New(t), sink.New()
}

func st(subject, predicate quad.IRI, object quad.Value) types.Statement {
	return types.Statement{Subject: subject, Predicate: predicate, Object: object}
}

func withPredicate(g *sink.Graph, predicate quad.IRI) []types.Statement {
	result := []types.Statement{}
	for _, s := range g.Statements() {
		if s.Predicate == predicate {
			result = append(result, s)
		}
	}
	return result
}

func objectsOf(g *sink.Graph, predicate quad.IRI) []quad.Value {
	result := []quad.Value{}
	for _, s := range withPredicate(g, predicate) {
		result = append(result, s.Object)
	}
	return result
}

func ptr(s string) *string { return &s }

func nullable(s *string) sql.Null[string] {
	if s == nil {
		return sql.Null[string]{}
	}
	return Present(*s)
}

func absent() sql.Null[int64] { return sql.Null[int64]{} }
