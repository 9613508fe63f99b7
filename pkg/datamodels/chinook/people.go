package chinook

import (
	"database/sql"

	"github.com/diwise/chinook-rdf/pkg/rdf/types"
)

type Employee struct {
	EmployeeID sql.Null[int64]
	FirstName  sql.Null[string]
	LastName   sql.Null[string]
	Title      sql.Null[string]
	ReportsTo  sql.Null[int64]
}

// MapEmployee writes one reportsTo edge per row. The hierarchy is never
// walked, so cycles in the source data end up in the graph unchanged.
func MapEmployee(row Employee, sink types.Sink) error {
	return emit(sink, EmployeeTypeName, row.EmployeeID,
		integer(PredicateEmployeeID, EmployeeTypeName.KeyColumn(), row.EmployeeID),
		fullName(row.FirstName, row.LastName),
		text(PredicateTitle, row.Title),
		refersTo(PredicateReportsTo, EmployeeTypeName, row.ReportsTo),
	)
}

type Customer struct {
	CustomerID   sql.Null[int64]
	FirstName    sql.Null[string]
	LastName     sql.Null[string]
	SupportRepID sql.Null[int64]
}

func MapCustomer(row Customer, sink types.Sink) error {
	return emit(sink, CustomerTypeName, row.CustomerID,
		integer(PredicateCustomerID, CustomerTypeName.KeyColumn(), row.CustomerID),
		fullName(row.FirstName, row.LastName),
		refersTo(PredicateSupportedBy, EmployeeTypeName, row.SupportRepID),
	)
}
