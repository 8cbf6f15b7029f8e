// Package schema validates a loaded dataset against a CUE contract.
//
// A contract file declares the table name, column types, and which
// columns must be present:
//
//	dataset: {
//		table: "sales"
//		columns: {
//			id:    "integer"
//			price: "integer"
//			date:  "text"
//		}
//		required: ["id", "price"]
//	}
//
// Compile parses the contract with the CUE Go API (not a CLI
// subprocess); Check compares a relation against it and reports every
// violation rather than stopping at the first.
package schema
