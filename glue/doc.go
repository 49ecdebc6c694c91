// Package glue holds the request, response and data structures, the
// enumerations and the modeled exceptions of the AWS Glue operations it
// covers.
//
// Structures use pointer fields so that an unset member is distinguishable
// from its zero value. List and map members are copied when set, and the
// variadic With methods of list members append, so repeated calls
// accumulate:
//
//	req := (&glue.GetColumnStatisticsForPartitionRequest{}).
//		WithDatabaseName("sales").
//		WithColumnNames("region").
//		WithColumnNames("amount")
//
// Enumerations are string types whose Parse functions reject empty and
// unknown values with errors matching ErrInvalidArgument.
package glue

//go:generate go run ../cmd/codegen -model ../apimodel/glue.json -output . -package glue
