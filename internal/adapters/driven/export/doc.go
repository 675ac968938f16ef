// Package export writes extracted records to JSON and CSV files.
//
// Both formats keep the form order of the twelve fields. JSON keeps
// non-ASCII text as-is; CSV carries a header row of field labels.
package export
