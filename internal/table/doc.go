// Package table loads, filters, and writes tabular files.
//
// A Table is an ordered header row plus a row-major matrix of string cells.
// All cells are strings regardless of their source type: numbers, dates, and
// text from a spreadsheet arrive as their display form, which is exactly the
// representation the value-propagation pass compares on.
//
// Two format families are supported, detected by file extension:
//   - delimited text (.csv) via encoding/csv
//   - spreadsheets (.xlsx, .xls) via excelize, first sheet only, first row
//     as header
//
// Writers serialize to memory and replace the destination atomically, so a
// failed export never leaves a truncated file behind.
package table
