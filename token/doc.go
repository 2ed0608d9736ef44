// Package token provides the line-oriented reading and field extraction
// helpers used to parse almanac input.
//
// # Reading
//
// [ReadLines] and [ScanLines] read an entire input into an ordered slice of
// lines. Input is pulled through an asynchronous read-ahead buffer.
//
// # Fields
//
// [Before] extracts the label preceding a known key within a line:
//
//	tok, err := token.Before("seed-to-soil map:", "map", "", " ")
//	// tok.Value == "seed-to-soil"
//
// [Chunks] splits lines into blank-line-delimited blocks and [Uints] parses
// whitespace-separated non-negative integers.
package token
