// Package almanac parses seed almanacs and resolves seeds through their
// chain of range-remapping tables.
//
// An almanac is a line of seeds followed by blank-line-separated blocks,
// each introduced by a "<name> map:" heading and holding rows of three
// integers: destination start, source start and length. Every row maps the
// source interval [src, src+length) onto [dst, dst+length). Values not
// covered by any row map to themselves.
//
// The tables are linked in declaration order. [Table.Resolve] passes a value
// through the head table and every successor, and [Almanac.Lowest] reports
// the smallest value reached over all seeds.
//
//	a, err := almanac.Parse(ctx, lines)
//	if err != nil {
//		return err
//	}
//
//	loc, err := a.Lowest()
package almanac
