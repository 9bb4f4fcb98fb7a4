// Package typedframe pairs tabular data with typing metadata: every column
// of a table carries a logical type (what the column means) and a set of
// semantic tags (what role it plays), independent of how its cells are
// stored.
//
// # Entities
//
// A Table wraps a dataset and holds a logical type and a tag set for every
// column. A Column wraps a single series with its own logical type, tags
// and name. The in-memory representation lives in the frame subpackage;
// tables can also be built over other backends (see arrowtab), but only
// frame-backed entities support positional indexing.
//
// # Positional indexing
//
// ILoc selects by integer position and re-wraps the raw result in the
// matching typed entity:
//
//	tbl, _ := typedframe.NewTable(df,
//	    typedframe.WithLogicalTypes(map[string]typesys.LogicalType{
//	        "id":    typesys.Integer,
//	        "name":  typesys.NaturalLanguage,
//	    }),
//	    typedframe.WithIndex("id"),
//	)
//
//	ix, _ := tbl.ILoc()
//	res, _ := ix.Get(frame.Span(0, 2))      // typed Table, metadata retained
//	res, _ = ix.Get(frame.At(0))            // raw series: one full row
//	res, _ = ix.Get2(frame.All(), frame.At(1)) // typed Column for "name"
//
// Derived columns keep the source metadata but never the reserved "index"
// and "time_index" tags. Selection is purely functional: the original
// entities are never mutated.
package typedframe
