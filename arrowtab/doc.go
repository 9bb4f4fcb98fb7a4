// Package arrowtab bridges typedframe and Apache Arrow.
//
// Dataset and Array wrap an arrow.Record and arrow.Array so they can back a
// typedframe.Table or Column. Arrow-backed entities carry metadata like any
// other, but the positional indexer only supports the in-memory frame
// representation and rejects them with ErrUnsupportedBackend; materialize
// with ToFrame first:
//
//	f, err := arrowtab.ToFrame(rec)
//
// FromFrame goes the other way, building one Arrow array per frame column
// in parallel. Frame kinds map to Arrow types as Bool -> boolean,
// Int -> int64, Float -> float64, String -> utf8, Time -> timestamp[us, UTC]
// and Duration -> duration[ns].
package arrowtab
