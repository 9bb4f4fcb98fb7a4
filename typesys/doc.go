// Package typesys defines the type system of typedframe: logical types and
// semantic tags.
//
// A logical type classifies what a column means (Integer, Categorical,
// Datetime, ...) independently of how its cells are stored; each logical
// type knows the physical value kind it expects and the standard semantic
// tags it implies (e.g. Integer implies "numeric").
//
// Semantic tags are free-form role labels on top of the logical type. Two
// tags are reserved for table roles and managed by table construction:
// "index" and "time_index". Derived single-column results never keep the
// reserved tags.
//
// There is no type inference: columns declared without a logical type get
// Unknown.
package typesys
