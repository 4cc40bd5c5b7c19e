// Package camtrap implements the Camtrap DP record kinds (deployments,
// media, observations) and their conversions.
//
// Each kind supports the same four operations:
//
//   - read from delimited text (UTF-8, BOM-tolerant, header row required)
//   - write to delimited text (declared column order, byte-exact round trip
//     for writer-produced input)
//   - convert to an in-memory table (one column per field, rows in order)
//   - convert back from a table (columns matched by name)
//
// Records are plain value objects. Optional numeric and boolean fields are
// pointers whose nil value serializes as an empty string; optional text and
// vocabulary fields use the empty string for absence. Foreign keys between
// kinds (deploymentID, mediaID) are documented but not enforced.
//
// Errors are typed: *FormatError for structural problems, *ValueError for
// cells that cannot be coerced to their declared type. I/O errors propagate
// unchanged. There is no partial success: a conversion yields a complete
// sequence of records or fails entirely.
package camtrap
