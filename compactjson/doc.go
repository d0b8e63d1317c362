// Package compactjson renders JSON with mixed formatting: every object is
// indented multi-line, every array — at any nesting depth and of any
// length — stays on a single compact line.
//
// What:
//
//   - Marshal/Encode serialize any json-marshalable value under that
//     visual contract.
//   - WriteFile writes the rendering atomically (temp file + rename), so
//     a failed write never leaves a partial file at the destination.
//
// Why:
//
//   - Instance records for scheduling solvers are dominated by long
//     numeric arrays. Standard indented output explodes each array over
//     hundreds of lines; fully compact output is unreadable. Keeping
//     objects indented and arrays inline makes the record human-scannable
//     without altering a single value.
//
// How:
//
//   - encoding/json produces the compact byte form, which fixes the exact
//     value semantics. A single string-aware pass then re-spaces it:
//     newlines and indentation inside objects, ", " element separation
//     inside arrays. Objects nested within an array render inline as part
//     of the array's line. The transformation is whitespace-only, so the
//     output parses back to the identical value.
//
// Errors:
//
//   - ErrInvalidJSON: the reformatter was handed bytes that are not valid
//     compact JSON (unbalanced or truncated input).
package compactjson
