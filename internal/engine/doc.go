// Package engine runs compiled motifs against sequence records.
//
// Design:
//   • Every admissible start offset is tried independently; overlapping hits
//     from one motif are all kept.
//   • Automata are shared read-only; each attempt walks its own motif.Cursor.
//   • A record produces a Result only when at least one hit survives the
//     per-motif minimum-occurrence gate.
package engine
