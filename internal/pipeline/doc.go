// Package pipeline streams FASTA records from one or more files through an
// engine.Scanner and hands matched records to a visit callback in input order.
//
// Workers share the Scanner: automata are immutable and every attempt owns its
// cursor, so no per-worker copies are needed.
package pipeline
