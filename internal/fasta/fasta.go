// internal/fasta/fasta.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one FASTA entry. ID is the first whitespace-delimited token of the
// header; Desc is the whole header line without '>'. Seq is upper-cased with
// whitespace removed.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// InputError is a failure of the sequence source (unreadable file, bad gzip
// stream, over-long line). It is fatal to the run.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string { return fmt.Sprintf("read %s: %v", e.Path, e.Err) }
func (e *InputError) Unwrap() error { return e.Err }

// Stream opens path ("-" = stdin, gzip detected by magic or .gz) and emits each
// record in file order. It stops at the first emit error, which is returned
// unchanged, and returns promptly when ctx is done.
func Stream(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return &InputError{Path: path, Err: err}
	}
	defer func() { _ = rc.Close() }()

	err = Scan(ctx, rc, emit)
	var ie *InputError
	if asInput(err, &ie) && ie.Path == "" {
		ie.Path = path
	}
	return err
}

// Scan parses FASTA from r. Sequence lines before the first header form a
// record with an empty ID, so headerless input is still scanned; an empty
// preamble produces nothing.
func Scan(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		rec    Record
		inRec  bool
		seqBuf = make([]byte, 0, 1<<16)
	)
	flush := func() error {
		if !inRec && len(seqBuf) == 0 {
			return nil
		}
		rec.Seq = append([]byte(nil), seqBuf...)
		return emit(rec)
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			hdr := string(bytes.TrimSpace(line[1:]))
			rec = Record{ID: parseHeaderID(hdr), Desc: hdr}
			inRec = true
			seqBuf = seqBuf[:0]
			continue
		}
		seqBuf = appendSeq(seqBuf, line)
	}
	if err := sc.Err(); err != nil {
		return &InputError{Err: fmt.Errorf("fasta scan: %w", err)}
	}
	return flush()
}

// appendSeq appends line upper-cased, skipping whitespace.
func appendSeq(dst, line []byte) []byte {
	for _, c := range line {
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			continue
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		}
		dst = append(dst, c)
	}
	return dst
}

func parseHeaderID(hdr string) string {
	for i := 0; i < len(hdr); i++ {
		if hdr[i] == ' ' || hdr[i] == '\t' {
			return hdr[:i]
		}
	}
	return hdr
}
