// internal/writers/writer.go
package writers

import (
	"bufio"
	"io"
	"sync"

	"motifhunt/internal/engine"
	"motifhunt/internal/output"
)

// Reuse a 64 KiB buffered writer across reports to avoid per-writer mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// StartWriter runs a renderer for format in its own goroutine. Send results
// on the returned channel and close it; the error channel then yields exactly
// one value. After a write error the goroutine keeps draining so senders
// never block. Broken pipes are reported as success.
func StartWriter(out io.Writer, format string, opt output.Options, bufSize int) (chan<- engine.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Result, bufSize)
	done := make(chan error, 1)

	go func() {
		err := write(out, format, opt, in)
		for range in {
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		done <- err
	}()
	return in, done
}

func write(out io.Writer, format string, opt output.Options, in <-chan engine.Result) error {
	r, err := Lookup(format, opt)
	if err != nil {
		return err
	}

	bw := bwPool.Get().(*bufio.Writer)
	bw.Reset(out)
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	if err := r.Begin(bw); err != nil {
		return err
	}
	n := 0
	for res := range in {
		if err := r.Record(bw, res); err != nil {
			return err
		}
		n++
	}
	if err := r.End(bw, n); err != nil {
		return err
	}
	return bw.Flush()
}
