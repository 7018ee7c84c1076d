// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"motifhunt/internal/engine"
	"motifhunt/internal/fasta"
)

// Config controls the scanning pipeline.
type Config struct {
	Threads       int // number of worker goroutines (>=1)
	MaxMismatches int // shared mismatch budget for every motif
}

// Summary counts what a run saw.
type Summary struct {
	Records int // records scanned
	Matched int // records delivered to visit
}

// Run reads every file in order and calls visit for each record with at least
// one surviving hit, in file and record order regardless of Threads. It
// returns the first error: a visit error, then an input error, then the
// context error.
func Run(
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	sc *engine.Scanner,
	visit func(engine.Result) error,
) (Summary, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type job struct {
		n    int
		rec  fasta.Record
		file string
	}
	type done struct {
		n   int
		res engine.Result
		ok  bool
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan done, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				res, ok := sc.ScanRecord(j.rec.ID, j.rec.Seq, cfg.MaxMismatches)
				res.Desc, res.SourceFile = j.rec.Desc, j.file
				d := done{n: j.n, ok: ok, res: res}
				select {
				case results <- d:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	// Collector: restores input order before calling visit.
	var (
		sum  Summary
		verr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]done)
		next := 0
		for d := range results {
			pending[d.n] = d
			for {
				x, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				sum.Records++
				if !x.ok || verr != nil {
					continue
				}
				sum.Matched++
				if err := visit(x.res); err != nil {
					verr = err
					cancel()
				}
			}
		}
	}()

	// Feed work
	var ferr error
	n := 0
	for _, fa := range seqFiles {
		file := fa
		ferr = fasta.Stream(ctx, file, func(r fasta.Record) error {
			select {
			case jobs <- job{n: n, rec: r, file: file}:
				n++
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if ferr != nil {
			break
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	switch {
	case verr != nil:
		return sum, verr
	case ferr != nil:
		return sum, ferr
	}
	return sum, ctx.Err()
}
