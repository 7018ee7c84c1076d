// internal/motif/loader.go
package motif

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Entry is one user motif before compilation.
type Entry struct {
	Label          string
	Pattern        string
	MinOccurrences int
}

// LoadTSV reads motif entries from path: "label pattern [min]" per line,
// whitespace separated. Blank lines and '#' comments are skipped.
func LoadTSV(path string) ([]Entry, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return ReadTSV(fh, path)
}

// ReadTSV is LoadTSV over an open reader; name prefixes error messages.
func ReadTSV(r io.Reader, name string) ([]Entry, error) {
	var list []Entry
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 2 || len(f) > 3 {
			return nil, fmt.Errorf("%s:%d bad field count", name, ln)
		}
		e := Entry{Label: f[0], Pattern: strings.ToUpper(f[1])}
		if len(f) == 3 {
			n, err := strconv.Atoi(f[2])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%s:%d bad min %q", name, ln, f[2])
			}
			e.MinOccurrences = n
		}
		list = append(list, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
