// Package source reads fixed-arity records from delimited text files.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// ErrConsumed is yielded when a record sequence is ranged over a second time.
var ErrConsumed = errors.New("record sequence already consumed")

// Config describes one delimited input source.
type Config struct {
	Name      string `yaml:"name" validate:"required"`
	Path      string `yaml:"path" validate:"required"`
	Separator string `yaml:"separator" validate:"required"`
	Fields    int    `yaml:"fields" validate:"min=1"`
	Header    bool   `yaml:"header"`
}

// Record is one line split into exactly Config.Fields values.
type Record []string

// FieldCountError reports a line whose field count does not match the
// source's declared arity.
type FieldCountError struct {
	Source string
	Line   int
	Got    int
	Want   int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("%q has %d fields on line %d but expected %d", e.Source, e.Got, e.Line, e.Want)
}

// Records returns a lazy sequence over the records of the file at cfg.Path.
// The file is opened when iteration starts and closed when it stops. The
// sequence can be ranged over once; later attempts yield ErrConsumed.
func Records(cfg Config) iter.Seq2[Record, error] {
	consumed := false
	return func(yield func(Record, error) bool) {
		if consumed {
			yield(nil, ErrConsumed)
			return
		}
		consumed = true

		f, err := os.Open(cfg.Path)
		if err != nil {
			yield(nil, err)
			return
		}
		defer f.Close()

		if cfg.Name == "" {
			cfg.Name = filepath.Base(cfg.Path)
		}
		for rec, err := range Read(f, cfg) {
			if !yield(rec, err) {
				return
			}
		}
	}
}

// Read returns a lazy sequence over the records read from r. Iteration stops
// after the first error.
func Read(r io.Reader, cfg Config) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

		// Line numbers count data lines only, so a skipped header shifts
		// the first record to line 1.
		physical := 0
		for sc.Scan() {
			physical++
			if cfg.Header && physical == 1 {
				continue
			}
			line := physical
			if cfg.Header {
				line--
			}

			text := strings.TrimSuffix(sc.Text(), "\r")
			fields := strings.Split(text, cfg.Separator)
			if len(fields) != cfg.Fields {
				yield(nil, &FieldCountError{
					Source: cfg.Name,
					Line:   line,
					Got:    len(fields),
					Want:   cfg.Fields,
				})
				return
			}
			if !yield(Record(fields), nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield(nil, fmt.Errorf("read %s: %w", cfg.Name, err))
		}
	}
}
