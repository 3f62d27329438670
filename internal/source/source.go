// Package source resolves database names into in-memory byte streams.
//
// The name "-" means standard input. Standard input is read to
// end-of-stream into a buffer before any parsing starts; nothing is
// written to the filesystem.
package source

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/roach88/protstat/internal/digest"
	"github.com/roach88/protstat/internal/fasta"
)

// Stdin is the database name that selects standard input.
const Stdin = "-"

// Database is a fully buffered input database.
type Database struct {
	// Name is the name given by the caller ("-" for standard input).
	Name string

	// Label is the display label derived from Name.
	Label string

	data []byte
}

// Reader returns a fresh reader over the buffered content.
func (d *Database) Reader() io.Reader {
	return bytes.NewReader(d.data)
}

// Size returns the content size in bytes.
func (d *Database) Size() int {
	return len(d.data)
}

// Open buffers the named database. stdin is consulted only when name is
// Stdin. Open errors (missing file, permissions) are returned wrapped;
// failures while reading the content are returned as *fasta.ReadError.
func Open(name string, stdin io.Reader) (*Database, error) {
	if name == Stdin {
		return FromReader(Stdin, stdin)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer f.Close()

	return FromReader(name, f)
}

// FromReader buffers r under the given name.
func FromReader(name string, r io.Reader) (*Database, error) {
	if r == nil {
		return nil, fmt.Errorf("open database %q: no input stream", name)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &fasta.ReadError{Err: err}
	}
	return &Database{
		Name:  name,
		Label: digest.Label(name),
		data:  data,
	}, nil
}
