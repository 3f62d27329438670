package fasta

import (
	"bytes"
	"fmt"
	"io"
)

// DefaultDelimiter marks the start of a record.
const DefaultDelimiter byte = '>'

// Record is one sequence entry.
type Record struct {
	Header   string
	Sequence string
}

// ReadError reports that the input stream could not be fully read.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read stream: %v", e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Splitter converts a raw stream into records.
// The zero value splits on DefaultDelimiter.
type Splitter struct {
	Delimiter byte
}

// Split reads r to exhaustion and returns its records in stream order
// using DefaultDelimiter.
func Split(r io.Reader) ([]Record, error) {
	return Splitter{}.Split(r)
}

// Split reads r to exhaustion and returns its records in stream order.
// An input without any delimiter yields an empty, non-nil slice.
func (s Splitter) Split(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ReadError{Err: err}
	}
	return s.SplitBytes(data), nil
}

// SplitBytes splits an in-memory database.
func (s Splitter) SplitBytes(data []byte) []Record {
	delim := s.Delimiter
	if delim == 0 {
		delim = DefaultDelimiter
	}

	segments := bytes.Split(data, []byte{delim})
	records := make([]Record, 0, len(segments)-1)

	// segments[0] is the preamble.
	for _, seg := range segments[1:] {
		records = append(records, parseSegment(seg))
	}
	return records
}

func parseSegment(seg []byte) Record {
	lines := splitLines(seg)
	if len(lines) == 0 {
		return Record{}
	}
	return Record{
		Header:   string(lines[0]),
		Sequence: string(bytes.Join(lines[1:], nil)),
	}
}

// splitLines breaks b at "\n", "\r\n" and "\r". A trailing terminator does
// not produce an empty final line.
func splitLines(b []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case '\n':
			lines = append(lines, b[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, b[start:i])
			if i+1 < len(b) && b[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(b) {
		lines = append(lines, b[start:])
	}
	return lines
}
