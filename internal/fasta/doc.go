// Package fasta splits delimited protein-database text into records.
//
// A database is a stream of records. Each record starts with a delimiter
// byte ('>' by default), followed by a header line and zero or more body
// lines. Body lines are concatenated, with only their line terminators
// removed, to form the record's sequence.
//
// Content preceding the first delimiter is a preamble and never becomes a
// record. The splitter performs no validation of headers or symbols.
package fasta
