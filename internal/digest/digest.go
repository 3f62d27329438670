package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/protstat/internal/stats"
)

// DomainReport prefixes report hashes. The version suffix allows the
// encoding to change without colliding with stored IDs.
const DomainReport = "protstat/report/v1"

// hashWithDomain returns hex(SHA256(domain + 0x00 + data)).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// CanonicalReport returns the canonical JSON form of rep's source data.
// Symbol counts are encoded as [symbol, count] pairs so their order is
// part of the identity.
func CanonicalReport(rep *stats.Report) ([]byte, error) {
	symbols := []any{}
	if rep.Symbols != nil {
		rep.Symbols.Each(func(sym rune, count int) {
			symbols = append(symbols, []any{string(sym), count})
		})
	}
	lengths := rep.Lengths
	if lengths == nil {
		lengths = []int{}
	}
	return MarshalCanonical(map[string]any{
		"lengths": lengths,
		"symbols": symbols,
	})
}

// ReportID computes the content-addressed ID of rep.
func ReportID(rep *stats.Report) (string, error) {
	canonical, err := CanonicalReport(rep)
	if err != nil {
		return "", fmt.Errorf("ReportID: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainReport, canonical), nil
}

// MustReportID is like ReportID but panics on error.
// Use only in tests.
func MustReportID(rep *stats.Report) string {
	id, err := ReportID(rep)
	if err != nil {
		panic(err)
	}
	return id
}

// Label derives a database label from its source name: NFC-normalized,
// with a trailing ".fasta" removed. Standard input keeps the name "-".
func Label(name string) string {
	return strings.TrimSuffix(norm.NFC.String(name), ".fasta")
}
