// Package digest computes content-addressed identities for reports.
//
// A report's identity is the SHA-256 of its canonical JSON encoding
// (RFC 8785 style: sorted keys, no HTML escaping, no floats) prefixed with
// a versioned domain string and a 0x00 separator. Two reads of identical
// database content therefore produce the same ID, which the store uses to
// deduplicate writes.
//
// Only the data the statistics are derived from is hashed: record lengths
// in order and symbol counts in first-seen order. Derived floats (mean,
// deviation) are never part of the identity.
package digest
