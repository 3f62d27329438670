// Package present turns reports into text and JSON-ready views.
//
// Nothing here changes report data. Views only derive display values:
// percentages, upper-cased symbol labels, cross-database symbol alignment
// and length histograms. Every view is computed fully before anything is
// written, so an undefined statistic never leaves partial output behind.
package present
