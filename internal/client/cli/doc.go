// Package cli implements the interactive terminal client of fieldassets.
//
// The client is a read-eval-print loop over the application services: the
// operator logs in, synchronizes the dealer/customer catalog into the
// local cache, browses it offline, and runs scan-verification sessions
// against customer locations. Each line typed during a verification
// session stands in for one decoded barcode event.
package cli
