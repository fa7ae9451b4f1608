// Package cli implements the offline translate command: translating files
// or stdin with the same lexicons the server loads, writing unknown-word
// reports, and minting admin tokens for the HTTP API.
package cli
