// Package sink provides concrete destinations for the HTML writer.
//
// Every sink implements the builder.Sink write contract (an append-only
// WriteString). Buffer is the in-memory destination, Stream adapts any
// byte-oriented io.Writer (including http.ResponseWriter, with flush
// support), and Metrics wraps another sink with Prometheus counters.
// An S3-backed sink lives in the s3sink subpackage.
package sink
