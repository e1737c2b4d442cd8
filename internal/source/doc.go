// Package source downloads remote dataset files over HTTP(S).
//
// The client streams the response body to a caller-supplied writer so large
// parquet files never need to be buffered twice. Failed responses surface as
// *HTTPError; 5xx and 429 responses are retried when retries are enabled.
package source
