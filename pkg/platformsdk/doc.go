// Package platformsdk defines the request and response types of the
// creamery platform HTTP API. Server handlers and API consumers share
// these so the wire contract lives in one place.
package platformsdk
