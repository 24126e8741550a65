// Package httpapi exposes DID resolution and wallet schema validation over HTTP.
//
// Routes:
//
//	GET  /healthz                    liveness probe
//	GET  /1.0/identifiers/{did}      DID -> document URL (the document is not fetched)
//	GET  /schemas                    registered schema ids
//	POST /schemas/validate?schema=   validate a JSON body against a schema
package httpapi
