// Package domain contains the domain model for did:github resolution.
//
// This package defines value objects and domain errors with no dependencies on
// transports, configuration or third-party libraries.
//
// Hexagonal Architecture Boundaries:
//   - Domain NEVER imports from: internal/resolver, internal/httpapi, cmd/, external SDKs
//   - Domain ONLY imports from: standard library, other domain types
//   - Domain exposes: value objects, constants, domain errors
//   - Domain does NOT: perform I/O, build URLs, log
//
// Files and types
// -----------------------
//   - did.go
//   - DID: value object for a decentralized identifier of the form
//     did:<method>:<identifier>. Splitting and checking of raw strings is done
//     by the resolver adapter, which then builds a DID from components.
//
//   - identifier.go
//   - IsGitHubLogin: the GitHub login rule used when strict identifiers are enabled.
//
//   - errors.go
//   - Sentinel errors for malformed DIDs, unsupported methods and rejected identifiers.
package domain
