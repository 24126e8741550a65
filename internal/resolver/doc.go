// Package resolver turns did:github identifiers into the URL of their DID document.
//
// Resolution is string construction only. The document is never fetched:
//
//	did:github:<identifier>
//	  -> https://raw.githubusercontent.com/<identifier>/ghdid/master/index.jsonld
//
// Parse splits and checks the scheme, GitHubResolver checks the method and builds
// the URL, and Registry routes a DID to the resolver registered for its method.
package resolver
