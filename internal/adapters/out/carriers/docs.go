// Package carriers contains the carrier integrations and the machinery
// that turns a stored carrier account into a live adapter: the provider
// registry, the credential-unsealing factory and the deterministic mock
// carrier.
package carriers
