// Package account contains the CarrierAccount aggregate: a user's
// credentials and configuration for one shipping provider.
//
// Carrier accounts carry an opaque, vault-sealed credentials blob and are
// scoped to their owning user. They follow a deactivate-only lifecycle so
// historical bookings always resolve to the account that produced them.
package account
