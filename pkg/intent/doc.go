// Package intent builds signed-proposal envelopes for the custody backend.
// It covers account and user creation, XRPL transaction orders for
// Multi-Purpose Tokens (payment, authorize, issuance create/destroy/set),
// and release of quarantined transfers.
//
// # Building an Envelope
//
// Builders validate required fields, stamp a 24 hour expiry, and generate
// fresh identifiers for the envelope and its payload:
//
//	builder := intent.Builder{}
//	envelope, err := builder.CreateAccount(author, intent.CreateAccountParams{
//		DomainID:    "5cd224fe-193e-8bce-c94c-c6c05245e2d1",
//		Alias:       "treasury-ops",
//		VaultID:     "vault-1",
//		KeyStrategy: intent.KeyStrategyVaultSoft,
//	})
//
// The clock and identifier source are injectable for tests. No network
// call is made; submission belongs to the custody client.
//
// Optional fields are omitted from the serialized payload when absent,
// empty, or zero. The backend's ledger encoding distinguishes a missing
// field from one carrying a default value, so the omission is part of the
// contract, not cosmetics.
package intent
