package intent

import "fmt"

const (
	maxAliasLength       = 75
	maxDescriptionLength = 250
)

// CreateAccountParams carries the caller-supplied fields for a create
// account proposal.
type CreateAccountParams struct {
	DomainID         string
	Alias            string
	VaultID          string
	KeyStrategy      KeyStrategy
	Lock             LockState
	Description      string
	LedgerIDs        []string
	CustomProperties map[string]string
}

// CreateAccount builds a proposal for a new vault-backed account in the
// target domain.
func (b Builder) CreateAccount(author Author, params CreateAccountParams) (*Envelope, error) {
	if blank(params.DomainID) {
		return nil, errRequired("domainId")
	}
	if blank(params.Alias) {
		return nil, errRequired("alias")
	}
	if blank(params.VaultID) {
		return nil, errRequired("vaultId")
	}
	if params.KeyStrategy == "" {
		return nil, errRequired("keyStrategy")
	}
	if len(params.Alias) > maxAliasLength {
		return nil, errInvalid("alias", fmt.Sprintf("alias must be at most %d characters", maxAliasLength))
	}
	switch params.KeyStrategy {
	case KeyStrategyVaultSoft, KeyStrategyVaultHard, KeyStrategyRandom:
	default:
		return nil, errInvalid("keyStrategy", "keyStrategy must be VaultSoft, VaultHard, or Random")
	}
	lock, err := validateLock(params.Lock)
	if err != nil {
		return nil, err
	}
	if len(params.Description) > maxDescriptionLength {
		return nil, errInvalid("description", fmt.Sprintf("description must be at most %d characters", maxDescriptionLength))
	}
	if err := validateAuthor(author); err != nil {
		return nil, err
	}

	payload := &CreateAccountPayload{
		ID:    b.newID(),
		Alias: params.Alias,
		ProviderDetails: ProviderDetails{
			VaultID:     params.VaultID,
			KeyStrategy: params.KeyStrategy,
			Type:        "Vault",
		},
		Lock:             lock,
		Description:      params.Description,
		CustomProperties: map[string]string{},
		Type:             PayloadTypeCreateAccount,
	}
	if len(params.LedgerIDs) > 0 {
		payload.LedgerIDs = params.LedgerIDs
	}

	description := params.Description
	if description == "" {
		description = "Create account: " + params.Alias
	}
	return b.envelope(author, params.DomainID, payload, description, params.CustomProperties), nil
}
