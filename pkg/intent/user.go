package intent

import "fmt"

// CreateUserParams carries the caller-supplied fields for a create user
// proposal. Roles are free-form strings so callers can define custom
// roles alongside the built-in ones.
type CreateUserParams struct {
	DomainID         string
	Alias            string
	PublicKey        string
	Roles            []string
	Lock             LockState
	Description      string
	LoginIDs         []LoginID
	CustomProperties map[string]string
}

// CreateUser builds a proposal for a new user in the target domain. At
// least one role is required.
func (b Builder) CreateUser(author Author, params CreateUserParams) (*Envelope, error) {
	if blank(params.DomainID) {
		return nil, errRequired("domainId")
	}
	if blank(params.Alias) {
		return nil, errRequired("alias")
	}
	if blank(params.PublicKey) {
		return nil, errRequired("publicKey")
	}
	if len(params.Roles) == 0 {
		return nil, errInvalid("roles", "at least one role is required")
	}
	for _, role := range params.Roles {
		if blank(role) {
			return nil, errInvalid("roles", "roles must not contain empty entries")
		}
	}
	if len(params.Alias) > maxAliasLength {
		return nil, errInvalid("alias", fmt.Sprintf("alias must be at most %d characters", maxAliasLength))
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

	payload := &CreateUserPayload{
		ID:               b.newID(),
		Alias:            params.Alias,
		PublicKey:        params.PublicKey,
		Roles:            params.Roles,
		Lock:             lock,
		Description:      params.Description,
		CustomProperties: map[string]string{},
		Type:             PayloadTypeCreateUser,
	}
	if len(params.LoginIDs) > 0 {
		payload.LoginIDs = params.LoginIDs
	}

	description := params.Description
	if description == "" {
		description = "Create user: " + params.Alias
	}
	return b.envelope(author, params.DomainID, payload, description, params.CustomProperties), nil
}
