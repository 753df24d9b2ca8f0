package intent

import "fmt"

// ReleaseTransfersParams carries the caller-supplied fields for releasing
// quarantined transfers held back by the custody backend.
type ReleaseTransfersParams struct {
	DomainID         string
	AccountID        string
	TransferIDs      []string
	CustomProperties map[string]string
}

// ReleaseTransfers builds a proposal to release one or more quarantined
// transfers on the account.
func (b Builder) ReleaseTransfers(author Author, params ReleaseTransfersParams) (*Envelope, error) {
	if blank(params.DomainID) {
		return nil, errRequired("domainId")
	}
	if blank(params.AccountID) {
		return nil, errRequired("accountId")
	}
	if len(params.TransferIDs) == 0 {
		return nil, errInvalid("transferIds", "transferIds must not be empty")
	}
	for _, transferID := range params.TransferIDs {
		if blank(transferID) {
			return nil, errInvalid("transferIds", "transferIds must not contain empty entries")
		}
	}
	if err := validateAuthor(author); err != nil {
		return nil, err
	}

	payload := &ReleaseQuarantinedTransfersPayload{
		AccountID:   params.AccountID,
		TransferIDs: params.TransferIDs,
		Type:        PayloadTypeReleaseQuarantinedTransfers,
	}
	noun := "transfers"
	if len(params.TransferIDs) == 1 {
		noun = "transfer"
	}
	description := fmt.Sprintf("Release %d quarantined %s", len(params.TransferIDs), noun)
	return b.envelope(author, params.DomainID, payload, description, params.CustomProperties), nil
}
