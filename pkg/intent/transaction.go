package intent

import "regexp"

const (
	maxAssetScale  = 255
	maxTransferFee = 50000
)

var integerPattern = regexp.MustCompile(`^[0-9]+$`)

// PaymentParams carries the caller-supplied fields for an MPT payment
// transaction order.
type PaymentParams struct {
	DomainID           string
	LedgerID           string
	AccountID          string
	DestinationAddress string
	Amount             string
	IssuanceID         string
	Description        string
	CustomProperties   map[string]string
	TransactionOrderOptions
}

// Payment builds a proposal to pay an MPT amount from a custody account
// to a ledger address.
func (b Builder) Payment(author Author, params PaymentParams) (*Envelope, error) {
	if blank(params.DomainID) {
		return nil, errRequired("domainId")
	}
	if blank(params.AccountID) {
		return nil, errRequired("accountId")
	}
	if blank(params.DestinationAddress) {
		return nil, errRequired("destinationAddress")
	}
	if blank(params.Amount) {
		return nil, errRequired("amount")
	}
	if blank(params.IssuanceID) {
		return nil, errRequired("issuanceId")
	}
	if blank(params.LedgerID) {
		return nil, errRequired("ledgerId")
	}
	if err := validateAuthor(author); err != nil {
		return nil, err
	}

	description := params.Description
	if description == "" {
		description = "MPT Payment"
	}
	operation := MPTPaymentOperation(params.DestinationAddress, params.Amount, params.IssuanceID)
	payload := b.transactionOrder(
		params.LedgerID,
		params.AccountID,
		operation,
		description,
		params.CustomProperties,
		params.TransactionOrderOptions,
	)
	return b.envelope(author, params.DomainID, payload, description, params.CustomProperties), nil
}

// MPTPaymentOperation builds the payment leg of a transaction order with
// an MPT issuance as the currency.
func MPTPaymentOperation(destinationAddress string, amount string, issuanceID string) PaymentOperation {
	return PaymentOperation{
		Destination: Destination{Address: destinationAddress, Type: "Address"},
		Amount:      amount,
		Currency:    Currency{IssuanceID: issuanceID, Type: "MultiPurposeToken"},
		Type:        OperationTypePayment,
	}
}

// MPTAuthorizeParams carries the caller-supplied fields for an MPT
// authorize transaction order.
type MPTAuthorizeParams struct {
	DomainID         string
	LedgerID         string
	AccountID        string
	IssuanceID       string
	Description      string
	CustomProperties map[string]string
	TransactionOrderOptions
}

// MPTAuthorize builds a proposal for the account to opt in to holding an
// MPT issuance.
func (b Builder) MPTAuthorize(author Author, params MPTAuthorizeParams) (*Envelope, error) {
	if blank(params.DomainID) {
		return nil, errRequired("domainId")
	}
	if blank(params.IssuanceID) {
		return nil, errRequired("issuanceId")
	}
	if blank(params.AccountID) {
		return nil, errRequired("accountId")
	}
	if blank(params.LedgerID) {
		return nil, errRequired("ledgerId")
	}
	if err := validateAuthor(author); err != nil {
		return nil, err
	}

	description := params.Description
	if description == "" {
		description = "MPT Authorize"
	}
	operation := MPTokenAuthorizeOperation{
		IssuanceID: params.IssuanceID,
		Flags:      []string{},
		Type:       OperationTypeMPTokenAuthorize,
	}
	payload := b.transactionOrder(
		params.LedgerID,
		params.AccountID,
		operation,
		description,
		params.CustomProperties,
		params.TransactionOrderOptions,
	)
	return b.envelope(author, params.DomainID, payload, description, params.CustomProperties), nil
}

// MPTIssuanceCreateParams carries the caller-supplied fields for an MPT
// issuance create transaction order. AssetScale is a pointer because zero
// is a meaningful scale; a nil pointer omits the field. TransferFee and
// Flags are omitted from the payload unless positive. Metadata is the
// hex-encoded XLS-89 blob produced by the xls89 package.
type MPTIssuanceCreateParams struct {
	DomainID         string
	LedgerID         string
	AccountID        string
	AssetScale       *int
	TransferFee      int
	MaximumAmount    string
	Flags            uint32
	Metadata         string
	CustomProperties map[string]string
	TransactionOrderOptions
}

// MPTIssuanceCreate builds a proposal to create a new MPT issuance on the
// ledger, following the XRPL MPTokenIssuanceCreate transaction format.
func (b Builder) MPTIssuanceCreate(author Author, params MPTIssuanceCreateParams) (*Envelope, error) {
	if blank(params.DomainID) {
		return nil, errRequired("domainId")
	}
	if blank(params.AccountID) {
		return nil, errRequired("accountId")
	}
	if blank(params.LedgerID) {
		return nil, errRequired("ledgerId")
	}
	if params.AssetScale != nil && (*params.AssetScale < 0 || *params.AssetScale > maxAssetScale) {
		return nil, errInvalid("assetScale", "assetScale must be between 0 and 255")
	}
	if params.TransferFee < 0 || params.TransferFee > maxTransferFee {
		return nil, errInvalid("transferFee", "transferFee must be between 0 and 50000")
	}
	if params.MaximumAmount != "" && !integerPattern.MatchString(params.MaximumAmount) {
		return nil, errInvalid("maximumAmount", "maximumAmount must be a base-10 integer")
	}
	if params.Flags&^uint32(combinableFlagMask) != 0 {
		return nil, errInvalid("flags", "flags contains unsupported bits")
	}
	if err := validateAuthor(author); err != nil {
		return nil, err
	}

	operation := MPTokenIssuanceCreateOperation{
		Type:          OperationTypeMPTokenIssuanceCreate,
		AssetScale:    params.AssetScale,
		MaximumAmount: params.MaximumAmount,
		Metadata:      params.Metadata,
	}
	if params.TransferFee > 0 {
		operation.TransferFee = params.TransferFee
	}
	if params.Flags > 0 {
		operation.Flags = params.Flags
	}
	payload := b.transactionOrder(
		params.LedgerID,
		params.AccountID,
		operation,
		"MPT Issuance Create",
		params.CustomProperties,
		params.TransactionOrderOptions,
	)
	return b.envelope(author, params.DomainID, payload, "Create new MPT Issuance", params.CustomProperties), nil
}

// MPTIssuanceDestroyParams carries the caller-supplied fields for an MPT
// issuance destroy transaction order.
type MPTIssuanceDestroyParams struct {
	DomainID         string
	LedgerID         string
	AccountID        string
	IssuanceID       string
	CustomProperties map[string]string
	TransactionOrderOptions
}

// MPTIssuanceDestroy builds a proposal to destroy an MPT issuance with no
// outstanding balances.
func (b Builder) MPTIssuanceDestroy(author Author, params MPTIssuanceDestroyParams) (*Envelope, error) {
	if blank(params.DomainID) {
		return nil, errRequired("domainId")
	}
	if blank(params.AccountID) {
		return nil, errRequired("accountId")
	}
	if blank(params.IssuanceID) {
		return nil, errRequired("issuanceId")
	}
	if blank(params.LedgerID) {
		return nil, errRequired("ledgerId")
	}
	if err := validateAuthor(author); err != nil {
		return nil, err
	}

	operation := MPTokenIssuanceDestroyOperation{
		Type:       OperationTypeMPTokenIssuanceDestroy,
		IssuanceID: params.IssuanceID,
	}
	payload := b.transactionOrder(
		params.LedgerID,
		params.AccountID,
		operation,
		"MPT Issuance Destroy",
		params.CustomProperties,
		params.TransactionOrderOptions,
	)
	return b.envelope(author, params.DomainID, payload, "Destroy MPT Issuance", params.CustomProperties), nil
}

// MPTIssuanceSetParams carries the caller-supplied fields for an MPT
// issuance set transaction order. Holder is optional; omitting it applies
// the flag change to all holders.
type MPTIssuanceSetParams struct {
	DomainID         string
	LedgerID         string
	AccountID        string
	IssuanceID       string
	Flags            SetFlag
	Holder           string
	CustomProperties map[string]string
	TransactionOrderOptions
}

// MPTIssuanceSet builds a proposal to lock or unlock an MPT issuance,
// either globally or for a single holder.
func (b Builder) MPTIssuanceSet(author Author, params MPTIssuanceSetParams) (*Envelope, error) {
	if blank(params.DomainID) {
		return nil, errRequired("domainId")
	}
	if blank(params.AccountID) {
		return nil, errRequired("accountId")
	}
	if blank(params.IssuanceID) {
		return nil, errRequired("issuanceId")
	}
	if params.Flags != SetFlagLock && params.Flags != SetFlagUnlock {
		return nil, errInvalid("flags", "flags must be 1 (Lock) or 2 (Unlock)")
	}
	if blank(params.LedgerID) {
		return nil, errRequired("ledgerId")
	}
	if err := validateAuthor(author); err != nil {
		return nil, err
	}

	operation := MPTokenIssuanceSetOperation{
		Type:       OperationTypeMPTokenIssuanceSet,
		IssuanceID: params.IssuanceID,
		Flags:      params.Flags,
		Holder:     params.Holder,
	}
	payload := b.transactionOrder(
		params.LedgerID,
		params.AccountID,
		operation,
		"MPT Issuance Set - "+params.Flags.String(),
		params.CustomProperties,
		params.TransactionOrderOptions,
	)
	return b.envelope(author, params.DomainID, payload, "Set MPT Issuance - "+params.Flags.String(), params.CustomProperties), nil
}
