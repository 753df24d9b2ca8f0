package intent

// EnvelopeTypePropose marks an envelope as a proposal, as opposed to an
// approval or rejection of an existing intent.
const EnvelopeTypePropose = "Propose"

// Payload type tags used by the custody backend.
const (
	PayloadTypeCreateAccount               = "v0_CreateAccount"
	PayloadTypeCreateUser                  = "v0_CreateUser"
	PayloadTypeCreateTransactionOrder      = "v0_CreateTransactionOrder"
	PayloadTypeReleaseQuarantinedTransfers = "v0_ReleaseQuarantinedTransfers"
)

// Ledger operation type tags.
const (
	OperationTypePayment                = "Payment"
	OperationTypeMPTokenAuthorize       = "MPTokenAuthorize"
	OperationTypeMPTokenIssuanceCreate  = "MPTokenIssuanceCreate"
	OperationTypeMPTokenIssuanceDestroy = "MPTokenIssuanceDestroy"
	OperationTypeMPTokenIssuanceSet     = "MPTokenIssuanceSet"
)

type LockState string

const (
	LockStateLocked   LockState = "Locked"
	LockStateUnlocked LockState = "Unlocked"
)

type KeyStrategy string

const (
	KeyStrategyVaultSoft KeyStrategy = "VaultSoft"
	KeyStrategyVaultHard KeyStrategy = "VaultHard"
	KeyStrategyRandom    KeyStrategy = "Random"
)

// Author identifies the authenticated principal proposing an intent. It
// must match a principal known to the target domain.
type Author struct {
	ID       string `json:"id"`
	DomainID string `json:"domainId"`
}

// Envelope is the outer signed-request wrapper handed to the custody
// backend. Payload is a tagged union discriminated by its type field.
type Envelope struct {
	Author           Author            `json:"author"`
	ExpiryAt         string            `json:"expiryAt"`
	TargetDomainID   string            `json:"targetDomainId"`
	ID               string            `json:"id"`
	Payload          Payload           `json:"payload"`
	Description      string            `json:"description"`
	CustomProperties map[string]string `json:"customProperties"`
	Type             string            `json:"type"`
}

// Payload is implemented by every operation payload variant.
type Payload interface {
	payloadType() string
}

// ProviderDetails describes the vault backing a new account.
type ProviderDetails struct {
	VaultID     string      `json:"vaultId"`
	KeyStrategy KeyStrategy `json:"keyStrategy"`
	Type        string      `json:"type"`
}

type CreateAccountPayload struct {
	ID               string            `json:"id"`
	Alias            string            `json:"alias"`
	ProviderDetails  ProviderDetails   `json:"providerDetails"`
	Lock             LockState         `json:"lock"`
	Description      string            `json:"description,omitempty"`
	LedgerIDs        []string          `json:"ledgerIds,omitempty"`
	CustomProperties map[string]string `json:"customProperties"`
	Type             string            `json:"type"`
}

func (CreateAccountPayload) payloadType() string { return PayloadTypeCreateAccount }

// LoginID associates an external identity-provider login with a new user.
type LoginID struct {
	ID         string `json:"id"`
	ProviderID string `json:"providerId"`
}

type CreateUserPayload struct {
	ID               string            `json:"id"`
	Alias            string            `json:"alias"`
	PublicKey        string            `json:"publicKey"`
	Roles            []string          `json:"roles"`
	Lock             LockState         `json:"lock"`
	Description      string            `json:"description,omitempty"`
	CustomProperties map[string]string `json:"customProperties"`
	LoginIDs         []LoginID         `json:"loginIds,omitempty"`
	Type             string            `json:"type"`
}

func (CreateUserPayload) payloadType() string { return PayloadTypeCreateUser }

type FeeStrategy struct {
	Priority string `json:"priority"`
	Type     string `json:"type"`
}

type Memo struct {
	Data   string `json:"data,omitempty"`
	Format string `json:"format,omitempty"`
	Type   string `json:"type,omitempty"`
}

// XRPLParameters carries the ledger-specific portion of a transaction
// order.
type XRPLParameters struct {
	Type        string          `json:"type"`
	FeeStrategy FeeStrategy     `json:"feeStrategy"`
	MaximumFee  string          `json:"maximumFee"`
	Memos       []Memo          `json:"memos"`
	Operation   LedgerOperation `json:"operation"`
}

type CreateTransactionOrderPayload struct {
	ID               string            `json:"id"`
	LedgerID         string            `json:"ledgerId"`
	AccountID        string            `json:"accountId"`
	Parameters       XRPLParameters    `json:"parameters"`
	Description      string            `json:"description"`
	CustomProperties map[string]string `json:"customProperties"`
	Type             string            `json:"type"`
}

func (CreateTransactionOrderPayload) payloadType() string {
	return PayloadTypeCreateTransactionOrder
}

type ReleaseQuarantinedTransfersPayload struct {
	AccountID   string   `json:"accountId"`
	TransferIDs []string `json:"transferIds"`
	Type        string   `json:"type"`
}

func (ReleaseQuarantinedTransfersPayload) payloadType() string {
	return PayloadTypeReleaseQuarantinedTransfers
}

// LedgerOperation is implemented by every XRPL operation variant nested
// inside a transaction order.
type LedgerOperation interface {
	operationType() string
}

type Destination struct {
	Address string `json:"address"`
	Type    string `json:"type"`
}

type Currency struct {
	IssuanceID string `json:"issuanceId"`
	Type       string `json:"type"`
}

type PaymentOperation struct {
	Destination Destination `json:"destination"`
	Amount      string      `json:"amount"`
	Currency    Currency    `json:"currency"`
	Type        string      `json:"type"`
}

func (PaymentOperation) operationType() string { return OperationTypePayment }

type MPTokenAuthorizeOperation struct {
	IssuanceID string   `json:"issuanceId"`
	Flags      []string `json:"flags"`
	Type       string   `json:"type"`
}

func (MPTokenAuthorizeOperation) operationType() string { return OperationTypeMPTokenAuthorize }

type MPTokenIssuanceCreateOperation struct {
	Type          string `json:"type"`
	AssetScale    *int   `json:"assetScale,omitempty"`
	TransferFee   int    `json:"transferFee,omitempty"`
	MaximumAmount string `json:"maximumAmount,omitempty"`
	Flags         uint32 `json:"flags,omitempty"`
	Metadata      string `json:"metadata,omitempty"`
}

func (MPTokenIssuanceCreateOperation) operationType() string {
	return OperationTypeMPTokenIssuanceCreate
}

type MPTokenIssuanceDestroyOperation struct {
	Type       string `json:"type"`
	IssuanceID string `json:"issuanceId"`
}

func (MPTokenIssuanceDestroyOperation) operationType() string {
	return OperationTypeMPTokenIssuanceDestroy
}

type MPTokenIssuanceSetOperation struct {
	Type       string  `json:"type"`
	IssuanceID string  `json:"issuanceId"`
	Flags      SetFlag `json:"flags"`
	Holder     string  `json:"holder,omitempty"`
}

func (MPTokenIssuanceSetOperation) operationType() string {
	return OperationTypeMPTokenIssuanceSet
}
