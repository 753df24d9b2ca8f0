package intent

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Expiry applied to every proposal. The backend rejects the intent if it
// is not acted on before this deadline.
const proposalTTL = 24 * time.Hour

// DefaultMaximumFee is the XRPL maximum fee (in drops) applied to
// transaction orders unless the caller overrides it.
const DefaultMaximumFee = "10000000"

// DefaultFeePriority is the fee strategy priority applied to transaction
// orders unless the caller overrides it.
const DefaultFeePriority = "Medium"

// Builder constructs propose-intent envelopes. The zero value uses the
// wall clock and random UUIDs; both are injectable for tests.
type Builder struct {
	Now   func() time.Time
	NewID func() string
}

func (b Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

func (b Builder) newID() string {
	if b.NewID != nil {
		return b.NewID()
	}
	return uuid.NewString()
}

func (b Builder) expiryAt() string {
	return b.now().UTC().Add(proposalTTL).Format(time.RFC3339)
}

// envelope assembles the outer wrapper shared by every operation kind.
func (b Builder) envelope(
	author Author,
	targetDomainID string,
	payload Payload,
	description string,
	customProperties map[string]string,
) *Envelope {
	if customProperties == nil {
		customProperties = map[string]string{}
	}
	return &Envelope{
		Author:           author,
		ExpiryAt:         b.expiryAt(),
		TargetDomainID:   targetDomainID,
		ID:               b.newID(),
		Payload:          payload,
		Description:      description,
		CustomProperties: customProperties,
		Type:             EnvelopeTypePropose,
	}
}

// TransactionOrderOptions tune the ledger parameters shared by every
// transaction order. Zero values fall back to the defaults above.
type TransactionOrderOptions struct {
	MaximumFee string
	Priority   string
	Memos      []Memo
}

func (b Builder) transactionOrder(
	ledgerID string,
	accountID string,
	operation LedgerOperation,
	description string,
	customProperties map[string]string,
	options TransactionOrderOptions,
) *CreateTransactionOrderPayload {
	maximumFee := strings.TrimSpace(options.MaximumFee)
	if maximumFee == "" {
		maximumFee = DefaultMaximumFee
	}
	priority := strings.TrimSpace(options.Priority)
	if priority == "" {
		priority = DefaultFeePriority
	}
	memos := options.Memos
	if memos == nil {
		memos = []Memo{}
	}
	if customProperties == nil {
		customProperties = map[string]string{}
	}
	return &CreateTransactionOrderPayload{
		ID:        b.newID(),
		LedgerID:  ledgerID,
		AccountID: accountID,
		Parameters: XRPLParameters{
			Type:        "XRPL",
			FeeStrategy: FeeStrategy{Priority: priority, Type: "Priority"},
			MaximumFee:  maximumFee,
			Memos:       memos,
			Operation:   operation,
		},
		Description:      description,
		CustomProperties: customProperties,
		Type:             PayloadTypeCreateTransactionOrder,
	}
}

func validateAuthor(author Author) error {
	if strings.TrimSpace(author.ID) == "" || strings.TrimSpace(author.DomainID) == "" {
		return errInvalid("author", "author user and domain are required")
	}
	return nil
}

func validateLock(lock LockState) (LockState, error) {
	switch lock {
	case "":
		return LockStateUnlocked, nil
	case LockStateLocked, LockStateUnlocked:
		return lock, nil
	default:
		return "", errInvalid("lock", "lock must be Locked or Unlocked")
	}
}

func blank(value string) bool {
	return strings.TrimSpace(value) == ""
}
