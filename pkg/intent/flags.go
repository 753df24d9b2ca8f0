package intent

// Flag is an MPTokenIssuanceCreate capability flag, per the XRPL
// transaction format.
type Flag uint32

const (
	// FlagCanLock allows the MPT to be locked both individually and globally.
	FlagCanLock Flag = 2
	// FlagRequireAuth requires individual holders to be authorized.
	FlagRequireAuth Flag = 4
	// FlagCanEscrow allows holders to place balances into an escrow.
	FlagCanEscrow Flag = 8
	// FlagCanTrade allows holders to trade balances on the XRP Ledger DEX.
	FlagCanTrade Flag = 16
	// FlagCanTransfer allows transfers to accounts other than the issuer.
	FlagCanTransfer Flag = 32
	// FlagCanClawback allows the issuer to claw back value from holders.
	FlagCanClawback Flag = 64
)

// combinableFlagMask covers every defined issuance-create flag.
const combinableFlagMask = FlagCanLock | FlagRequireAuth | FlagCanEscrow |
	FlagCanTrade | FlagCanTransfer | FlagCanClawback

var flagNames = map[Flag]string{
	FlagCanLock:     "tfMPTCanLock",
	FlagRequireAuth: "tfMPTRequireAuth",
	FlagCanEscrow:   "tfMPTCanEscrow",
	FlagCanTrade:    "tfMPTCanTrade",
	FlagCanTransfer: "tfMPTCanTransfer",
	FlagCanClawback: "tfMPTCanClawback",
}

func (f Flag) String() string {
	if name, ok := flagNames[f]; ok {
		return name
	}
	return "unknown"
}

// CombineFlags returns the bitwise OR of the selected flags.
func CombineFlags(flags ...Flag) uint32 {
	var combined uint32
	for _, flag := range flags {
		combined |= uint32(flag)
	}
	return combined
}

// SplitFlags decomposes a combined value into the defined flags that
// cover it. Bits outside the defined set are ignored.
func SplitFlags(combined uint32) []Flag {
	ordered := []Flag{
		FlagCanLock,
		FlagRequireAuth,
		FlagCanEscrow,
		FlagCanTrade,
		FlagCanTransfer,
		FlagCanClawback,
	}
	flags := make([]Flag, 0, len(ordered))
	for _, flag := range ordered {
		if combined&uint32(flag) != 0 {
			flags = append(flags, flag)
		}
	}
	return flags
}

// SetFlag selects the MPTokenIssuanceSet action.
type SetFlag uint32

const (
	SetFlagLock   SetFlag = 1
	SetFlagUnlock SetFlag = 2
)

func (f SetFlag) String() string {
	switch f {
	case SetFlagLock:
		return "Lock"
	case SetFlagUnlock:
		return "Unlock"
	}
	return "unknown"
}
