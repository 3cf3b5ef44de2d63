package domain

// Reason says why the ledger ignored a transaction. Ignored transactions are
// expected in real histories; the reason is data about the run, not a failure
// of it.
type Reason string

const (
	ReasonFrozen            Reason = "frozen"
	ReasonInvalidAmount     Reason = "invalid-amount"
	ReasonDuplicateTx       Reason = "duplicate-tx"
	ReasonInsufficientFunds Reason = "insufficient-funds"
	ReasonNotDisputable     Reason = "not-disputable"
	ReasonNotResolvable     Reason = "not-resolvable"
	ReasonNotChargebackable Reason = "not-chargebackable"
	ReasonUnsupportedKind   Reason = "unsupported-kind"
)

// Err maps the reason onto its sentinel error.
func (r Reason) Err() error {
	switch r {
	case ReasonFrozen:
		return ErrAccountFrozen
	case ReasonInvalidAmount:
		return ErrInvalidAmount
	case ReasonDuplicateTx:
		return ErrDuplicateTransaction
	case ReasonInsufficientFunds:
		return ErrInsufficientFunds
	case ReasonNotDisputable, ReasonNotResolvable, ReasonNotChargebackable:
		return ErrIneligibleReference
	case ReasonUnsupportedKind:
		return ErrUnsupportedKind
	default:
		return nil
	}
}

// Outcome reports what the ledger did with one transaction.
type Outcome struct {
	Applied bool
	Reason  Reason
}

// Applied marks a transaction that mutated ledger state.
func Applied() Outcome {
	return Outcome{Applied: true}
}

// Ignored marks a transaction the ledger refused, with the reason why.
func Ignored(r Reason) Outcome {
	return Outcome{Reason: r}
}
