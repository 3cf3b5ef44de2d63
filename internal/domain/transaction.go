package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ClientID identifies an account holder. The input format caps it at 16 bits.
type ClientID uint16

// TxID identifies a deposit or withdrawal. Dispute, resolve and chargeback
// records carry the TxID of the deposit they act on, not an id of their own.
type TxID uint32

// Kind is the transaction type keyword as it appears on the wire.
type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
	KindDispute    Kind = "dispute"
	KindResolve    Kind = "resolve"
	KindChargeback Kind = "chargeback"
)

// HasAmount reports whether records of this kind carry their own amount.
func (k Kind) HasAmount() bool {
	return k == KindDeposit || k == KindWithdrawal
}

// ParseKind maps an input keyword onto a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindDeposit, KindWithdrawal, KindDispute, KindResolve, KindChargeback:
		return k, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// Transaction is one record of the inbound stream. Amount is zero for kinds
// that do not carry one; dispute lifecycle records never take an amount from
// the stream, the ledger recovers it from the referenced deposit.
type Transaction struct {
	Kind     Kind
	ClientID ClientID
	TxID     TxID
	Amount   decimal.Decimal
}
