// Package ledger holds the authoritative account state for one transaction
// stream and the rules for mutating it.
package ledger

import (
	"sort"

	"github.com/sergiupopescu199/payment-engine/internal/domain"
)

// Ledger owns every account and disputable deposit produced by one stream.
// It is not safe for concurrent use: exactly one engine goroutine drives a
// ledger, and the channel boundary is the only synchronization.
type Ledger struct {
	accounts map[domain.ClientID]*domain.Account
	deposits map[domain.TxID]*domain.Deposit
	usedTx   map[domain.TxID]struct{}
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{
		accounts: make(map[domain.ClientID]*domain.Account),
		deposits: make(map[domain.TxID]*domain.Deposit),
		usedTx:   make(map[domain.TxID]struct{}),
	}
}

// Apply runs one transaction against the ledger and reports whether it
// mutated state. Ignored outcomes carry the reason and never abort a run; a
// partially bad history still settles into a final ledger.
func (l *Ledger) Apply(tx domain.Transaction) domain.Outcome {
	acc := l.account(tx.ClientID)
	if acc.Locked {
		return domain.Ignored(domain.ReasonFrozen)
	}

	switch tx.Kind {
	case domain.KindDeposit:
		return l.deposit(acc, tx)
	case domain.KindWithdrawal:
		return l.withdraw(acc, tx)
	case domain.KindDispute:
		return l.dispute(acc, tx)
	case domain.KindResolve:
		return l.resolve(acc, tx)
	case domain.KindChargeback:
		return l.chargeback(acc, tx)
	default:
		return domain.Ignored(domain.ReasonUnsupportedKind)
	}
}

func (l *Ledger) deposit(acc *domain.Account, tx domain.Transaction) domain.Outcome {
	if !tx.Amount.IsPositive() {
		return domain.Ignored(domain.ReasonInvalidAmount)
	}
	if l.txUsed(tx.TxID) {
		return domain.Ignored(domain.ReasonDuplicateTx)
	}

	acc.Credit(tx.Amount)
	l.deposits[tx.TxID] = &domain.Deposit{
		TxID:     tx.TxID,
		ClientID: tx.ClientID,
		Amount:   tx.Amount,
		Status:   domain.DisputeStatusClean,
	}
	l.usedTx[tx.TxID] = struct{}{}

	return domain.Applied()
}

func (l *Ledger) withdraw(acc *domain.Account, tx domain.Transaction) domain.Outcome {
	if !tx.Amount.IsPositive() {
		return domain.Ignored(domain.ReasonInvalidAmount)
	}
	if l.txUsed(tx.TxID) {
		return domain.Ignored(domain.ReasonDuplicateTx)
	}
	if !acc.CanWithdraw(tx.Amount) {
		return domain.Ignored(domain.ReasonInsufficientFunds)
	}

	acc.Debit(tx.Amount)
	l.usedTx[tx.TxID] = struct{}{}

	return domain.Applied()
}

// dispute opens a dispute against an earlier deposit. The held amount comes
// from the stored deposit, never from the incoming record. There is no
// sufficient-funds check: disputing more than is available drives the
// available balance negative rather than losing the dispute.
func (l *Ledger) dispute(acc *domain.Account, tx domain.Transaction) domain.Outcome {
	dep, ok := l.deposits[tx.TxID]
	if !ok || !dep.Disputable(tx.ClientID) {
		return domain.Ignored(domain.ReasonNotDisputable)
	}

	acc.HoldFunds(dep.Amount)
	dep.Status = domain.DisputeStatusDisputed

	return domain.Applied()
}

func (l *Ledger) resolve(acc *domain.Account, tx domain.Transaction) domain.Outcome {
	dep, ok := l.deposits[tx.TxID]
	if !ok || !dep.UnderDispute(tx.ClientID) {
		return domain.Ignored(domain.ReasonNotResolvable)
	}

	acc.ReleaseFunds(dep.Amount)
	dep.Status = domain.DisputeStatusClean

	return domain.Applied()
}

func (l *Ledger) chargeback(acc *domain.Account, tx domain.Transaction) domain.Outcome {
	dep, ok := l.deposits[tx.TxID]
	if !ok || !dep.UnderDispute(tx.ClientID) {
		return domain.Ignored(domain.ReasonNotChargebackable)
	}

	acc.ChargeBack(dep.Amount)
	dep.Status = domain.DisputeStatusChargedBack

	return domain.Applied()
}

// account returns the state for a client, creating a zeroed account the
// first time any record references the client id.
func (l *Ledger) account(id domain.ClientID) *domain.Account {
	acc, ok := l.accounts[id]
	if !ok {
		acc = domain.NewAccount(id)
		l.accounts[id] = acc
	}
	return acc
}

// txUsed reports whether a deposit or withdrawal already consumed this id.
// Ids are only recorded on successful application, so a rejected transaction
// does not burn its id.
func (l *Ledger) txUsed(id domain.TxID) bool {
	_, ok := l.usedTx[id]
	return ok
}

// Account returns a copy of the state for one client.
func (l *Ledger) Account(id domain.ClientID) (domain.Account, bool) {
	acc, ok := l.accounts[id]
	if !ok {
		return domain.Account{}, false
	}
	return *acc, true
}

// Snapshot returns a copy of every account known to the ledger, sorted by
// client id so identical input always renders identically.
func (l *Ledger) Snapshot() []domain.Account {
	accounts := make([]domain.Account, 0, len(l.accounts))
	for _, acc := range l.accounts {
		accounts = append(accounts, *acc)
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].ClientID < accounts[j].ClientID
	})

	return accounts
}
