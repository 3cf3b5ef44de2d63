package domain

import "github.com/shopspring/decimal"

// Account is the balance state for one client. Total always equals Available
// plus Held; disputing a deposit after its funds were withdrawn is the only
// way Available can end up negative.
type Account struct {
	ClientID  ClientID
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}

// NewAccount returns a zeroed account for client id.
func NewAccount(id ClientID) *Account {
	return &Account{
		ClientID:  id,
		Available: decimal.Zero,
		Held:      decimal.Zero,
		Total:     decimal.Zero,
	}
}

// CanWithdraw checks if the available balance covers a withdrawal of amount.
func (a *Account) CanWithdraw(amount decimal.Decimal) bool {
	return a.Available.GreaterThanOrEqual(amount)
}

// Credit adds amount to the available and total balances.
func (a *Account) Credit(amount decimal.Decimal) {
	a.Available = a.Available.Add(amount)
	a.Total = a.Total.Add(amount)
}

// Debit removes amount from the available and total balances.
func (a *Account) Debit(amount decimal.Decimal) {
	a.Available = a.Available.Sub(amount)
	a.Total = a.Total.Sub(amount)
}

// HoldFunds moves amount from available to held while a dispute is open.
// Total is unchanged.
func (a *Account) HoldFunds(amount decimal.Decimal) {
	a.Available = a.Available.Sub(amount)
	a.Held = a.Held.Add(amount)
}

// ReleaseFunds moves amount back from held to available once a dispute is
// resolved. Total is unchanged.
func (a *Account) ReleaseFunds(amount decimal.Decimal) {
	a.Held = a.Held.Sub(amount)
	a.Available = a.Available.Add(amount)
}

// ChargeBack withdraws the disputed amount from held funds and freezes the
// account against any further activity.
func (a *Account) ChargeBack(amount decimal.Decimal) {
	a.Held = a.Held.Sub(amount)
	a.Total = a.Total.Sub(amount)
	a.Locked = true
}
