package domain

import "github.com/shopspring/decimal"

type DisputeStatus string

const (
	DisputeStatusClean       DisputeStatus = "clean"
	DisputeStatusDisputed    DisputeStatus = "disputed"
	DisputeStatusChargedBack DisputeStatus = "charged_back"
)

// Deposit is a successfully applied deposit kept around for the dispute
// lifecycle. Withdrawals are never recorded; only deposits can be disputed.
// ChargedBack is terminal, a resolved dispute goes back to clean.
type Deposit struct {
	TxID     TxID
	ClientID ClientID
	Amount   decimal.Decimal
	Status   DisputeStatus
}

// Disputable checks if client may open a dispute against this deposit.
func (d *Deposit) Disputable(client ClientID) bool {
	return d.ClientID == client && d.Status == DisputeStatusClean
}

// UnderDispute checks if client may settle this deposit with a resolve or a
// chargeback.
func (d *Deposit) UnderDispute(client ClientID) bool {
	return d.ClientID == client && d.Status == DisputeStatusDisputed
}
