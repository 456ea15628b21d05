package core

// GroupTotal is an amount aggregated under a single label, the label being
// either a payee or a category name.
type GroupTotal struct {
	Name   string
	Amount Money
}
