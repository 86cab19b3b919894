package models

import "fmt"

// TransactionType is the kind of a ledger entry.
type TransactionType int

const (
	// Debit is money spent. It is the default for entries without a type.
	Debit TransactionType = iota
	// Credit is money received.
	Credit
	// Lend is money handed to someone else, expected back.
	Lend
)

// TransactionTypes lists every known type in display order.
var TransactionTypes = []TransactionType{Debit, Credit, Lend}

// ParseTransactionType converts a stored or submitted value into a TransactionType.
// The empty string maps to Debit so records created before the field existed
// keep resolving to debit.
func ParseTransactionType(s string) (TransactionType, error) {
	if s == "" {
		return Debit, nil
	}
	for _, t := range TransactionTypes {
		if t.String() == s {
			return t, nil
		}
	}
	return Debit, fmt.Errorf("unknown transaction type %q", s)
}

func (t TransactionType) String() string {
	switch t {
	case Debit:
		return "debit"
	case Credit:
		return "credit"
	case Lend:
		return "lend"
	}
	return fmt.Sprintf("TransactionType(%d)", int(t))
}

// Sign is the symbol shown in front of an amount of this type.
func (t TransactionType) Sign() string {
	switch t {
	case Debit:
		return "−"
	case Credit:
		return "+"
	case Lend:
		return "→"
	}
	return "?"
}

// Valid reports whether t is one of the known types.
func (t TransactionType) Valid() bool {
	return t == Debit || t == Credit || t == Lend
}
