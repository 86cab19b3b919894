package models

// GroupExpense is a ledger entry recorded inside a group.
// Entries are immutable; they can only be deleted, and only by the payer.
type GroupExpense struct {
	// ID is the unique identifier for the entry (UUID format).
	ID string

	// GroupID is the group this entry belongs to.
	GroupID string

	// Amount is the full amount fronted by the payer. Always positive.
	Amount float64

	// PaidBy is the uid of the payer. PaidByName and PaidByEmail are
	// display copies taken at write time.
	PaidBy      string
	PaidByName  string
	PaidByEmail string

	// Participants are the uids sharing the entry.
	Participants []string

	// SplitAmount is Amount divided evenly over Participants for debit
	// entries and 0 for every other type.
	SplitAmount float64

	// Note is an optional free-text description.
	Note string

	// TransactionType is the entry kind. Rows written before the field
	// existed resolve to debit.
	TransactionType TransactionType

	// CreatedAt is the Unix timestamp when the entry was recorded.
	CreatedAt int64
}

// PersonalExpense is a ledger entry owned by a single user.
// It never takes part in group balance computation.
type PersonalExpense struct {
	// ID is the unique identifier for the entry (UUID format).
	ID string

	// UserID is the owner of the entry.
	UserID string

	// Amount is always positive; the direction comes from TransactionType.
	Amount float64

	// Label is an optional user-defined category.
	Label string

	// Note is an optional free-text description.
	Note string

	// TransactionType is the entry kind, debit by default.
	TransactionType TransactionType

	// GroupID and GroupExpenseID are set when this entry mirrors a group
	// expense paid by the owner.
	GroupID        string
	GroupExpenseID string

	// CreatedAt is the Unix timestamp when the entry was recorded.
	CreatedAt int64
}
