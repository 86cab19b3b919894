package models

import "testing"

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		in      string
		want    TransactionType
		wantErr bool
	}{
		{"", Debit, false},
		{"debit", Debit, false},
		{"credit", Credit, false},
		{"lend", Lend, false},
		{"refund", Debit, true},
		{"DEBIT", Debit, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTransactionType(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTransactionType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseTransactionType(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTransactionTypeFormatting(t *testing.T) {
	for _, tt := range TransactionTypes {
		if !tt.Valid() {
			t.Errorf("%v should be valid", tt)
		}
		if tt.Sign() == "?" {
			t.Errorf("%v has no sign", tt)
		}
		parsed, err := ParseTransactionType(tt.String())
		if err != nil || parsed != tt {
			t.Errorf("String() of %v does not parse back: %v, %v", tt, parsed, err)
		}
	}

	if TransactionType(7).Valid() {
		t.Error("out-of-range type should be invalid")
	}
}

func TestGroupHelpers(t *testing.T) {
	g := &Group{
		AdminID: "a",
		Members: []Member{{UID: "a", Name: "Asha"}, {UID: "b", Name: "Bilal"}},
	}
	g.MemberIDs = MemberIDsOf(g.Members)

	if !g.HasMember("b") || g.HasMember("c") {
		t.Errorf("HasMember wrong for %v", g.MemberIDs)
	}
	if !g.IsAdmin("a") || g.IsAdmin("b") || g.IsAdmin("") {
		t.Error("IsAdmin wrong")
	}
	if m, ok := g.Member("b"); !ok || m.Name != "Bilal" {
		t.Errorf("Member(b) = %v, %v", m, ok)
	}
}
