package domain

import "testing"

func TestTxnTypeFromString(t *testing.T) {
	tests := []struct {
		in   string
		want TxnType
	}{
		{"Credit", TxnCredit},
		{"credit", TxnCredit},
		{"  CR ", TxnCredit},
		{"in", TxnCredit},
		{"Debit", TxnDebit},
		{"withdrawal", TxnDebit},
		{"", TxnDebit},
	}

	for _, tt := range tests {
		if got := TxnTypeFromString(tt.in); got != tt.want {
			t.Errorf("TxnTypeFromString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTxnTypeString(t *testing.T) {
	if TxnCredit.String() != "Credit" || TxnDebit.String() != "Debit" {
		t.Error("enum labels changed")
	}
	if TxnUnknown.String() != "" {
		t.Errorf("unknown type should render empty, got %q", TxnUnknown.String())
	}
}

func TestDatasetClone(t *testing.T) {
	ds := Dataset{{Description: "a"}, {Description: "b"}}
	cp := ds.Clone()
	cp[0].Description = "changed"

	if ds[0].Description != "a" {
		t.Error("Clone shares backing storage with the original")
	}
	if len(cp) != len(ds) {
		t.Errorf("clone length = %d, want %d", len(cp), len(ds))
	}
	if Dataset(nil).Clone() != nil {
		t.Error("nil dataset should clone to nil")
	}
}
