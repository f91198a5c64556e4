package store

import (
	"path/filepath"
	"slices"
	"testing"
)

func TestLedger_PutGetCount(t *testing.T) {
	datadir := t.TempDir()
	l, err := Open(datadir, "sepolia")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = l.Close() })
	if got, want := l.ChainDir(), filepath.Join(datadir, "chains", "sepolia"); got != want {
		t.Fatalf("ChainDir=%q want %q", got, want)
	}

	if _, ok, err := l.Get(7); err != nil || ok {
		t.Fatalf("Get on empty ledger: ok=%v err=%v", ok, err)
	}

	valid := Verdict{BlockHash: "0xbfa1", Era: "pectra", Valid: true, CheckedAt: 1700000000}
	bad := Verdict{BlockHash: "0x01", Era: "dencun", Code: "HASH_ERR_MISMATCH", CheckedAt: 1700000001}
	if err := l.Put(7_839_744, valid); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := l.Put(5_187_023, bad); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := l.Get(7_839_744)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got != valid {
		t.Fatalf("got %+v want %+v", got, valid)
	}

	n, err := l.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Fatalf("Count=%d want 2", n)
	}

	invalid, err := l.Invalid()
	if err != nil {
		t.Fatalf("Invalid: %v", err)
	}
	if !slices.Equal(invalid, []uint64{5_187_023}) {
		t.Fatalf("Invalid=%v", invalid)
	}

	// Overwrite keeps one entry per block number.
	if err := l.Put(5_187_023, valid); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if n, _ := l.Count(); n != 2 {
		t.Fatalf("Count after overwrite=%d want 2", n)
	}
	if invalid, _ := l.Invalid(); len(invalid) != 0 {
		t.Fatalf("Invalid after overwrite=%v", invalid)
	}
}

func TestLedger_Reopen(t *testing.T) {
	datadir := t.TempDir()
	l, err := Open(datadir, "mainnet")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	want := Verdict{BlockHash: "0xaa", Era: "genesis", Valid: true}
	if err := l.Put(1, want); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	l, err = Open(datadir, "mainnet")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() { _ = l.Close() })
	got, ok, err := l.Get(1)
	if err != nil || !ok || got != want {
		t.Fatalf("Get after reopen: got=%+v ok=%v err=%v", got, ok, err)
	}
}

func TestLedger_OpenRequiresArgs(t *testing.T) {
	if _, err := Open("", "mainnet"); err == nil {
		t.Fatalf("expected error for empty datadir")
	}
	if _, err := Open(t.TempDir(), ""); err == nil {
		t.Fatalf("expected error for empty chain")
	}
	for _, chain := range []string{"..", ".", "main/net", `a\b`} {
		if _, err := Open(t.TempDir(), chain); err == nil {
			t.Fatalf("expected error for chain %q", chain)
		}
	}
	var l *Ledger
	if err := l.Close(); err != nil {
		t.Fatalf("nil Close: %v", err)
	}
}
