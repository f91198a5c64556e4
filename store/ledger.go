// Package store records verification verdicts per block number in bbolt.
package store

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/rlp"
	bolt "go.etcd.io/bbolt"
)

var bucketVerdicts = []byte("verdicts_by_number")

const ledgerFile = "ledger.db"

// ledgerDir creates and returns datadir/chains/<chain>. The chain name must
// be a single path element so that ledgers of different chains never share a
// file.
func ledgerDir(datadir string, chain string) (string, error) {
	if chain == "." || chain == ".." || strings.ContainsAny(chain, `/\`) {
		return "", fmt.Errorf("invalid chain name %q", chain)
	}
	dir := filepath.Join(datadir, "chains", chain)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// Verdict is the outcome of checking one header. Code is empty for valid
// headers.
type Verdict struct {
	BlockHash string
	Era       string
	Valid     bool
	Code      string
	CheckedAt uint64 // unix seconds
}

type Ledger struct {
	chainDir string
	db       *bolt.DB
}

// Open opens or creates the ledger of chain under datadir.
func Open(datadir string, chain string) (*Ledger, error) {
	if datadir == "" {
		return nil, fmt.Errorf("datadir required")
	}
	if chain == "" {
		return nil, fmt.Errorf("chain required")
	}

	chainDir, err := ledgerDir(datadir, chain)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(chainDir, ledgerFile)
	bdb, err := bolt.Open(path, 0o600, &bolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("open bbolt: %w", err)
	}

	if err := bdb.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketVerdicts); err != nil {
			return fmt.Errorf("create bucket %s: %w", string(bucketVerdicts), err)
		}
		return nil
	}); err != nil {
		_ = bdb.Close()
		return nil, err
	}
	return &Ledger{chainDir: chainDir, db: bdb}, nil
}

func (l *Ledger) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}

func (l *Ledger) ChainDir() string { return l.chainDir }

func numberKey(number uint64) []byte {
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], number)
	return k[:]
}

// Put records v for block number, replacing any earlier verdict.
func (l *Ledger) Put(number uint64, v Verdict) error {
	val, err := rlp.EncodeToBytes(&v)
	if err != nil {
		return fmt.Errorf("encode verdict: %w", err)
	}
	return l.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketVerdicts).Put(numberKey(number), val)
	})
}

func (l *Ledger) Get(number uint64) (Verdict, bool, error) {
	var out Verdict
	var ok bool
	err := l.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketVerdicts).Get(numberKey(number))
		if v == nil {
			return nil
		}
		if err := rlp.DecodeBytes(v, &out); err != nil {
			return fmt.Errorf("decode verdict %d: %w", number, err)
		}
		ok = true
		return nil
	})
	return out, ok, err
}

// Count returns the number of recorded verdicts.
func (l *Ledger) Count() (int, error) {
	var n int
	err := l.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketVerdicts).Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			n++
		}
		return nil
	})
	return n, err
}

// Invalid returns the block numbers whose latest verdict is invalid, ascending.
func (l *Ledger) Invalid() ([]uint64, error) {
	var out []uint64
	err := l.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketVerdicts).ForEach(func(k, v []byte) error {
			var verdict Verdict
			if err := rlp.DecodeBytes(v, &verdict); err != nil {
				return fmt.Errorf("decode verdict: %w", err)
			}
			if !verdict.Valid {
				out = append(out, binary.BigEndian.Uint64(k))
			}
			return nil
		})
	})
	return out, err
}
