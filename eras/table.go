package eras

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/NethermindEth/eth-rlp-verify/types"
)

const (
	CHAIN_ID_MAINNET uint64 = 1
	CHAIN_ID_SEPOLIA uint64 = 11155111
)

// First blocks of each layout change on mainnet.
const (
	MAINNET_LONDON_START   uint64 = 12_965_000
	MAINNET_PARIS_START    uint64 = 15_537_394
	MAINNET_SHAPELLA_START uint64 = 17_034_870
	MAINNET_DENCUN_START   uint64 = 19_426_587
	MAINNET_PECTRA_START   uint64 = 22_431_084
)

// First blocks of each layout change on Sepolia. Sepolia launched with London
// active from genesis.
const (
	SEPOLIA_PARIS_START    uint64 = 1_735_371
	SEPOLIA_SHAPELLA_START uint64 = 2_990_908
	SEPOLIA_DENCUN_START   uint64 = 5_187_023
	SEPOLIA_PECTRA_START   uint64 = 7_836_331
)

// ChainName returns "mainnet" or "sepolia" for known ids and the decimal id
// otherwise.
func ChainName(chainID uint64) string {
	switch chainID {
	case CHAIN_ID_MAINNET:
		return "mainnet"
	case CHAIN_ID_SEPOLIA:
		return "sepolia"
	default:
		return strconv.FormatUint(chainID, 10)
	}
}

// ParseChain accepts a chain name or a decimal chain id.
func ParseChain(s string) (uint64, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mainnet":
		return CHAIN_ID_MAINNET, nil
	case "sepolia":
		return CHAIN_ID_SEPOLIA, nil
	}
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unknown chain %q", s)
	}
	return id, nil
}

// Entry maps an inclusive block range of one chain to an era.
type Entry struct {
	ChainID uint64
	First   uint64
	Last    uint64
	Era     Era
}

func (e Entry) contains(n uint64) bool {
	return n >= e.First && n <= e.Last
}

// Descriptor is a resolved era: the table entry plus the schema that encodes,
// decodes and hashes headers of that era.
type Descriptor struct {
	Entry
	Schema *Schema
}

// Encode converts h with the era's schema and serializes it.
func (d Descriptor) Encode(h *types.BlockHeader) ([]byte, error) {
	v, err := d.Schema.FromCanonical(h)
	if err != nil {
		return nil, err
	}
	return v.Encode(), nil
}

// Decode parses an encoded header of the era back into canonical form.
func (d Descriptor) Decode(b []byte) (types.BlockHeader, error) {
	v, err := d.Schema.Decode(b)
	if err != nil {
		return types.BlockHeader{}, err
	}
	return v.IntoCanonical()
}

// Table is an immutable per-chain list of era ranges.
type Table struct {
	byChain map[uint64][]Entry
}

// NewTable validates entries and builds a table. Ranges of one chain must not
// overlap; gaps are allowed and resolve to unsupported.
func NewTable(entries []Entry) (*Table, error) {
	t := &Table{byChain: make(map[uint64][]Entry)}
	for _, e := range entries {
		if e.First > e.Last {
			return nil, fmt.Errorf("chain %d: era %s: first %d > last %d", e.ChainID, e.Era, e.First, e.Last)
		}
		if SchemaFor(e.Era) == nil {
			return nil, fmt.Errorf("chain %d: unknown era %d", e.ChainID, e.Era)
		}
		for _, o := range t.byChain[e.ChainID] {
			if e.First <= o.Last && o.First <= e.Last {
				return nil, fmt.Errorf("chain %d: era %s [%d,%d] overlaps %s [%d,%d]",
					e.ChainID, e.Era, e.First, e.Last, o.Era, o.First, o.Last)
			}
		}
		t.byChain[e.ChainID] = append(t.byChain[e.ChainID], e)
	}
	return t, nil
}

// Resolve finds the era of block number on chainID. Entries are tested in
// table order; at most one can match.
func (t *Table) Resolve(number uint64, chainID uint64) (Descriptor, bool) {
	for _, e := range t.byChain[chainID] {
		if e.contains(number) {
			return Descriptor{Entry: e, Schema: SchemaFor(e.Era)}, true
		}
	}
	return Descriptor{}, false
}

// Entries returns chainID's ranges sorted by first block.
func (t *Table) Entries(chainID uint64) []Entry {
	out := append([]Entry(nil), t.byChain[chainID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].First < out[j].First })
	return out
}

// Chains returns the chain ids present in the table, ascending.
func (t *Table) Chains() []uint64 {
	out := make([]uint64, 0, len(t.byChain))
	for id := range t.byChain {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DefaultEntries is the built-in era table for mainnet and Sepolia.
func DefaultEntries() []Entry {
	return []Entry{
		{ChainID: CHAIN_ID_MAINNET, First: MAINNET_LONDON_START, Last: MAINNET_PARIS_START - 1, Era: London},
		{ChainID: CHAIN_ID_MAINNET, First: MAINNET_PARIS_START, Last: MAINNET_SHAPELLA_START - 1, Era: Paris},
		{ChainID: CHAIN_ID_MAINNET, First: MAINNET_SHAPELLA_START, Last: MAINNET_DENCUN_START - 1, Era: Shapella},
		{ChainID: CHAIN_ID_MAINNET, First: MAINNET_DENCUN_START, Last: MAINNET_PECTRA_START - 1, Era: Dencun},
		{ChainID: CHAIN_ID_MAINNET, First: MAINNET_PECTRA_START, Last: math.MaxUint64, Era: Pectra},
		{ChainID: CHAIN_ID_MAINNET, First: 0, Last: MAINNET_LONDON_START - 1, Era: Genesis},

		{ChainID: CHAIN_ID_SEPOLIA, First: 0, Last: SEPOLIA_PARIS_START - 1, Era: London},
		{ChainID: CHAIN_ID_SEPOLIA, First: SEPOLIA_PARIS_START, Last: SEPOLIA_SHAPELLA_START - 1, Era: Paris},
		{ChainID: CHAIN_ID_SEPOLIA, First: SEPOLIA_SHAPELLA_START, Last: SEPOLIA_DENCUN_START - 1, Era: Shapella},
		{ChainID: CHAIN_ID_SEPOLIA, First: SEPOLIA_DENCUN_START, Last: SEPOLIA_PECTRA_START - 1, Era: Dencun},
		{ChainID: CHAIN_ID_SEPOLIA, First: SEPOLIA_PECTRA_START, Last: math.MaxUint64, Era: Pectra},
	}
}

var defaultTable = mustTable(DefaultEntries())

func mustTable(entries []Entry) *Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultTable returns the built-in table.
func DefaultTable() *Table { return defaultTable }

// Resolve looks block number up in the built-in table.
func Resolve(number uint64, chainID uint64) (Descriptor, bool) {
	return defaultTable.Resolve(number, chainID)
}
