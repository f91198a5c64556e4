// Package verifier recomputes Ethereum block header hashes under the header
// layout of the block's era and checks parent-hash linkage over sequences.
package verifier

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/NethermindEth/eth-rlp-verify/codec"
	"github.com/NethermindEth/eth-rlp-verify/crypto"
	"github.com/NethermindEth/eth-rlp-verify/eras"
	"github.com/NethermindEth/eth-rlp-verify/types"
)

type Option func(*Verifier)

// WithLogger sets the logger failures are reported to.
func WithLogger(log *zap.Logger) Option {
	return func(v *Verifier) { v.log = log }
}

// WithRegisterer registers the verifier's counters with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(v *Verifier) { v.reg = reg }
}

// WithTable replaces the built-in era table.
func WithTable(t *eras.Table) Option {
	return func(v *Verifier) { v.table = t }
}

// WithHashProvider replaces the Keccak-256 implementation.
func WithHashProvider(p crypto.HashProvider) Option {
	return func(v *Verifier) { v.hasher = p }
}

// Verifier is immutable after construction and safe for concurrent use.
type Verifier struct {
	log     *zap.Logger
	reg     prometheus.Registerer
	table   *eras.Table
	hasher  crypto.HashProvider
	metrics *metrics
}

func NewVerifier(opts ...Option) (*Verifier, error) {
	v := &Verifier{
		log:    zap.NewNop(),
		table:  eras.DefaultTable(),
		hasher: crypto.Default,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.log == nil {
		v.log = zap.NewNop()
	}
	if v.table == nil {
		return nil, fmt.Errorf("verifier: nil era table")
	}
	if v.hasher == nil {
		return nil, fmt.Errorf("verifier: nil hash provider")
	}
	if v.reg != nil {
		m, err := newMetrics(v.reg)
		if err != nil {
			return nil, fmt.Errorf("verifier: metrics: %w", err)
		}
		v.metrics = m
	}
	return v, nil
}

// Resolve returns the era descriptor of block number on chainID, or an
// ERA_ERR_UNSUPPORTED error.
func (v *Verifier) Resolve(number, chainID uint64) (eras.Descriptor, error) {
	d, ok := v.table.Resolve(number, chainID)
	if !ok {
		return eras.Descriptor{}, eras.NewError(eras.ERA_ERR_UNSUPPORTED,
			fmt.Sprintf("block %d on chain %s", number, eras.ChainName(chainID)))
	}
	return d, nil
}

// HeaderHash recomputes the block hash of h as a block number of chainID.
func (v *Verifier) HeaderHash(number uint64, h *types.BlockHeader, chainID uint64) (common.Hash, error) {
	d, err := v.Resolve(number, chainID)
	if err != nil {
		return common.Hash{}, err
	}
	return v.hash(d, h)
}

func (v *Verifier) hash(d eras.Descriptor, h *types.BlockHeader) (common.Hash, error) {
	variant, err := d.Schema.FromCanonical(h)
	if err != nil {
		return common.Hash{}, err
	}
	return variant.HashWith(v.hasher), nil
}

// Check returns nil when the recomputed hash of h equals expectedHashHex, and
// the reason otherwise. The expected hash must decode to exactly 32 bytes.
func (v *Verifier) Check(number uint64, h *types.BlockHeader, expectedHashHex string, chainID uint64) error {
	_, err := v.CheckHash(number, h, expectedHashHex, chainID)
	return err
}

// CheckHash is Check that also returns the recomputed hash. The hash is zero
// when the header could not be laid out.
func (v *Verifier) CheckHash(number uint64, h *types.BlockHeader, expectedHashHex string, chainID uint64) (common.Hash, error) {
	era := eraUnknown
	var got common.Hash
	err := func() error {
		d, err := v.Resolve(number, chainID)
		if err != nil {
			return err
		}
		era = d.Era.String()
		got, err = v.hash(d, h)
		if err != nil {
			return err
		}
		want, err := codec.Bytes(expectedHashHex)
		if err != nil {
			return fmt.Errorf("expected hash: %w", eras.NewError(eras.FIELD_ERR_MALFORMED, err.Error()))
		}
		if len(want) != common.HashLength {
			return fmt.Errorf("expected hash: %w", eras.NewError(eras.FIELD_ERR_MALFORMED,
				fmt.Sprintf("%d bytes, want %d", len(want), common.HashLength)))
		}
		if !bytes.Equal(got[:], want) {
			return eras.NewError(eras.HASH_ERR_MISMATCH,
				fmt.Sprintf("computed %s, expected %s", got.Hex(), expectedHashHex))
		}
		return nil
	}()
	v.metrics.observeHeader(era, err)
	if err != nil {
		v.log.Debug("header verification failed",
			zap.Uint64("number", number),
			zap.String("chain", eras.ChainName(chainID)),
			zap.String("era", era),
			zap.Error(err),
		)
	}
	return got, err
}

// Verify is Check collapsed to a verdict.
func (v *Verifier) Verify(number uint64, h *types.BlockHeader, expectedHashHex string, chainID uint64) bool {
	return v.Check(number, h, expectedHashHex, chainID) == nil
}

// Encode serializes h with the layout of block number's era.
func (v *Verifier) Encode(number uint64, h *types.BlockHeader, chainID uint64) ([]byte, error) {
	d, err := v.Resolve(number, chainID)
	if err != nil {
		return nil, err
	}
	return d.Encode(h)
}

// Decode parses data as an encoded header of block number's era. The block
// hash of the result is recomputed from data with the verifier's hasher.
func (v *Verifier) Decode(number uint64, data []byte, chainID uint64) (types.BlockHeader, error) {
	d, err := v.Resolve(number, chainID)
	if err != nil {
		return types.BlockHeader{}, err
	}
	variant, err := d.Schema.Decode(data)
	if err != nil {
		return types.BlockHeader{}, err
	}
	return variant.IntoCanonicalWith(v.hasher)
}
