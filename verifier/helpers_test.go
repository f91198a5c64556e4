package verifier

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	"github.com/NethermindEth/eth-rlp-verify/codec"
	"github.com/NethermindEth/eth-rlp-verify/eras"
	"github.com/NethermindEth/eth-rlp-verify/fixtures"
	"github.com/NethermindEth/eth-rlp-verify/types"
)

// cancunMainnet returns mainnet block 21,360,407 with its block hash computed
// by go-ethereum.
func cancunMainnet(t *testing.T) types.BlockHeader {
	t.Helper()
	h := fixtures.CancunMainnet()

	hash := func(s *string) common.Hash {
		v, err := codec.Hash(*s)
		require.NoError(t, err)
		return v
	}
	quantity := func(s *string) *big.Int {
		q, err := codec.Quantity(*s)
		require.NoError(t, err)
		return q.ToBig()
	}
	miner, err := codec.Address(*h.Miner)
	require.NoError(t, err)
	bloom, err := codec.FixedBytes(*h.LogsBloom, codec.BloomLength)
	require.NoError(t, err)
	extra, err := codec.Bytes(*h.ExtraData)
	require.NoError(t, err)

	withdrawals := hash(h.WithdrawalsRoot)
	beacon := hash(h.ParentBeaconBlockRoot)
	blobGasUsed := quantity(h.BlobGasUsed).Uint64()
	excessBlobGas := quantity(h.ExcessBlobGas).Uint64()

	g := &gethtypes.Header{
		ParentHash:       hash(h.ParentHash),
		UncleHash:        hash(h.OmmersHash),
		Coinbase:         miner,
		Root:             hash(h.StateRoot),
		TxHash:           hash(h.TransactionRoot),
		ReceiptHash:      hash(h.ReceiptsRoot),
		Bloom:            gethtypes.BytesToBloom(bloom),
		Difficulty:       quantity(h.Difficulty),
		Number:           new(big.Int).SetUint64(h.Number),
		GasLimit:         h.GasLimit,
		GasUsed:          h.GasUsed,
		Time:             quantity(h.Timestamp).Uint64(),
		Extra:            extra,
		MixDigest:        hash(h.MixHash),
		BaseFee:          quantity(h.BaseFeePerGas),
		WithdrawalsHash:  &withdrawals,
		BlobGasUsed:      &blobGasUsed,
		ExcessBlobGas:    &excessBlobGas,
		ParentBeaconRoot: &beacon,
	}
	h.BlockHash = g.Hash().Hex()
	return h
}

// linkedChain returns n consecutive Pectra Sepolia headers whose hashes are
// self-consistent and whose parent hashes link them.
func linkedChain(t *testing.T, v *Verifier, n int) []types.BlockHeader {
	t.Helper()
	out := make([]types.BlockHeader, n)
	parent := "0x" + common.Bytes2Hex(make([]byte, common.HashLength))
	for i := range out {
		h := fixtures.Synthetic(eras.SEPOLIA_PECTRA_START + uint64(i))
		h.ParentHash = types.Str(parent)
		got, err := v.HeaderHash(h.Number, &h, eras.CHAIN_ID_SEPOLIA)
		require.NoError(t, err)
		h.BlockHash = got.Hex()
		parent = h.BlockHash
		out[i] = h
	}
	return out
}

func newTestVerifier(t *testing.T, opts ...Option) *Verifier {
	t.Helper()
	v, err := NewVerifier(opts...)
	require.NoError(t, err)
	return v
}
