package eras

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	"github.com/NethermindEth/eth-rlp-verify/codec"
	"github.com/NethermindEth/eth-rlp-verify/types"
)

// gethHeader builds the go-ethereum header equivalent to h under era. Its Hash
// is an independent oracle for our encoding.
func gethHeader(t *testing.T, h types.BlockHeader, era Era) *gethtypes.Header {
	t.Helper()

	hash := func(s *string) common.Hash {
		if s == nil {
			return common.Hash{}
		}
		v, err := codec.Hash(*s)
		require.NoError(t, err)
		return v
	}
	quantity := func(s *string) *big.Int {
		if s == nil {
			return new(big.Int)
		}
		q, err := codec.Quantity(*s)
		require.NoError(t, err)
		return q.ToBig()
	}
	ommers := h.OmmersHash
	if ommers == nil {
		ommers = h.Sha3Uncles
	}

	out := &gethtypes.Header{
		ParentHash:  hash(h.ParentHash),
		UncleHash:   hash(ommers),
		Root:        hash(h.StateRoot),
		TxHash:      hash(h.TransactionRoot),
		ReceiptHash: hash(h.ReceiptsRoot),
		Difficulty:  quantity(h.Difficulty),
		Number:      new(big.Int).SetUint64(h.Number),
		GasLimit:    h.GasLimit,
		GasUsed:     h.GasUsed,
		Time:        quantity(h.Timestamp).Uint64(),
		MixDigest:   hash(h.MixHash),
	}
	if h.Miner != nil {
		a, err := codec.Address(*h.Miner)
		require.NoError(t, err)
		out.Coinbase = a
	}
	if h.LogsBloom != nil {
		b, err := codec.FixedBytes(*h.LogsBloom, codec.BloomLength)
		require.NoError(t, err)
		out.Bloom = gethtypes.BytesToBloom(b)
	}
	if h.ExtraData != nil {
		b, err := codec.Bytes(*h.ExtraData)
		require.NoError(t, err)
		out.Extra = b
	} else {
		out.Extra = []byte{}
	}
	nonce, err := codec.FixedBytes(h.Nonce, codec.NonceLength)
	require.NoError(t, err)
	copy(out.Nonce[:], nonce)

	if era >= London {
		out.BaseFee = quantity(h.BaseFeePerGas)
	}
	if era >= Shapella {
		w := hash(h.WithdrawalsRoot)
		out.WithdrawalsHash = &w
	}
	if era >= Dencun {
		used := quantity(h.BlobGasUsed).Uint64()
		excess := quantity(h.ExcessBlobGas).Uint64()
		root := hash(h.ParentBeaconBlockRoot)
		out.BlobGasUsed = &used
		out.ExcessBlobGas = &excess
		out.ParentBeaconRoot = &root
	}
	if era >= Pectra {
		r := hash(h.RequestHash)
		out.RequestsHash = &r
	}
	return out
}

// restrict drops the optional fields era does not use, so that the header
// is exactly what a well-formed producer would send for that era.
func restrict(h types.BlockHeader, era Era) types.BlockHeader {
	if era < London {
		h.BaseFeePerGas = nil
	}
	if era < Shapella {
		h.WithdrawalsRoot = nil
	}
	if era < Dencun {
		h.BlobGasUsed = nil
		h.ExcessBlobGas = nil
		h.ParentBeaconBlockRoot = nil
	}
	if era < Pectra {
		h.RequestHash = nil
	}
	return h
}
