package eras

import (
	"bytes"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/require"

	"github.com/NethermindEth/eth-rlp-verify/fixtures"
	"github.com/NethermindEth/eth-rlp-verify/types"
)

func TestEncodeMatchesGethHeaderHash(t *testing.T) {
	for _, era := range AllEras() {
		t.Run(era.String(), func(t *testing.T) {
			h := restrict(fixtures.Synthetic(1_000_000), era)
			v, err := SchemaFor(era).FromCanonical(&h)
			require.NoError(t, err)

			want := gethHeader(t, h, era)
			wantRLP, err := rlp.EncodeToBytes(want)
			require.NoError(t, err)
			require.Equal(t, wantRLP, v.Encode())
			require.Equal(t, want.Hash(), v.Hash())
		})
	}
}

func TestEncodeRealHeaders(t *testing.T) {
	t.Run("pectra_sepolia", func(t *testing.T) {
		h := fixtures.PectraSepolia()
		v, err := SchemaFor(Pectra).FromCanonical(&h)
		require.NoError(t, err)
		require.Equal(t, h.BlockHash, v.Hash().Hex())
	})
	t.Run("cancun_mainnet", func(t *testing.T) {
		h := fixtures.CancunMainnet()
		v, err := SchemaFor(Dencun).FromCanonical(&h)
		require.NoError(t, err)
		require.Equal(t, gethHeader(t, h, Dencun).Hash(), v.Hash())
	})
}

func TestCanonicalRoundTrip(t *testing.T) {
	for _, era := range AllEras() {
		t.Run(era.String(), func(t *testing.T) {
			s := SchemaFor(era)
			h := restrict(fixtures.Synthetic(15_000_000), era)

			v, err := s.FromCanonical(&h)
			require.NoError(t, err)
			back, err := v.IntoCanonical()
			require.NoError(t, err)

			for _, f := range s.Fields {
				want, wok := bindings[f.ID].get(&h)
				got, gok := bindings[f.ID].get(&back)
				require.Equal(t, wok, gok, f.Name)
				require.Equal(t, want, got, f.Name)
			}
			require.Equal(t, v.Hash().Hex(), back.BlockHash)
			require.Nil(t, back.TotalDifficulty)
		})
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	for _, era := range AllEras() {
		t.Run(era.String(), func(t *testing.T) {
			s := SchemaFor(era)
			h := restrict(fixtures.Synthetic(42), era)
			v, err := s.FromCanonical(&h)
			require.NoError(t, err)

			got, err := s.Decode(v.Encode())
			require.NoError(t, err)
			require.True(t, v.Equal(got))
			require.Equal(t, era, got.Era())
		})
	}
}

func TestEncodeDeterministic(t *testing.T) {
	h := fixtures.PectraSepolia()
	a, err := SchemaFor(Pectra).FromCanonical(&h)
	require.NoError(t, err)
	b, err := SchemaFor(Pectra).FromCanonical(&h)
	require.NoError(t, err)
	require.Equal(t, a.Encode(), b.Encode())
	require.Equal(t, a.Encode(), a.Encode())
}

func TestFromCanonicalDefaults(t *testing.T) {
	h := types.BlockHeader{Number: 7, GasLimit: 8, GasUsed: 9, Nonce: "0x00"}
	v, err := SchemaFor(Pectra).FromCanonical(&h)
	require.NoError(t, err)

	for i, f := range v.Schema().Fields {
		switch f.ID {
		case FieldNumber:
			require.Equal(t, []byte{7}, v.values[i])
		case FieldGasLimit:
			require.Equal(t, []byte{8}, v.values[i])
		case FieldGasUsed:
			require.Equal(t, []byte{9}, v.values[i])
		default:
			if f.Kind.fixed() {
				require.Equal(t, make([]byte, f.Kind.Width()), v.values[i], f.Name)
			} else {
				require.Empty(t, v.values[i], f.Name)
			}
		}
	}

	nonce, ok := v.Value(FieldNonce)
	require.True(t, ok)
	require.Len(t, nonce, 8)
	_, ok = mustVariant(t, Genesis, h).Value(FieldRequestsHash)
	require.False(t, ok)
}

func TestFromCanonicalOmmersFallback(t *testing.T) {
	h := fixtures.Synthetic(1)
	h.OmmersHash = nil
	h.Sha3Uncles = types.Str("0x" + string(bytes.Repeat([]byte("ab"), 32)))
	v := mustVariant(t, London, h)
	got, ok := v.Value(FieldOmmersHash)
	require.True(t, ok)
	require.Equal(t, bytes.Repeat([]byte{0xab}, 32), got)
}

func TestFromCanonicalErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(h *types.BlockHeader)
		code   ErrorCode
	}{
		{
			name:   "missing_nonce",
			mutate: func(h *types.BlockHeader) { h.Nonce = "" },
			code:   FIELD_ERR_MISSING,
		},
		{
			name:   "bad_parent_hash",
			mutate: func(h *types.BlockHeader) { h.ParentHash = types.Str("0xnothex") },
			code:   FIELD_ERR_MALFORMED,
		},
		{
			name:   "oversized_miner",
			mutate: func(h *types.BlockHeader) { h.Miner = types.Str("0x" + string(bytes.Repeat([]byte("01"), 21))) },
			code:   FIELD_ERR_MALFORMED,
		},
		{
			name:   "oversized_nonce",
			mutate: func(h *types.BlockHeader) { h.Nonce = "0x010203040506070809" },
			code:   FIELD_ERR_MALFORMED,
		},
		{
			name:   "bad_extra_data",
			mutate: func(h *types.BlockHeader) { h.ExtraData = types.Str("0x0g") },
			code:   FIELD_ERR_MALFORMED,
		},
		{
			name:   "bad_requests_hash",
			mutate: func(h *types.BlockHeader) { h.RequestHash = types.Str("zz") },
			code:   FIELD_ERR_MALFORMED,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := fixtures.Synthetic(1)
			tt.mutate(&h)
			_, err := SchemaFor(Pectra).FromCanonical(&h)
			require.Error(t, err)
			code, ok := CodeOf(err)
			require.True(t, ok)
			require.Equal(t, tt.code, code)
		})
	}

	_, err := SchemaFor(Genesis).FromCanonical(nil)
	require.ErrorIs(t, err, ErrMissingField)
}

func TestFieldsOutsideEraAreIgnored(t *testing.T) {
	h := fixtures.Synthetic(1)
	h.RequestHash = types.Str("0xnothex")
	_, err := SchemaFor(Dencun).FromCanonical(&h)
	require.NoError(t, err)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	h := fixtures.Synthetic(1)
	london := mustVariant(t, London, restrict(h, London))
	good := london.Encode()

	withValue := func(id FieldID, b []byte) []byte {
		v := mustVariant(t, London, restrict(h, London))
		for i, f := range v.schema.Fields {
			if f.ID == id {
				v.values[i] = b
			}
		}
		return v.Encode()
	}
	withNestedList := func() []byte {
		items := make([]interface{}, 0, len(london.values))
		for i, b := range london.values {
			if i == 0 {
				items = append(items, []interface{}{b})
				continue
			}
			items = append(items, b)
		}
		out, err := rlp.EncodeToBytes(items)
		require.NoError(t, err)
		return out
	}

	tests := []struct {
		name string
		in   []byte
	}{
		{name: "empty", in: nil},
		{name: "string_not_list", in: []byte{0x83, 1, 2, 3}},
		{name: "truncated", in: good[:len(good)-1]},
		{name: "trailing_bytes", in: append(append([]byte{}, good...), 0x80)},
		{name: "too_few_items", in: mustVariant(t, Genesis, h).Encode()},
		{name: "too_many_items", in: mustVariant(t, Shapella, h).Encode()},
		{name: "short_hash", in: withValue(FieldParentHash, make([]byte, 31))},
		{name: "long_address", in: withValue(FieldBeneficiary, make([]byte, 21))},
		{name: "short_bloom", in: withValue(FieldLogsBloom, make([]byte, 255))},
		{name: "short_nonce", in: withValue(FieldNonce, make([]byte, 7))},
		{name: "quantity_leading_zero", in: withValue(FieldDifficulty, []byte{0, 1})},
		{name: "quantity_too_wide", in: withValue(FieldBaseFeePerGas, bytes.Repeat([]byte{1}, 33))},
		{name: "nested_list", in: withNestedList()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SchemaFor(London).Decode(tt.in)
			require.ErrorIs(t, err, ErrMalformedRLP)
		})
	}
}

func TestIntoCanonicalRejectsWideNumber(t *testing.T) {
	v := mustVariant(t, Genesis, fixtures.Synthetic(1))
	for i, f := range v.schema.Fields {
		if f.ID == FieldNumber {
			v.values[i] = bytes.Repeat([]byte{1}, 9)
		}
	}
	decoded, err := SchemaFor(Genesis).Decode(v.Encode())
	require.NoError(t, err)
	_, err = decoded.IntoCanonical()
	require.ErrorIs(t, err, ErrMalformedField)
}

func TestVariantEqual(t *testing.T) {
	h := fixtures.Synthetic(1)
	a := mustVariant(t, London, h)
	b := mustVariant(t, Paris, h)
	require.False(t, a.Equal(b))
	require.True(t, a.Equal(mustVariant(t, London, h)))

	h.GasUsed++
	require.False(t, a.Equal(mustVariant(t, London, h)))

	var nilVariant *Variant
	require.False(t, a.Equal(nilVariant))
}

func mustVariant(t *testing.T, era Era, h types.BlockHeader) *Variant {
	t.Helper()
	v, err := SchemaFor(era).FromCanonical(&h)
	require.NoError(t, err)
	return v
}
