package eras

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSchemaFieldCounts(t *testing.T) {
	want := map[Era]int{
		Genesis:  15,
		London:   16,
		Paris:    16,
		Shapella: 17,
		Dencun:   20,
		Pectra:   21,
	}
	for era, n := range want {
		s := SchemaFor(era)
		require.NotNil(t, s, era.String())
		require.Equal(t, era, s.Era)
		require.Equal(t, n, s.Len(), era.String())
	}
	require.Nil(t, SchemaFor(Era(0)))
	require.Nil(t, SchemaFor(Era(99)))
}

func TestSchemaOrder(t *testing.T) {
	names := func(e Era) []string {
		var out []string
		for _, f := range SchemaFor(e).Fields {
			out = append(out, f.Name)
		}
		return out
	}
	base := []string{
		"parent_hash", "ommers_hash", "beneficiary", "state_root", "transactions_root",
		"receipts_root", "logs_bloom", "difficulty", "number", "gas_limit", "gas_used",
		"timestamp", "extra_data", "mix_hash", "nonce",
	}
	require.Equal(t, base, names(Genesis))
	require.Equal(t, append(base[:15:15], "base_fee_per_gas"), names(London))
	require.Equal(t, names(London), names(Paris))
	require.Equal(t, append(names(Paris), "withdrawals_root"), names(Shapella))
	require.Equal(t, append(names(Shapella), "blob_gas_used", "excess_blob_gas", "parent_beacon_block_root"), names(Dencun))
	require.Equal(t, append(names(Dencun), "requests_hash"), names(Pectra))
}

func TestSchemaRequiredSubset(t *testing.T) {
	for _, era := range AllEras() {
		var required []FieldID
		for _, f := range SchemaFor(era).Fields {
			if f.Policy == PolicyRequired {
				required = append(required, f.ID)
			}
			_, ok := bindings[f.ID]
			require.True(t, ok, "no canonical binding for %s", f.Name)
		}
		require.Equal(t, []FieldID{FieldNumber, FieldGasLimit, FieldGasUsed, FieldNonce}, required, era.String())
	}
}

func TestParseEra(t *testing.T) {
	for _, era := range AllEras() {
		got, ok := ParseEra(era.String())
		require.True(t, ok)
		require.Equal(t, era, got)
	}
	_, ok := ParseEra("frontier")
	require.False(t, ok)
	require.Equal(t, "unknown", Era(42).String())
}

func TestKindWidths(t *testing.T) {
	require.Equal(t, 32, KindHash.Width())
	require.Equal(t, 20, KindAddress.Width())
	require.Equal(t, 256, KindBloom.Width())
	require.Equal(t, 8, KindNonce.Width())
	require.Zero(t, KindQuantity.Width())
	require.Zero(t, KindBytes.Width())
	require.Equal(t, "bloom", KindBloom.String())
}
