package eras

import (
	"fmt"

	"github.com/NethermindEth/eth-rlp-verify/codec"
	"github.com/NethermindEth/eth-rlp-verify/types"
)

// Kind is the binary shape of a header field.
type Kind uint8

const (
	KindHash Kind = iota + 1
	KindAddress
	KindBloom
	KindNonce
	KindQuantity
	KindBytes
)

func (k Kind) String() string {
	switch k {
	case KindHash:
		return "hash"
	case KindAddress:
		return "address"
	case KindBloom:
		return "bloom"
	case KindNonce:
		return "nonce"
	case KindQuantity:
		return "quantity"
	case KindBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// Width is the exact encoded length of fixed kinds, and 0 for quantities and
// byte strings.
func (k Kind) Width() int {
	switch k {
	case KindHash:
		return codec.HashLength
	case KindAddress:
		return codec.AddressLength
	case KindBloom:
		return codec.BloomLength
	case KindNonce:
		return codec.NonceLength
	default:
		return 0
	}
}

func (k Kind) fixed() bool { return k.Width() > 0 }

// Policy says what an absent canonical field turns into.
type Policy uint8

const (
	// PolicyRequired fails conversion when the field is absent.
	PolicyRequired Policy = iota + 1
	// PolicyZero substitutes zero bytes of the field width, or integer zero.
	PolicyZero
	// PolicyEmpty substitutes an empty byte string.
	PolicyEmpty
)

// FieldID names a canonical header field that an era schema can bind to.
type FieldID uint8

const (
	FieldParentHash FieldID = iota + 1
	FieldOmmersHash
	FieldBeneficiary
	FieldStateRoot
	FieldTransactionsRoot
	FieldReceiptsRoot
	FieldLogsBloom
	FieldDifficulty
	FieldNumber
	FieldGasLimit
	FieldGasUsed
	FieldTimestamp
	FieldExtraData
	FieldMixHash
	FieldNonce
	FieldBaseFeePerGas
	FieldWithdrawalsRoot
	FieldBlobGasUsed
	FieldExcessBlobGas
	FieldParentBeaconBlockRoot
	FieldRequestsHash
)

// Field is one entry of an era's ordered field list.
type Field struct {
	ID     FieldID
	Name   string
	Kind   Kind
	Policy Policy
}

// binding reads and writes one field of the canonical header as text.
type binding struct {
	get func(h *types.BlockHeader) (string, bool)
	set func(h *types.BlockHeader, v string) error
}

func optional(p func(h *types.BlockHeader) **string) binding {
	return binding{
		get: func(h *types.BlockHeader) (string, bool) {
			v := *p(h)
			if v == nil {
				return "", false
			}
			return *v, true
		},
		set: func(h *types.BlockHeader, v string) error {
			*p(h) = types.Str(v)
			return nil
		},
	}
}

func numeric(p func(h *types.BlockHeader) *uint64) binding {
	return binding{
		get: func(h *types.BlockHeader) (string, bool) {
			return codec.EncodeUint64(*p(h)), true
		},
		set: func(h *types.BlockHeader, v string) error {
			q, err := codec.Quantity(v)
			if err != nil {
				return err
			}
			if !q.IsUint64() {
				return fmt.Errorf("%w: exceeds 64 bits", codec.ErrTooLong)
			}
			*p(h) = q.Uint64()
			return nil
		},
	}
}

var bindings = map[FieldID]binding{
	FieldParentHash: optional(func(h *types.BlockHeader) **string { return &h.ParentHash }),
	FieldOmmersHash: {
		get: func(h *types.BlockHeader) (string, bool) {
			if h.OmmersHash != nil {
				return *h.OmmersHash, true
			}
			if h.Sha3Uncles != nil {
				return *h.Sha3Uncles, true
			}
			return "", false
		},
		set: func(h *types.BlockHeader, v string) error {
			h.OmmersHash = types.Str(v)
			h.Sha3Uncles = types.Str(v)
			return nil
		},
	},
	FieldBeneficiary:      optional(func(h *types.BlockHeader) **string { return &h.Miner }),
	FieldStateRoot:        optional(func(h *types.BlockHeader) **string { return &h.StateRoot }),
	FieldTransactionsRoot: optional(func(h *types.BlockHeader) **string { return &h.TransactionRoot }),
	FieldReceiptsRoot:     optional(func(h *types.BlockHeader) **string { return &h.ReceiptsRoot }),
	FieldLogsBloom:        optional(func(h *types.BlockHeader) **string { return &h.LogsBloom }),
	FieldDifficulty:       optional(func(h *types.BlockHeader) **string { return &h.Difficulty }),
	FieldNumber:           numeric(func(h *types.BlockHeader) *uint64 { return &h.Number }),
	FieldGasLimit:         numeric(func(h *types.BlockHeader) *uint64 { return &h.GasLimit }),
	FieldGasUsed:          numeric(func(h *types.BlockHeader) *uint64 { return &h.GasUsed }),
	FieldTimestamp:        optional(func(h *types.BlockHeader) **string { return &h.Timestamp }),
	FieldExtraData:        optional(func(h *types.BlockHeader) **string { return &h.ExtraData }),
	FieldMixHash:          optional(func(h *types.BlockHeader) **string { return &h.MixHash }),
	FieldNonce: {
		get: func(h *types.BlockHeader) (string, bool) {
			return h.Nonce, h.Nonce != ""
		},
		set: func(h *types.BlockHeader, v string) error {
			h.Nonce = v
			return nil
		},
	},
	FieldBaseFeePerGas:         optional(func(h *types.BlockHeader) **string { return &h.BaseFeePerGas }),
	FieldWithdrawalsRoot:       optional(func(h *types.BlockHeader) **string { return &h.WithdrawalsRoot }),
	FieldBlobGasUsed:           optional(func(h *types.BlockHeader) **string { return &h.BlobGasUsed }),
	FieldExcessBlobGas:         optional(func(h *types.BlockHeader) **string { return &h.ExcessBlobGas }),
	FieldParentBeaconBlockRoot: optional(func(h *types.BlockHeader) **string { return &h.ParentBeaconBlockRoot }),
	FieldRequestsHash:          optional(func(h *types.BlockHeader) **string { return &h.RequestHash }),
}

// fromText converts canonical text into the bytes the field is encoded as.
func (f Field) fromText(s string) ([]byte, error) {
	switch {
	case f.Kind.fixed():
		return codec.FixedBytes(s, f.Kind.Width())
	case f.Kind == KindQuantity:
		return codec.QuantityBytes(s)
	default:
		return codec.Bytes(s)
	}
}

// toText is the inverse of fromText.
func (f Field) toText(b []byte) string {
	switch {
	case f.Kind.fixed():
		return codec.EncodeFixed(b)
	case f.Kind == KindQuantity:
		return codec.EncodeQuantity(b)
	default:
		return codec.EncodeBytes(b)
	}
}

// defaultValue is the value used for an absent non-required field.
func (f Field) defaultValue() []byte {
	if f.Policy == PolicyZero && f.Kind.fixed() {
		return make([]byte, f.Kind.Width())
	}
	return []byte{}
}

// checkEncoded validates a decoded RLP string against the field's schema.
func (f Field) checkEncoded(b []byte) error {
	switch {
	case f.Kind.fixed():
		if len(b) != f.Kind.Width() {
			return eraerr(RLP_ERR_MALFORMED, f.Name+": width mismatch")
		}
	case f.Kind == KindQuantity:
		if len(b) > codec.QuantityMaxLength {
			return eraerr(RLP_ERR_MALFORMED, f.Name+": quantity exceeds 256 bits")
		}
		if len(b) > 0 && b[0] == 0 {
			return eraerr(RLP_ERR_MALFORMED, f.Name+": non-canonical quantity")
		}
	}
	return nil
}
