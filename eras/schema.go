package eras

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/NethermindEth/eth-rlp-verify/crypto"
	"github.com/NethermindEth/eth-rlp-verify/types"
)

// Schema is the ordered field list of one era. The order is the protocol's
// RLP order and must never change once an era is released.
type Schema struct {
	Era    Era
	Fields []Field
}

// Len returns the number of RLP items in an encoded header of this era.
func (s *Schema) Len() int { return len(s.Fields) }

// Variant is a header laid out according to one era's schema. Values[i] holds
// the RLP string content of Fields[i].
type Variant struct {
	schema *Schema
	values [][]byte
}

func (v *Variant) Schema() *Schema { return v.schema }

func (v *Variant) Era() Era { return v.schema.Era }

// Value returns the encoded content of the named field.
func (v *Variant) Value(id FieldID) ([]byte, bool) {
	for i, f := range v.schema.Fields {
		if f.ID == id {
			return v.values[i], true
		}
	}
	return nil, false
}

// Equal reports whether both variants share a schema and all values.
func (v *Variant) Equal(o *Variant) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.schema.Era != o.schema.Era || len(v.values) != len(o.values) {
		return false
	}
	for i := range v.values {
		if !bytes.Equal(v.values[i], o.values[i]) {
			return false
		}
	}
	return true
}

// FromCanonical lays h out according to the schema. Absent fields take their
// policy default; absent required fields and malformed text are errors.
func (s *Schema) FromCanonical(h *types.BlockHeader) (*Variant, error) {
	if h == nil {
		return nil, eraerr(FIELD_ERR_MISSING, "nil header")
	}
	values := make([][]byte, len(s.Fields))
	for i, f := range s.Fields {
		text, ok := bindings[f.ID].get(h)
		if !ok {
			if f.Policy == PolicyRequired {
				return nil, eraerr(FIELD_ERR_MISSING, f.Name)
			}
			values[i] = f.defaultValue()
			continue
		}
		b, err := f.fromText(text)
		if err != nil {
			return nil, wraperr(FIELD_ERR_MALFORMED, f.Name, err)
		}
		values[i] = b
	}
	return &Variant{schema: s, values: values}, nil
}

// Encode serializes the variant as an RLP list in schema order.
func (v *Variant) Encode() []byte {
	var buf bytes.Buffer
	w := rlp.NewEncoderBuffer(&buf)
	idx := w.List()
	for _, b := range v.values {
		w.WriteBytes(b)
	}
	w.ListEnd(idx)
	_ = w.Flush() // writes to a bytes.Buffer cannot fail
	return buf.Bytes()
}

// Hash is the Keccak-256 digest of the encoding, i.e. the block hash.
func (v *Variant) Hash() common.Hash {
	return v.HashWith(crypto.Default)
}

// HashWith digests the encoding with p.
func (v *Variant) HashWith(p crypto.HashProvider) common.Hash {
	return common.Hash(p.Keccak256(v.Encode()))
}

// Decode parses an RLP encoded header of this era. The input must be a single
// list with exactly Len() string items and nothing after it.
func (s *Schema) Decode(b []byte) (*Variant, error) {
	content, rest, err := rlp.SplitList(b)
	if err != nil {
		return nil, wraperr(RLP_ERR_MALFORMED, "outer list", err)
	}
	if len(rest) != 0 {
		return nil, eraerr(RLP_ERR_MALFORMED, fmt.Sprintf("%d trailing bytes", len(rest)))
	}
	values := make([][]byte, 0, len(s.Fields))
	for _, f := range s.Fields {
		if len(content) == 0 {
			return nil, eraerr(RLP_ERR_MALFORMED, fmt.Sprintf("%d items, want %d", len(values), len(s.Fields)))
		}
		kind, val, tail, err := rlp.Split(content)
		if err != nil {
			return nil, wraperr(RLP_ERR_MALFORMED, f.Name, err)
		}
		if kind == rlp.List {
			return nil, eraerr(RLP_ERR_MALFORMED, f.Name+": unexpected list")
		}
		if err := f.checkEncoded(val); err != nil {
			return nil, err
		}
		values = append(values, append([]byte{}, val...))
		content = tail
	}
	if len(content) != 0 {
		n, _ := rlp.CountValues(content)
		return nil, eraerr(RLP_ERR_MALFORMED, fmt.Sprintf("%d items, want %d", len(s.Fields)+n, len(s.Fields)))
	}
	return &Variant{schema: s, values: values}, nil
}

// IntoCanonical expands the variant back into a canonical header. BlockHash is
// set to the Keccak-256 hash of the encoding; fields outside the schema stay nil.
func (v *Variant) IntoCanonical() (types.BlockHeader, error) {
	return v.IntoCanonicalWith(crypto.Default)
}

// IntoCanonicalWith is IntoCanonical with BlockHash computed by p.
func (v *Variant) IntoCanonicalWith(p crypto.HashProvider) (types.BlockHeader, error) {
	var h types.BlockHeader
	for i, f := range v.schema.Fields {
		if err := bindings[f.ID].set(&h, f.toText(v.values[i])); err != nil {
			return types.BlockHeader{}, wraperr(FIELD_ERR_MALFORMED, f.Name, err)
		}
	}
	h.BlockHash = v.HashWith(p).Hex()
	return h, nil
}
