// Package types holds the canonical block header record exchanged with callers.
package types

// BlockHeader is the era independent transport form of a block header. Scalar
// and hash fields are hexadecimal text, optionally 0x prefixed. A nil optional
// field means the field does not apply to the header's era.
type BlockHeader struct {
	BlockHash             string  `json:"block_hash"`
	Number                uint64  `json:"number"`
	GasLimit              uint64  `json:"gas_limit"`
	GasUsed               uint64  `json:"gas_used"`
	Nonce                 string  `json:"nonce"`
	TransactionRoot       *string `json:"transaction_root,omitempty"`
	ReceiptsRoot          *string `json:"receipts_root,omitempty"`
	StateRoot             *string `json:"state_root,omitempty"`
	BaseFeePerGas         *string `json:"base_fee_per_gas,omitempty"`
	ParentHash            *string `json:"parent_hash,omitempty"`
	Miner                 *string `json:"miner,omitempty"`
	LogsBloom             *string `json:"logs_bloom,omitempty"`
	Difficulty            *string `json:"difficulty,omitempty"`
	TotalDifficulty       *string `json:"totaldifficulty,omitempty"`
	Sha3Uncles            *string `json:"sha3_uncles,omitempty"`
	Timestamp             *string `json:"timestamp,omitempty"`
	ExtraData             *string `json:"extra_data,omitempty"`
	MixHash               *string `json:"mix_hash,omitempty"`
	OmmersHash            *string `json:"ommers_hash,omitempty"`
	WithdrawalsRoot       *string `json:"withdrawals_root,omitempty"`
	BlobGasUsed           *string `json:"blob_gas_used,omitempty"`
	ExcessBlobGas         *string `json:"excess_blob_gas,omitempty"`
	ParentBeaconBlockRoot *string `json:"parent_beacon_block_root,omitempty"`
	RequestHash           *string `json:"request_hash,omitempty"`
}

// ParentHashOrEmpty returns the declared parent hash, or "" when absent.
func (h *BlockHeader) ParentHashOrEmpty() string {
	if h.ParentHash == nil {
		return ""
	}
	return *h.ParentHash
}

// Str returns a pointer to s. Handy when building headers by hand.
func Str(s string) *string {
	return &s
}
