package eras

// Era tags a header layout.
type Era uint8

const (
	Genesis Era = iota + 1
	London
	Paris
	Shapella
	Dencun
	Pectra
)

func (e Era) String() string {
	switch e {
	case Genesis:
		return "genesis"
	case London:
		return "london"
	case Paris:
		return "paris"
	case Shapella:
		return "shapella"
	case Dencun:
		return "dencun"
	case Pectra:
		return "pectra"
	default:
		return "unknown"
	}
}

// ParseEra maps a lower case era name to its tag.
func ParseEra(s string) (Era, bool) {
	for _, e := range AllEras() {
		if e.String() == s {
			return e, true
		}
	}
	return 0, false
}

// AllEras lists every era in activation order.
func AllEras() []Era {
	return []Era{Genesis, London, Paris, Shapella, Dencun, Pectra}
}

// SchemaFor returns the schema of e, or nil for an unknown tag.
func SchemaFor(e Era) *Schema {
	switch e {
	case Genesis:
		return genesisSchema
	case London:
		return londonSchema
	case Paris:
		return parisSchema
	case Shapella:
		return shapellaSchema
	case Dencun:
		return dencunSchema
	case Pectra:
		return pectraSchema
	default:
		return nil
	}
}

// Each list below is written out in full. Do not derive one era from another.

// Genesis (15 fields). Frontier through Berlin: the original 15 field header.
var genesisSchema = &Schema{
	Era:    Genesis,
	Fields: []Field{
		{ID: FieldParentHash, Name: "parent_hash", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldOmmersHash, Name: "ommers_hash", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldBeneficiary, Name: "beneficiary", Kind: KindAddress, Policy: PolicyZero},
		{ID: FieldStateRoot, Name: "state_root", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldTransactionsRoot, Name: "transactions_root", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldReceiptsRoot, Name: "receipts_root", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldLogsBloom, Name: "logs_bloom", Kind: KindBloom, Policy: PolicyZero},
		{ID: FieldDifficulty, Name: "difficulty", Kind: KindQuantity, Policy: PolicyZero},
		{ID: FieldNumber, Name: "number", Kind: KindQuantity, Policy: PolicyRequired},
		{ID: FieldGasLimit, Name: "gas_limit", Kind: KindQuantity, Policy: PolicyRequired},
		{ID: FieldGasUsed, Name: "gas_used", Kind: KindQuantity, Policy: PolicyRequired},
		{ID: FieldTimestamp, Name: "timestamp", Kind: KindQuantity, Policy: PolicyZero},
		{ID: FieldExtraData, Name: "extra_data", Kind: KindBytes, Policy: PolicyEmpty},
		{ID: FieldMixHash, Name: "mix_hash", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldNonce, Name: "nonce", Kind: KindNonce, Policy: PolicyRequired},
	},
}

// London (16 fields). EIP-1559 appends base_fee_per_gas.
var londonSchema = &Schema{
	Era:    London,
	Fields: []Field{
		{ID: FieldParentHash, Name: "parent_hash", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldOmmersHash, Name: "ommers_hash", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldBeneficiary, Name: "beneficiary", Kind: KindAddress, Policy: PolicyZero},
		{ID: FieldStateRoot, Name: "state_root", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldTransactionsRoot, Name: "transactions_root", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldReceiptsRoot, Name: "receipts_root", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldLogsBloom, Name: "logs_bloom", Kind: KindBloom, Policy: PolicyZero},
		{ID: FieldDifficulty, Name: "difficulty", Kind: KindQuantity, Policy: PolicyZero},
		{ID: FieldNumber, Name: "number", Kind: KindQuantity, Policy: PolicyRequired},
		{ID: FieldGasLimit, Name: "gas_limit", Kind: KindQuantity, Policy: PolicyRequired},
		{ID: FieldGasUsed, Name: "gas_used", Kind: KindQuantity, Policy: PolicyRequired},
		{ID: FieldTimestamp, Name: "timestamp", Kind: KindQuantity, Policy: PolicyZero},
		{ID: FieldExtraData, Name: "extra_data", Kind: KindBytes, Policy: PolicyEmpty},
		{ID: FieldMixHash, Name: "mix_hash", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldNonce, Name: "nonce", Kind: KindNonce, Policy: PolicyRequired},
		{ID: FieldBaseFeePerGas, Name: "base_fee_per_gas", Kind: KindQuantity, Policy: PolicyZero},
	},
}

// Paris (16 fields). The merge. Layout is London's; difficulty and nonce are zero on chain.
var parisSchema = &Schema{
	Era:    Paris,
	Fields: []Field{
		{ID: FieldParentHash, Name: "parent_hash", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldOmmersHash, Name: "ommers_hash", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldBeneficiary, Name: "beneficiary", Kind: KindAddress, Policy: PolicyZero},
		{ID: FieldStateRoot, Name: "state_root", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldTransactionsRoot, Name: "transactions_root", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldReceiptsRoot, Name: "receipts_root", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldLogsBloom, Name: "logs_bloom", Kind: KindBloom, Policy: PolicyZero},
		{ID: FieldDifficulty, Name: "difficulty", Kind: KindQuantity, Policy: PolicyZero},
		{ID: FieldNumber, Name: "number", Kind: KindQuantity, Policy: PolicyRequired},
		{ID: FieldGasLimit, Name: "gas_limit", Kind: KindQuantity, Policy: PolicyRequired},
		{ID: FieldGasUsed, Name: "gas_used", Kind: KindQuantity, Policy: PolicyRequired},
		{ID: FieldTimestamp, Name: "timestamp", Kind: KindQuantity, Policy: PolicyZero},
		{ID: FieldExtraData, Name: "extra_data", Kind: KindBytes, Policy: PolicyEmpty},
		{ID: FieldMixHash, Name: "mix_hash", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldNonce, Name: "nonce", Kind: KindNonce, Policy: PolicyRequired},
		{ID: FieldBaseFeePerGas, Name: "base_fee_per_gas", Kind: KindQuantity, Policy: PolicyZero},
	},
}

// Shapella (17 fields). EIP-4895 appends withdrawals_root.
var shapellaSchema = &Schema{
	Era:    Shapella,
	Fields: []Field{
		{ID: FieldParentHash, Name: "parent_hash", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldOmmersHash, Name: "ommers_hash", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldBeneficiary, Name: "beneficiary", Kind: KindAddress, Policy: PolicyZero},
		{ID: FieldStateRoot, Name: "state_root", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldTransactionsRoot, Name: "transactions_root", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldReceiptsRoot, Name: "receipts_root", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldLogsBloom, Name: "logs_bloom", Kind: KindBloom, Policy: PolicyZero},
		{ID: FieldDifficulty, Name: "difficulty", Kind: KindQuantity, Policy: PolicyZero},
		{ID: FieldNumber, Name: "number", Kind: KindQuantity, Policy: PolicyRequired},
		{ID: FieldGasLimit, Name: "gas_limit", Kind: KindQuantity, Policy: PolicyRequired},
		{ID: FieldGasUsed, Name: "gas_used", Kind: KindQuantity, Policy: PolicyRequired},
		{ID: FieldTimestamp, Name: "timestamp", Kind: KindQuantity, Policy: PolicyZero},
		{ID: FieldExtraData, Name: "extra_data", Kind: KindBytes, Policy: PolicyEmpty},
		{ID: FieldMixHash, Name: "mix_hash", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldNonce, Name: "nonce", Kind: KindNonce, Policy: PolicyRequired},
		{ID: FieldBaseFeePerGas, Name: "base_fee_per_gas", Kind: KindQuantity, Policy: PolicyZero},
		{ID: FieldWithdrawalsRoot, Name: "withdrawals_root", Kind: KindHash, Policy: PolicyZero},
	},
}

// Dencun (20 fields). EIP-4844 and EIP-4788 append blob gas accounting and the beacon root.
var dencunSchema = &Schema{
	Era:    Dencun,
	Fields: []Field{
		{ID: FieldParentHash, Name: "parent_hash", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldOmmersHash, Name: "ommers_hash", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldBeneficiary, Name: "beneficiary", Kind: KindAddress, Policy: PolicyZero},
		{ID: FieldStateRoot, Name: "state_root", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldTransactionsRoot, Name: "transactions_root", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldReceiptsRoot, Name: "receipts_root", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldLogsBloom, Name: "logs_bloom", Kind: KindBloom, Policy: PolicyZero},
		{ID: FieldDifficulty, Name: "difficulty", Kind: KindQuantity, Policy: PolicyZero},
		{ID: FieldNumber, Name: "number", Kind: KindQuantity, Policy: PolicyRequired},
		{ID: FieldGasLimit, Name: "gas_limit", Kind: KindQuantity, Policy: PolicyRequired},
		{ID: FieldGasUsed, Name: "gas_used", Kind: KindQuantity, Policy: PolicyRequired},
		{ID: FieldTimestamp, Name: "timestamp", Kind: KindQuantity, Policy: PolicyZero},
		{ID: FieldExtraData, Name: "extra_data", Kind: KindBytes, Policy: PolicyEmpty},
		{ID: FieldMixHash, Name: "mix_hash", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldNonce, Name: "nonce", Kind: KindNonce, Policy: PolicyRequired},
		{ID: FieldBaseFeePerGas, Name: "base_fee_per_gas", Kind: KindQuantity, Policy: PolicyZero},
		{ID: FieldWithdrawalsRoot, Name: "withdrawals_root", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldBlobGasUsed, Name: "blob_gas_used", Kind: KindQuantity, Policy: PolicyZero},
		{ID: FieldExcessBlobGas, Name: "excess_blob_gas", Kind: KindQuantity, Policy: PolicyZero},
		{ID: FieldParentBeaconBlockRoot, Name: "parent_beacon_block_root", Kind: KindHash, Policy: PolicyZero},
	},
}

// Pectra (21 fields). EIP-7685 appends requests_hash.
var pectraSchema = &Schema{
	Era:    Pectra,
	Fields: []Field{
		{ID: FieldParentHash, Name: "parent_hash", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldOmmersHash, Name: "ommers_hash", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldBeneficiary, Name: "beneficiary", Kind: KindAddress, Policy: PolicyZero},
		{ID: FieldStateRoot, Name: "state_root", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldTransactionsRoot, Name: "transactions_root", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldReceiptsRoot, Name: "receipts_root", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldLogsBloom, Name: "logs_bloom", Kind: KindBloom, Policy: PolicyZero},
		{ID: FieldDifficulty, Name: "difficulty", Kind: KindQuantity, Policy: PolicyZero},
		{ID: FieldNumber, Name: "number", Kind: KindQuantity, Policy: PolicyRequired},
		{ID: FieldGasLimit, Name: "gas_limit", Kind: KindQuantity, Policy: PolicyRequired},
		{ID: FieldGasUsed, Name: "gas_used", Kind: KindQuantity, Policy: PolicyRequired},
		{ID: FieldTimestamp, Name: "timestamp", Kind: KindQuantity, Policy: PolicyZero},
		{ID: FieldExtraData, Name: "extra_data", Kind: KindBytes, Policy: PolicyEmpty},
		{ID: FieldMixHash, Name: "mix_hash", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldNonce, Name: "nonce", Kind: KindNonce, Policy: PolicyRequired},
		{ID: FieldBaseFeePerGas, Name: "base_fee_per_gas", Kind: KindQuantity, Policy: PolicyZero},
		{ID: FieldWithdrawalsRoot, Name: "withdrawals_root", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldBlobGasUsed, Name: "blob_gas_used", Kind: KindQuantity, Policy: PolicyZero},
		{ID: FieldExcessBlobGas, Name: "excess_blob_gas", Kind: KindQuantity, Policy: PolicyZero},
		{ID: FieldParentBeaconBlockRoot, Name: "parent_beacon_block_root", Kind: KindHash, Policy: PolicyZero},
		{ID: FieldRequestsHash, Name: "requests_hash", Kind: KindHash, Policy: PolicyZero},
	},
}
