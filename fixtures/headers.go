// Package fixtures holds block headers for tests and command-line smoke checks.
package fixtures

import (
	"strings"

	"github.com/NethermindEth/eth-rlp-verify/types"
)

const emptyOmmersHash = "0x1dcc4de8dec75d7aab85b567b6ccd41ad312451b948a7413f0a142fd40d49347"

// CancunMainnet carries the fields of mainnet block 21,360,407. BlockHash is
// left empty; callers fill it from an independent hasher.
func CancunMainnet() types.BlockHeader {
	return types.BlockHeader{
		Number:                21360407,
		GasLimit:              30000000,
		GasUsed:               23136748,
		Nonce:                 "0x0000000000000000",
		TransactionRoot:       types.Str("0x7e8cb150b22634aa93698d7474295d1e5cd20058f5dd87937d614e343c522ce9"),
		ReceiptsRoot:          types.Str("0x920933bdc0a76aa6e20f9055c5121fec90b3026407850fe0e3be9e501aa4aaa3"),
		StateRoot:             types.Str("0xd9f5fd68ad4eb866f72c2c0cc92522fcb2f8217de90f571b12af014595a712d1"),
		BaseFeePerGas:         types.Str("0x221181aba"),
		ParentHash:            types.Str("0xd961036e50def39e5596c000f882ff8c01480238d7b5cef205dcb9eb2564f1e9"),
		Miner:                 types.Str("0x4838b106fce9647bdf1e7877bf73ce8b0bad5f97"),
		LogsBloom:             types.Str("0x56bfda6a6d3bbafbf2e9f1fcfdf412f5fb4aba67b8537dec59ff736ae7f28912e457cfe793f818b24e71bff8df3e9dfc6e63be6dcf786ddedee3f7deecfb3b65fa35d5bc4bbdeba87cf77b7fd2716affcc2b87bfdf6fddf26d7e1f79ffebee16da077f073f7e89ef85fc9ffe7848b9d7f2bffcec8f153efaba71ddfecaebdebdc9abaf7f1fdfd5fbb0fbab771b7a7f3ea6d17f7fefe60eeff8aadc67e7d8ffababffb56ffabd7cde6bda7bf6c1fc5de57657cfa3b9f94eaf437c4faa3688e26f711c6a3ef55d7b626034f9cf75f8fbe76be8f776bd7679b64fb7ed6ee9ebe4f6503bee7b1d98d60e674476b228fd1b7ed5eeffcfd3b9bfc45c6bb168d6fe7e87"),
		Difficulty:            types.Str("0x0"),
		TotalDifficulty:       types.Str("0xc70d815d562d3cfa955"),
		Sha3Uncles:            types.Str(emptyOmmersHash),
		Timestamp:             types.Str("0x675e4067"),
		ExtraData:             types.Str("0x546974616e2028746974616e6275696c6465722e78797a29"),
		MixHash:               types.Str("0xba0c445804efa055afaf3e3c70982df08f17b0209cb7cbfb5b9ac769ea14bc36"),
		OmmersHash:            types.Str(emptyOmmersHash),
		WithdrawalsRoot:       types.Str("0x4a45d936f39861fe6ce5285973f70b5d836989cc178e86f6f613b1741e790cec"),
		BlobGasUsed:           types.Str("0x80000"),
		ExcessBlobGas:         types.Str("0x3740000"),
		ParentBeaconBlockRoot: types.Str("0x49c85e7f2d121cc6f8f55e1265785690e63e0769285c2cfc47112a1406631e47"),
	}
}

// PectraSepolia is Sepolia block 7,839,744 with its published hash.
func PectraSepolia() types.BlockHeader {
	return types.BlockHeader{
		BlockHash:             "0xbfa14ad39de89b0de89a0d9e78efebae792eae93ee46414ed98ee790ce8ed8b3",
		Number:                7839744,
		GasLimit:              36000000,
		GasUsed:               17786126,
		Nonce:                 "0x0000000000000000",
		TransactionRoot:       types.Str("0x0278307f8545a019516ec439e73404f952436abbdf21d69720a613fef8938d5f"),
		ReceiptsRoot:          types.Str("0xc7bbdde3e099ede140e4364e3205a16dc68bdd5531af1596789537bbd2ff1041"),
		StateRoot:             types.Str("0x724617b7999d13469c068ced397d3d37a1432a8db7f156ed81d8f78c0a61a7f2"),
		BaseFeePerGas:         types.Str("0x120c4011"),
		ParentHash:            types.Str("0x53df8defa12fa604f56a0b490e45f8eaebb12c3a9aed12bc52d405600e606338"),
		Miner:                 types.Str("0x3826539cbd8d68dcf119e80b994557b4278cec9f"),
		LogsBloom:             types.Str("0x0291928e4009a0159203220927940094062800a00c093a669298e00dc5bf42022a50500200334a06000029401634803691d407868254f8847c00d08d4c6604842c62588e4b106309407022cad848de348041474480540286130a080291b202110f100c409204120804a022800220084183500d004168061146246012215836041aee02124e300d3060ed400b99052084a0c0a18b886802082ca0509c4482001c028a788efd0480a9d27a105940000c5900cc8601a2031380855453c46f79128388548f0224603490610a80310087430a08946c84e00d00304409910211a071210550352d0c082800c5361f8628b9a6c3c2b275304c70834200da43181a486021"),
		Difficulty:            types.Str("0x0"),
		Sha3Uncles:            types.Str(emptyOmmersHash),
		Timestamp:             types.Str("0x67c8a89c"),
		ExtraData:             types.Str("0x"),
		MixHash:               types.Str("0x31d5334ad1f9e04153891a4697863a1c9e80f37c66d1d421923c07184c45b4d5"),
		OmmersHash:            types.Str(emptyOmmersHash),
		WithdrawalsRoot:       types.Str("0x707609a48eb417ad00247824863dcae7437a4ae780719e77a1d6788f05c1a3b8"),
		BlobGasUsed:           types.Str("0xe0000"),
		ExcessBlobGas:         types.Str("0x60000"),
		ParentBeaconBlockRoot: types.Str("0x4f5861bbeae03efc716a3b9cfaf4473aca4048e489a9b77102edb2117c4b8217"),
		RequestHash:           types.Str("0xe3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"),
	}
}

// Synthetic returns a header with every field of every era populated with
// distinct, well-formed values. BlockHash is left empty.
func Synthetic(number uint64) types.BlockHeader {
	return types.BlockHeader{
		Number:                number,
		GasLimit:              30_000_000,
		GasUsed:               12_345_678,
		Nonce:                 "0x0102030405060708",
		TransactionRoot:       types.Str(repeat("11")),
		ReceiptsRoot:          types.Str(repeat("22")),
		StateRoot:             types.Str(repeat("33")),
		BaseFeePerGas:         types.Str("0x3b9aca00"),
		ParentHash:            types.Str(repeat("44")),
		Miner:                 types.Str("0x95222290dd7278aa3ddd389cc1e1d165cc4bafe5"),
		LogsBloom:             types.Str("0x" + strings.Repeat("0f", 256)),
		Difficulty:            types.Str("0x2d2d2d2d2d"),
		Sha3Uncles:            types.Str(emptyOmmersHash),
		Timestamp:             types.Str("0x65f1b057"),
		ExtraData:             types.Str("0x6265617665726275696c642e6f7267"),
		MixHash:               types.Str(repeat("55")),
		OmmersHash:            types.Str(emptyOmmersHash),
		WithdrawalsRoot:       types.Str(repeat("66")),
		BlobGasUsed:           types.Str("0x60000"),
		ExcessBlobGas:         types.Str("0x4b60000"),
		ParentBeaconBlockRoot: types.Str(repeat("77")),
		RequestHash:           types.Str(repeat("88")),
	}
}

func repeat(b string) string {
	return "0x" + strings.Repeat(b, 32)
}
