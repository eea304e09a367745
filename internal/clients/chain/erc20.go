package chain

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// erc20ABIJSON is the ERC-20 transfer function, the only call the faucet makes.
const erc20ABIJSON = `[
	{
		"constant": false,
		"inputs": [
			{"name": "_to", "type": "address"},
			{"name": "_value", "type": "uint256"}
		],
		"name": "transfer",
		"outputs": [{"name": "", "type": "bool"}],
		"payable": false,
		"stateMutability": "nonpayable",
		"type": "function"
	}
]`

const transferMethod = "transfer"

var erc20ABI = mustParseABI(erc20ABIJSON)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic("invalid ERC-20 ABI: " + err.Error())
	}
	return parsed
}
