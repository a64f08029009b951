package model

// Network identifies the bitcoin network a source talks to.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Signet  Network = "signet"
	Regtest Network = "regtest"
)
