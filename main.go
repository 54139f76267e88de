package main

import "github.com/ethpandaops/gas-reporter/cmd"

func main() {
	cmd.Execute()
}
