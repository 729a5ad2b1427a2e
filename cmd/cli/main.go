package main

import (
	"os"

	protocol "ai-anywhere/protocal"
)

func main() {
	if err := protocol.ExecuteCLI(); err != nil {
		os.Exit(1)
	}
}
