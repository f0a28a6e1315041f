package main

import (
	"os"

	"svw.info/bingo/cmd/bingo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
