// main is the entry point for the prdash CLI.
package main

import (
	"github.com/huangsam/prdash/cmd"
	"github.com/huangsam/prdash/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot run prdash", err)
	}
}
