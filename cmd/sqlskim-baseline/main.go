package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sqlskim/baseline/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if !errors.Is(err, cli.ErrBaselineMismatch) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
