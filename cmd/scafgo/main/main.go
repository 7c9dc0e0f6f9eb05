package main

import (
	"fmt"
	"os"

	"github.com/scaffoldkit/scafgo/cmd/scafgo"
)

func main() {
	rootCmd := scafgo.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
