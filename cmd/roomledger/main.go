// Package main provides the roomledger command-line tool.
//
// This is the entrypoint for the roomledger binary which manages
// hotels, customers, and reservations backed by JSON files.
package main

import (
	"os"

	"github.com/dreyes/roomledger/cmd/roomledger/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
