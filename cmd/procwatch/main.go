// Package main is the entry point for procwatch.
package main

import (
	"log"
	"os"

	"github.com/jabbalaci/procwatch/internal/cli"
)

func main() {
	log.SetPrefix("[procwatch] ")
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
