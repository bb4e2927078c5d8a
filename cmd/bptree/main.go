// Command bptree drives the in-memory B+ tree index: a scripted demo
// workload and an HTTP inspection server.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
