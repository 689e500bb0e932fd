//go:build ignore

// Manual check that the system clipboard works on this machine:
//
//	go run ./cmd/cliptest
package main

import (
	"fmt"

	"github.com/zhubert/veneer/internal/clipboard"
)

func main() {
	const url = "https://example.com/cliptest"

	fmt.Println("Testing clipboard write...")
	if err := clipboard.WriteText(url); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	got, err := clipboard.ReadText()
	if err != nil {
		fmt.Printf("Error reading back: %v\n", err)
		return
	}
	if got != url {
		fmt.Printf("Mismatch: wrote %q, read %q\n", url, got)
		return
	}
	fmt.Printf("Round trip ok: %s\n", got)
}
