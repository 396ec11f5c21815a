// Package main is a terminal demo of FLIP reordering.
//
// Usage:
//
//	flipdemo [flags]
//
// Keys:
//
//	left/right, h/l   move the cursor, or the picked card
//	space, enter      pick up or drop the card under the cursor
//	esc               put the picked card back; quit when nothing is picked
//	q, ctrl+c         quit
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
