//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of pathviz requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/pathviz` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a headless comparison of the algorithms use `go run ./cmd/pathbench`.")
	os.Exit(2)
}
