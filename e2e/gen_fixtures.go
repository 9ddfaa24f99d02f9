//go:build ignore

// gen_fixtures writes synthetic ace templates for a smoke run.
// Usage: go run gen_fixtures.go <output_dir>
//
//	go run ./e2e/gen_fixtures.go /tmp/cards
//	go run . build /tmp/cards && go run . validate /tmp/cards
package main

import (
	"fmt"
	"os"

	"github.com/AnyUserName/cardgen/internal/fixture"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]

	if err := fixture.WriteBases(dir, fixture.CardWidth, fixture.CardHeight); err != nil {
		fmt.Fprintf(os.Stderr, "[gen_fixtures] %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "[gen_fixtures] created 4 ace templates in %s\n", dir)
}
