package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/AnyUserName/cardgen/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "cardgen:", err)
		stop()
		os.Exit(1)
	}
}
