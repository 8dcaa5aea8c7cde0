// Command citext-check verifies that a PostgreSQL database round-trips
// citext values: stored casing is kept, folded reads are lowercase and
// lookups ignore case. All writes go to a temporary table inside a
// transaction that is rolled back.
//
// Exit codes: 0 = all samples passed, 1 = error or failed sample.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/citext/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "citext-check: %v\n", err)
		stop()
		os.Exit(1)
	}
}
