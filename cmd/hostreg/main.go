package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/Flarenzy/hostreg/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "hostreg: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
