// Package main is the entry point of matcalc, an interactive calculator for
// matrix algebra.
//
// # License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/npillmayer/matcalc/matcalc/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cli.Execute(ctx)
}
