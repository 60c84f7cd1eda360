/*
Package cli implements the matcalc command line interface.

matcalc evaluates the expressions given with -e in batch mode, runs Lua
scripts given with --script, and enters an interactive REPL if neither is
present or if -i is set. Configuration is read with koanf, from defaults,
an application config file and command line flags.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'matcalc.cli'
func tracer() tracing.Trace {
	return tracing.Select("matcalc.cli")
}
