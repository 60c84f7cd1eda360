package cli

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/matcalc"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// appKey locates the matcalc configuration and the application directories.
const appKey = "MATCALC"

// defaults are loaded before any config file or flag.
var defaults = map[string]interface{}{
	"display.precision":   matcalc.DefaultPrecision,
	"repl.editmode":       "emacs",
	"tracing.adapter":     "go",
	"tracing.destination": "",
	"trace.matcalc":       "Error",
}

// loadConfig is a callback function used by cobra's initialization mechanism.
// Unfortunately we're not allowed a return value.
func loadConfig() {
	k := koanf.New(".") // '.' is hierarchy delimiter
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		tracing.Errorf(err.Error())
		matcalc.Exit(1)
	}
	// We locate matcalc configuration with an application-key of 'MATCALC' and
	// use NestedText-format (nt) for config-files
	konf := koanfadapter.New(k, appKey, []string{"nt"})
	konf.InitDefaults()
	if err := mergeFlags(konf); err != nil {
		tracing.Errorf(err.Error())
		matcalc.Exit(1)
	}
	if err := configureTracing(konf); err != nil {
		tracing.Errorf(err.Error())
		matcalc.Exit(1)
	}
	matcalc.Configuration = k // push the configuration to app-global scope
}

func mergeFlags(konf *koanfadapter.KConf) error {
	flags := rootCmd.PersistentFlags()
	err := konf.Koanf().Load(posflag.Provider(flags, ".", konf.Koanf()), nil)
	if err != nil {
		return err
	}
	if flags.Changed("precision") {
		konf.Set("display.precision", konf.Koanf().Int("precision"))
	}
	if flags.Changed("vi") {
		konf.Set("repl.editmode", "vi")
	}
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		if strings.Contains(logname, ":/") {
			konf.Set("tracing.destination", logname)
		} else {
			konf.Set("tracing.destination", "file://"+logname)
		}
	}
	return nil
}

func configureTracing(konf *koanfadapter.KConf) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go") // use Go builtin logging facilities
	tracing.Infof("searching for trace redirection")
	if dest := konf.GetString("tracing.destination"); dest != "" {
		if !strings.Contains(dest, ":") {
			if dir := defaultPaths().LogDir(); dir != "" {
				dest = "file://" + dir + "/" + dest
				konf.Set("tracing.destination", dest)
			}
		}
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracing.Infof(rootCmd.Long)
	return nil
}

func defaultPaths() AppPaths {
	paths, err := DefaultAppPaths(appKey)
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
	}
	return paths
}
