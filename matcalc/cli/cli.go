package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/matcalc"
	"github.com/npillmayer/matcalc/evaluator"
	"github.com/npillmayer/matcalc/grammar"
	"github.com/npillmayer/matcalc/matcalc/ui/termui"
	"github.com/npillmayer/matcalc/scripting"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

const version = "0.1 experimental"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "matcalc",
	Short: "An interactive calculator for matrix algebra",
	Long: `Welcome to matcalc V0.1 (experimental)

matcalc evaluates infix expressions over named matrices, e.g.

    det(A) * inv(B) + 2 * identity(3)

matcalc is able to run in interactive mode or evaluate one or more
expressions in batch-mode. Matrices may be defined by Lua scripts.

`,
	Args: cobra.NoArgs,
	RunE: runMatcalcCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by matcalc.main().
func Execute(ctx context.Context) {
	if rootCmd.ExecuteContext(ctx) != nil {
		matcalc.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	flags := rootCmd.PersistentFlags()
	flags.BoolP("interactive", "i", false, "Force run in interactive mode")
	flags.String("logfile", "stderr", "URL of log output location")
	flags.StringArrayP("eval", "e", nil, "Evaluate a command line (repeatable)")
	flags.String("script", "", "Run a Lua script before evaluating")
	flags.Int("precision", matcalc.DefaultPrecision, "Number of decimals to display")
	flags.Bool("vi", false, "Use vi editing mode in the REPL")
}

func runMatcalcCmd(cmd *cobra.Command, args []string) error {
	tracing.Infof("matcalc called")
	intp := evaluator.NewInterpreter()
	mcmd := &matcalcCmdIntpr{
		intp:      intp,
		formatter: NewFormatter(),
		stdout:    cmd.OutOrStdout(),
		stderr:    cmd.ErrOrStderr(),
	}
	flags := cmd.Flags()
	script, _ := flags.GetString("script")
	lines, _ := flags.GetStringArray("eval")
	interactive, _ := flags.GetBool("interactive")
	failed := false
	if script != "" {
		if err := mcmd.runScript(script); err != nil {
			mcmd.formatter.Format(err, mcmd.stderr)
			failed = true
		}
	}
	for _, line := range lines {
		if !mcmd.execute(line) {
			failed = true
		}
	}
	if interactive || (script == "" && len(lines) == 0) {
		return mcmd.repl(cmd.Context())
	}
	if failed {
		matcalc.Exit(1)
	}
	return nil
}

// matcalcCmdIntpr connects the command line and the REPL to an interpreter.
type matcalcCmdIntpr struct {
	*termui.BaseREPL
	intp      *evaluator.Interpreter
	formatter Formatter
	stdout    io.Writer
	stderr    io.Writer
}

func (mcmd *matcalcCmdIntpr) repl(ctx context.Context) error {
	conf := termui.Config{
		HistoryFile: defaultPaths().HistoryFile(),
		EditMode:    matcalc.Configuration.String("repl.editmode"),
		Completions: completions(),
	}
	repl, err := termui.NewBaseREPL("matcalc", version, conf)
	if err != nil {
		return err
	}
	mcmd.BaseREPL = repl
	mcmd.Interpreter = mcmd
	mcmd.Formatter = mcmd.formatter
	mcmd.Helper = func(w io.Writer) {
		io.WriteString(w, `
matcalc will interpret the following statements:

  let <name> = [1 2; 3 4]  : define a matrix
  store <name>             : store the last result under a name
  delete <name>            : delete a matrix
  show <name>              : display a matrix
  list                     : list all stored matrices
  run <file.lua>           : run a Lua script
  <expression>             : evaluate an expression, e.g. det(A) * inv(B)

Operators: + - * / .* ./ .^ ^ ( ) ,
Functions: `+functionNames()+`

`)
	}
	mcmd.stdout, mcmd.stderr = repl.Outputs()
	repl.Prompt(ctx)
	return nil
}

// InterpretCommand is called by the REPL for every line it does not handle
// itself.
func (mcmd *matcalcCmdIntpr) InterpretCommand(command string) {
	command = strings.Trim(command, "\x00")
	mcmd.run(command)
}

// execute runs one command line and displays its result. It returns false
// if the command failed, including a panic.
func (mcmd *matcalcCmdIntpr) execute(line string) bool {
	ok := false
	if !termui.Recover(mcmd.formatter, mcmd.stderr, func() { ok = mcmd.run(line) }) {
		return false
	}
	return ok
}

func (mcmd *matcalcCmdIntpr) run(line string) bool {
	if fields := strings.Fields(line); len(fields) == 2 && fields[0] == "run" {
		if err := mcmd.runScript(fields[1]); err != nil {
			mcmd.formatter.Format(err, mcmd.stderr)
			return false
		}
		mcmd.formatter.Format(fmt.Sprintf("ran %s", fields[1]), mcmd.stdout)
		return true
	}
	r, err := mcmd.intp.Execute(line)
	if err != nil {
		tracer().Debugf("command failed: %v", err)
		mcmd.formatter.Format(err, mcmd.stderr)
		return false
	}
	if _, err := mcmd.formatter.Format(r, mcmd.stdout); err != nil {
		tracer().Errorf("cannot display result: %v", err)
	}
	return true
}

func (mcmd *matcalcCmdIntpr) runScript(filename string) error {
	if _, err := os.Stat(filename); err != nil {
		return err
	}
	lscript := scripting.NewScripting(mcmd.intp.Evaluator())
	defer lscript.Close()
	return lscript.DoFile(filename)
}

// completions lists the interpreter statements and built-in functions for
// the REPL's completer.
func completions() []readline.PrefixCompleterInterface {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem("let"),
		readline.PcItem("store"),
		readline.PcItem("delete"),
		readline.PcItem("show"),
		readline.PcItem("list"),
		readline.PcItem("run"),
	}
	for _, f := range grammar.Functions() {
		items = append(items, readline.PcItem(f.String()+"("))
	}
	return items
}

func functionNames() string {
	var names []string
	for _, f := range grammar.Functions() {
		names = append(names, f.String())
	}
	return strings.Join(names, " ")
}
