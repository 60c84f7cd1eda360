package evaluator

import (
	"strings"
)

// Command is the kind of a command line.
type Command int8

// Commands understood by the interpreter
const (
	CmdEval   Command = iota // evaluate an expression
	CmdLet                   // let NAME = [1 2; 3 4]
	CmdStore                 // store NAME
	CmdDelete                // delete NAME
	CmdList                  // list
	CmdShow                  // show NAME
)

var commandNames = [...]string{"eval", "let", "store", "delete", "list", "show"}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "?"
	}
	return commandNames[c]
}

// commandLine is a command line split into its parts.
type commandLine struct {
	cmd  Command
	name string // argument name, if any
	text string // expression or matrix literal
}

// parseCommand splits a line into command and arguments. Command keywords
// are recognized only with the argument count they require; every other
// line is an expression.
func parseCommand(line string) commandLine {
	line = strings.TrimSpace(line)
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return commandLine{cmd: CmdEval, text: line}
	}
	switch fields[0] {
	case "list":
		if len(fields) == 1 {
			return commandLine{cmd: CmdList}
		}
	case "store", "delete", "show":
		if len(fields) == 2 {
			cmd := map[string]Command{"store": CmdStore, "delete": CmdDelete, "show": CmdShow}[fields[0]]
			return commandLine{cmd: cmd, name: fields[1]}
		}
	case "let":
		rest := strings.TrimSpace(strings.TrimPrefix(line, "let"))
		if name, literal, found := strings.Cut(rest, "="); found {
			return commandLine{
				cmd:  CmdLet,
				name: strings.TrimSpace(name),
				text: strings.TrimSpace(literal),
			}
		}
	}
	return commandLine{cmd: CmdEval, text: line}
}
