/*
Package termui provides objects and methods for interactive UI in terminal windows.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package termui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'matcalc.cli'.
func trace() tracing.Trace {
	return tracing.Select("matcalc.cli")
}

// Formatter writes items to an output. It returns false if it did not know
// how to display an item.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter displays strings, errors and tables.
type DefaultFormatter struct{}

// Format writes item to w, prefixed with a marker.
func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	switch t := item.(type) {
	case string:
		_, err := fmt.Fprintf(w, "▶ %s\n", t)
		return err == nil, err
	case error:
		_, err := fmt.Fprintf(w, "%s %s\n", prtxt.FgRed.Sprint("✗"), t.Error())
		return err == nil, err
	case table.Writer:
		_, err := fmt.Fprintf(w, "%s\n", t.Render())
		return err == nil, err
	case nil:
		return false, nil
	}
	_, err := fmt.Fprintf(w, "▶ object of type %T\n", item)
	return err == nil, err
}

// Recover calls fn. A panic escaping fn is turned into an error and written
// to w using f; Recover then returns false.
func Recover(f Formatter, w io.Writer, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			err, isErr := r.(error)
			if !isErr {
				err = fmt.Errorf("%v", r)
			}
			trace().Errorf("panic executing statement: %v", err)
			f.Format(fmt.Errorf("error executing statement: %w", err), w)
			ok = false
		}
	}()
	fn()
	return true
}
