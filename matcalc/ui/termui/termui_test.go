package termui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestRecoverReportsPanic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "matcalc.cli")
	defer teardown()
	//
	var out bytes.Buffer
	ok := Recover(DefaultFormatter{}, &out, func() {
		var s []float64
		_ = s[3]
	})
	assert.False(t, ok)
	assert.Contains(t, out.String(), "error executing statement")
	assert.Contains(t, out.String(), "index out of range")
	out.Reset()
	ok = Recover(DefaultFormatter{}, &out, func() { panic(errors.New("boom")) })
	assert.False(t, ok)
	assert.Contains(t, out.String(), "boom")
	out.Reset()
	ok = Recover(DefaultFormatter{}, &out, func() { panic("plain") })
	assert.False(t, ok)
	assert.Contains(t, out.String(), "plain")
}

func TestRecoverPassesThrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "matcalc.cli")
	defer teardown()
	//
	var out bytes.Buffer
	called := false
	assert.True(t, Recover(DefaultFormatter{}, &out, func() { called = true }))
	assert.True(t, called)
	assert.Empty(t, out.String())
}
