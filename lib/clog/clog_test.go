package clog

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestLevelsGoThroughLogger(t *testing.T) {
	color.NoColor = true
	var out, term bytes.Buffer
	l := New(log.New(&out, "", 0), &term)
	l.Infof("rendering %d columns", 4)
	l.Warnf("no color for %q", "moss")
	l.Errorf("boom")
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], "rendering 4 columns"))
	assert.Contains(t, lines[1], "WARNING")
	assert.Contains(t, lines[1], `no color for "moss"`)
	assert.Contains(t, lines[2], "ERROR")
	assert.Empty(t, term.String())
}

func TestProgressOnlyOnTerminal(t *testing.T) {
	var out, term bytes.Buffer
	l := New(log.New(&out, "", 0), &term)
	l.Progressf("%d/%d", 1, 2)
	l.Donef("%d/%d", 2, 2)
	assert.Empty(t, out.String())
	assert.True(t, strings.HasPrefix(term.String(), "\r"))
	assert.True(t, strings.HasSuffix(term.String(), "2/2\n"))
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		l := Discard()
		l.Infof("x")
		l.Progressf("x")
	})
}
