package colors

import (
	"strings"

	"github.com/topmap/TopMap/blocks"
)

// candidates lists palette keys tried for b, most specific first.
func candidates(b blocks.Block) []string {
	n := b.BaseName
	keys := []string{
		n,
		n + "_top",
		strings.ReplaceAll(n, "_block", ""),
	}
	if m := b.Property("material"); m != "" {
		keys = append(keys, m+"_"+n, m, m+"s", m+"_planks")
	}
	if c := b.Property("color"); c != "" {
		keys = append(keys, c+"_"+n)
	}
	return keys
}

// ResolveKey finds the palette entry for b and reports which key matched.
func ResolveKey(b blocks.Block, p Palette) (string, RGB, bool) {
	for _, k := range candidates(b) {
		if c, ok := p[k]; ok {
			return k, c, true
		}
	}
	return "", RGB{}, false
}

// Resolve looks b up through the naming fallback chain: exact name, top
// face, name without "_block", material variants, dyed variant.
func Resolve(b blocks.Block, p Palette) (RGB, bool) {
	_, c, ok := ResolveKey(b, p)
	return c, ok
}
