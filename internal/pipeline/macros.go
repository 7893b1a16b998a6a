package pipeline

import "strings"

// MacroAlias maps a known-malformed macro spelling to its canonical form.
type MacroAlias struct {
	Malformed string
	Canonical string
}

// macroAliases is read-only after init.
var macroAliases = []MacroAlias{
	{Malformed: `\rac`, Canonical: `\frac`}, // \frac with the f dropped
}

// macroReplacer only rewrites an alias directly followed by an opening brace,
// so \racing or a bare \rac stays untouched.
var macroReplacer = newMacroReplacer(macroAliases)

func newMacroReplacer(aliases []MacroAlias) *strings.Replacer {
	pairs := make([]string, 0, len(aliases)*2)
	for _, a := range aliases {
		pairs = append(pairs, a.Malformed+"{", a.Canonical+"{")
	}
	return strings.NewReplacer(pairs...)
}

// MacroAliases returns a copy of the alias table.
func MacroAliases() []MacroAlias {
	out := make([]MacroAlias, len(macroAliases))
	copy(out, macroAliases)
	return out
}

// CorrectMacros rewrites known-malformed macro spellings to their canonical form.
// Applying it twice gives the same result as applying it once.
func CorrectMacros(text string) string {
	if !strings.Contains(text, `\`) {
		return text
	}
	return macroReplacer.Replace(text)
}
