package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// ErrFractionTransform indicates the plain-fraction stage could not complete.
var ErrFractionTransform = errors.New("fraction transform failed")

// Delimiter brackets an inline formula region; doubled it brackets a block.
const Delimiter = "$"

// matchTimeout bounds a single regexp2 evaluation. Lookaround patterns can
// backtrack, and a runaway match must surface as an error rather than a hang.
const matchTimeout = time.Second

// plainFractionPattern matches digit/digit with maximal digit runs. A run that
// touches the delimiter on its outer side is skipped instead of shortened, so
// $12/34$ never degrades into 1 + fraction(2, 3) + 4.
var plainFractionPattern = mustCompileTimed(`(?<![$0-9])([0-9]+)/([0-9]+)(?![$0-9])`)

func mustCompileTimed(expr string) *regexp2.Regexp {
	re := regexp2.MustCompile(expr, regexp2.None)
	re.MatchTimeout = matchTimeout
	return re
}

// TransformFractions rewrites bare numerator/denominator sequences outside
// formula delimiters into fraction markup.
//
// Only the single character on each side of the match is checked for the
// delimiter. A fraction deeper inside a formula, as in $x + 1/2 + y$, is still
// rewritten. Dates such as 3/4/2024 match partially; the leading 3/4 becomes
// a fraction and /2024 is kept.
func TransformFractions(text string) (string, error) {
	if !strings.Contains(text, "/") {
		return text, nil
	}
	out, err := plainFractionPattern.ReplaceFunc(text, func(m regexp2.Match) string {
		return fractionMarkup(m.GroupByNumber(1).String(), m.GroupByNumber(2).String())
	}, -1, -1)
	if err != nil {
		return text, fmt.Errorf("%w: %v", ErrFractionTransform, err)
	}
	return out, nil
}
