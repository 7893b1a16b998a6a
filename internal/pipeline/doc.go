// Package pipeline implements the math-notation rendering stages and the
// Markdown-to-HTML document pipeline built on top of them.
//
// The math stages are pure string transforms applied in a fixed order:
//   - Macro typo correction (\rac{ becomes \frac{)
//   - Plain fraction rewriting (2/5 becomes fraction markup)
//   - Formula engine (the fallback rule engine: $\frac{a}{b}$, $x^2$, $\sqrt{x}$)
//
// HasFormula is an independent, side-effect-free query callers use to skip
// rendering for ordinary text.
//
// The document side converts Markdown to HTML via Goldmark. A Goldmark
// extension routes $-delimited spans and plain text runs through the math
// stages after HTML escaping, so the stages only ever see escaped text and
// never touch link destinations, code spans, or code blocks.
//
// Error recovery is not handled here. The root mathmark package owns the
// fail-soft boundary that returns the original input when a stage fails.
package pipeline
