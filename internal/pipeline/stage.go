package pipeline

import "fmt"

// Stage is one pure text transform in the math pipeline. Apply must not fail
// on malformed input; an error means the stage itself broke.
type Stage struct {
	Name  string
	Apply func(text string) (string, error)
}

// Stage names, in pipeline order.
const (
	StageCorrectMacros = "correct-macros"
	StageFractions     = "fractions"
	StageFormulas      = "formulas"
)

// MathStages returns the fixed stage order: macro correction, plain
// fractions, then the formula engine.
func MathStages(engine Engine) []Stage {
	return []Stage{
		{
			Name: StageCorrectMacros,
			Apply: func(text string) (string, error) {
				return CorrectMacros(text), nil
			},
		},
		{Name: StageFractions, Apply: TransformFractions},
		{Name: StageFormulas, Apply: engine.Apply},
	}
}

// StageError records which stage failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Run applies stages in order and stops at the first failure. Each stage
// receives the previous stage's output.
func Run(stages []Stage, text string) (string, error) {
	for _, s := range stages {
		out, err := s.Apply(text)
		if err != nil {
			return "", &StageError{Stage: s.Name, Err: err}
		}
		text = out
	}
	return text, nil
}
