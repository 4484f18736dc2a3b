package report

import "github.com/aretw0/advent/pkg/domain"

// Reporter consumes execution results one at a time.
type Reporter interface {
	Report(result domain.ExecutionResult) error
	Tally() Tally
}

// Tally counts the outcomes of a run.
type Tally struct {
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Add records a result.
func (t *Tally) Add(r domain.ExecutionResult) {
	if r.OK() {
		t.Passed++
	} else {
		t.Failed++
	}
}

// Total is the number of recorded results.
func (t Tally) Total() int {
	return t.Passed + t.Failed
}

// OK reports whether every recorded result succeeded.
// An empty run is successful.
func (t Tally) OK() bool {
	return t.Failed == 0
}
