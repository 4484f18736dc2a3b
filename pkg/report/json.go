package report

import (
	"encoding/json"
	"io"

	"github.com/aretw0/advent/pkg/domain"
)

// JSON writes one JSON object per result (NDJSON).
type JSON struct {
	enc   *json.Encoder
	tally Tally
}

// NewJSON creates a JSON reporter writing to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{enc: json.NewEncoder(w)}
}

func (j *JSON) Report(r domain.ExecutionResult) error {
	j.tally.Add(r)
	return j.enc.Encode(r)
}

func (j *JSON) Tally() Tally {
	return j.tally
}
