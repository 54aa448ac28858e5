package projector

import (
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	json "github.com/goccy/go-json"
)

// Query evaluates a JSONPath expression on the JSON form of the projection,
// like "$.final.deflated" or "$.snapshots[10:20].total".
//
// Numbers come back as float64, objects as map[string]any and arrays as
// []any.
func (p *Projection) Query(path string) (any, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding projection: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding projection: %w", err)
	}
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", path, err)
	}
	return v, nil
}
