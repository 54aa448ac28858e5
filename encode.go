package projector

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	json "github.com/goccy/go-json"
)

// Scenario files are plain JSON documents, meant to be written by hand and
// kept under version control. Unknown fields are rejected so that typos do not
// silently fall back to defaults.

// DecodeScenario reads a scenario from r and validates it.
func DecodeScenario(r io.Reader) (*Scenario, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadScenario decodes the scenario file at path.
func LoadScenario(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := DecodeScenario(f)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return s, nil
}

// EncodeScenario writes s as indented JSON.
func EncodeScenario(w io.Writer, s *Scenario) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding scenario: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// EncodeProjection writes p as indented JSON.
func EncodeProjection(w io.Writer, p *Projection) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding projection: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// jbracket is the JSON form of a Bracket: JSON has no infinity, so an absent
// upper bound means unbounded.
type jbracket struct {
	Lower float64  `json:"lower"`
	Upper *float64 `json:"upper,omitempty"`
	Rate  float64  `json:"rate"`
}

// MarshalJSON implements the json.Marshaler interface.
func (b Bracket) MarshalJSON() ([]byte, error) {
	jb := jbracket{Lower: b.Lower, Rate: b.Rate}
	if !math.IsInf(b.Upper, 1) {
		jb.Upper = &b.Upper
	}
	return json.Marshal(jb)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (b *Bracket) UnmarshalJSON(data []byte) error {
	var jb jbracket
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&jb); err != nil {
		return err
	}
	b.Lower, b.Rate = jb.Lower, jb.Rate
	b.Upper = math.Inf(1)
	if jb.Upper != nil {
		b.Upper = *jb.Upper
	}
	return nil
}
