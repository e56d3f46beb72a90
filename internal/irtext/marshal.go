package irtext

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mathvm/mvmir/internal/ir"
)

// MarshalJSON renders a program as an indented JSON document.
func MarshalJSON(p *ir.Program) ([]byte, error) {
	return json.MarshalIndent(Encode(p), "", "  ")
}

// MarshalYAML renders a program as a YAML document.
func MarshalYAML(p *ir.Program) ([]byte, error) {
	return yaml.Marshal(Encode(p))
}

// UnmarshalJSON validates a JSON document against the embedded schema
// and lowers it into a program.
func UnmarshalJSON(data []byte) (*ir.Program, error) {
	if err := ValidateJSON(data); err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return Build(&doc)
}

// UnmarshalYAML lowers a YAML document into a program. The document is
// re-encoded as JSON for schema validation so both formats share one
// schema.
func UnmarshalYAML(data []byte) (*ir.Program, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	reencoded, err := json.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("re-encoding document: %w", err)
	}
	if err := ValidateJSON(reencoded); err != nil {
		return nil, err
	}
	return Build(&doc)
}
