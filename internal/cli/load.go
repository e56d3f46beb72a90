package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mathvm/mvmir/internal/ir"
	"github.com/mathvm/mvmir/internal/irtext"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeReadFailed  = "E002" // File read error
	ErrCodeBadDocument = "E003" // Document parse or schema failure
	ErrCodeInvalidIR   = "E004" // Malformed program graph
	ErrCodeNotFound    = "E005" // Path or archive entry not found
	ErrCodeStoreFailed = "E006" // Archive database error
)

// LoadError represents an error that occurred while loading a program
// document.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadProgram reads a program document and lowers it to IR. The format
// is chosen by extension: .yaml/.yml documents are YAML, everything
// else is JSON.
func LoadProgram(path string) (*ir.Program, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("program document not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("reading %s: %v", path, err)}
	}

	var p *ir.Program
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		p, err = irtext.UnmarshalYAML(data)
	default:
		p, err = irtext.UnmarshalJSON(data)
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeBadDocument, Message: fmt.Sprintf("loading %s: %v", path, err)}
	}
	return p, nil
}
