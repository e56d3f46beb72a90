package ir

import (
	"errors"
	"fmt"
)

// StructError reports a structural defect in the IR: a violated
// construction invariant or a well-formedness failure detected by the
// validator. Structural errors are never silently repaired; they carry
// enough context (code, function id, block name) to locate the fault.
type StructError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// FunctionID identifies the affected function, when known.
	FunctionID uint16

	// Block names the affected block, when applicable.
	Block string
}

// ErrorCode categorizes structural errors.
type ErrorCode string

const (
	// ErrCodeDuplicateTransition indicates a link operation on a block
	// that already has a transition attached.
	ErrCodeDuplicateTransition ErrorCode = "DUPLICATE_TRANSITION"

	// ErrCodeDuplicateFunctionID indicates two functions sharing an id
	// within one program.
	ErrCodeDuplicateFunctionID ErrorCode = "DUPLICATE_FUNCTION_ID"

	// ErrCodeUnresolvedJumpTarget indicates a transition whose target
	// block is not registered with the owning function.
	ErrCodeUnresolvedJumpTarget ErrorCode = "UNRESOLVED_JUMP_TARGET"

	// ErrCodeUnresolvedCallTarget indicates a call whose function id is
	// not bound in the owning program.
	ErrCodeUnresolvedCallTarget ErrorCode = "UNRESOLVED_CALL_TARGET"

	// ErrCodeIncompleteFunction indicates a reachable block with no
	// attached transition at the point well-formedness is checked.
	ErrCodeIncompleteFunction ErrorCode = "INCOMPLETE_FUNCTION"
)

// Error implements the error interface.
func (e *StructError) Error() string {
	if e.Block != "" {
		return fmt.Sprintf("%s: %s (function=%d, block=%s)", e.Code, e.Message, e.FunctionID, e.Block)
	}
	return fmt.Sprintf("%s: %s (function=%d)", e.Code, e.Message, e.FunctionID)
}

// CodeOf extracts the structural error code from err, or "" if err is not
// a StructError. Uses errors.As to handle wrapped errors.
func CodeOf(err error) ErrorCode {
	var se *StructError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsDuplicateTransition reports whether err is a duplicate-transition
// error.
func IsDuplicateTransition(err error) bool {
	return CodeOf(err) == ErrCodeDuplicateTransition
}

// IsDuplicateFunctionID reports whether err is a duplicate-function-id
// error.
func IsDuplicateFunctionID(err error) bool {
	return CodeOf(err) == ErrCodeDuplicateFunctionID
}

// NewDuplicateTransition creates a StructError for a second link attempt
// on an already-linked block.
func NewDuplicateTransition(block string) *StructError {
	return &StructError{
		Code:    ErrCodeDuplicateTransition,
		Message: "block already has a transition attached",
		Block:   block,
	}
}

// NewDuplicateFunctionID creates a StructError for a function id already
// bound in the program.
func NewDuplicateFunctionID(id uint16) *StructError {
	return &StructError{
		Code:       ErrCodeDuplicateFunctionID,
		Message:    "function id already present in program",
		FunctionID: id,
	}
}

// NewUnresolvedJumpTarget creates a StructError for a transition target
// outside the owning function.
func NewUnresolvedJumpTarget(functionID uint16, block, target string) *StructError {
	return &StructError{
		Code:       ErrCodeUnresolvedJumpTarget,
		Message:    fmt.Sprintf("jump target %q is not a block of this function", target),
		FunctionID: functionID,
		Block:      block,
	}
}

// NewUnresolvedCallTarget creates a StructError for a callee id not bound
// in the program.
func NewUnresolvedCallTarget(functionID uint16, block string, callee uint16) *StructError {
	return &StructError{
		Code:       ErrCodeUnresolvedCallTarget,
		Message:    fmt.Sprintf("call target %d is not a function of this program", callee),
		FunctionID: functionID,
		Block:      block,
	}
}

// NewIncompleteFunction creates a StructError for a reachable block with
// no transition.
func NewIncompleteFunction(functionID uint16, block string) *StructError {
	return &StructError{
		Code:       ErrCodeIncompleteFunction,
		Message:    "reachable block has no transition attached",
		FunctionID: functionID,
		Block:      block,
	}
}
