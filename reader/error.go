package reader

import "fmt"

// SyntaxError is the single fatal error kind raised anywhere in the
// tokenizer/parser pipeline. Line and Column are 0-based internally;
// Error() reports them 1-based for human consumption.
type SyntaxError struct {
	Line    int
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line+1, e.Column+1, e.Message)
}

// Expected builds a "Expected '<sym>'"-shaped SyntaxError at the reader's
// current position.
func (r *Reader) Expected(what string) *SyntaxError {
	return &SyntaxError{Line: r.line, Column: r.column, Message: "Expected " + what}
}

// Unexpected builds an "Unexpected '<sym>'"-shaped SyntaxError at the
// reader's current position.
func (r *Reader) Unexpected(what string) *SyntaxError {
	return &SyntaxError{Line: r.line, Column: r.column, Message: "Unexpected " + what}
}

// Errorf builds a SyntaxError with an arbitrary message at the reader's
// current position.
func (r *Reader) Errorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Line: r.line, Column: r.column, Message: fmt.Sprintf(format, args...)}
}
