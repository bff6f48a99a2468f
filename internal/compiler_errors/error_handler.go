package compiler_errors

import (
	"fmt"
	"io"
)

type CompilerError interface {
	error
	GetMessage() string
	GetPosition() Position
}

type ErrorHandler interface {
	AddError(err CompilerError)
	FailNow()
	Err() error
}

// bailout is the panic value FailNow uses to unwind to Catch.
type bailout struct{}

type CompilerErrorHandler struct {
	errors []CompilerError
}

func NewErrorHandler() ErrorHandler {
	return &CompilerErrorHandler{
		errors: make([]CompilerError, 0),
	}
}

func (eh *CompilerErrorHandler) AddError(err CompilerError) {
	eh.errors = append(eh.errors, err)
}

// FailNow stops the current compilation stage. Only the first recorded error
// is surfaced; the stage is expected to defer Catch.
func (eh *CompilerErrorHandler) FailNow() {
	panic(bailout{})
}

func (eh *CompilerErrorHandler) Err() error {
	if len(eh.errors) == 0 {
		return nil
	}

	return eh.errors[0]
}

// Catch recovers a FailNow raised below it and stores the handler's error in
// errp. Any other panic is re-raised.
func Catch(eh ErrorHandler, errp *error) {
	r := recover()
	if r == nil {
		return
	}

	if _, ok := r.(bailout); !ok {
		panic(r)
	}

	*errp = eh.Err()
}

func Report(w io.Writer, fileName string, err error) {
	fmt.Fprintln(w, "Build failed with errors:")

	if ce, ok := err.(CompilerError); ok {
		pos := ce.GetPosition()
		fmt.Fprintf(w, "ERROR: %s:%d:%d: %s\n", fileName, pos.Line, pos.Column, ce.GetMessage())
		if se, ok := ce.(*SyntaxError); ok && se.Snippet != "" {
			fmt.Fprintf(w, "    %s\n", se.Snippet)
		}
		return
	}

	fmt.Fprintf(w, "ERROR: %s: %s\n", fileName, err)
}
