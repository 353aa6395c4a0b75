package ecjperr

import (
	"errors"
	"testing"
)

func TestCodeOfUnwrapsWrappedErrors(t *testing.T) {
	cause := errors.New("disk gone")
	wrapped := Wrap(SyntaxError, "could not parse", cause)

	if got := CodeOf(wrapped); got != SyntaxError {
		t.Errorf("CodeOf(wrapped) = %v, want %v", got, SyntaxError)
	}
	if !errors.Is(wrapped, cause) {
		t.Errorf("errors.Is should see through Unwrap to the cause")
	}
}

func TestCodeOfNilIsNoError(t *testing.T) {
	if got := CodeOf(nil); got != NoError {
		t.Errorf("CodeOf(nil) = %v, want %v", got, NoError)
	}
}

func TestCodeOfPlainErrorIsGeneric(t *testing.T) {
	if got := CodeOf(errors.New("boom")); got != GenericError {
		t.Errorf("CodeOf(plain error) = %v, want %v", got, GenericError)
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := New(IndexOutOfBounds, "no such element")
	if !Is(err, IndexOutOfBounds) {
		t.Errorf("Is(err, IndexOutOfBounds) = false, want true")
	}
	if Is(err, SyntaxError) {
		t.Errorf("Is(err, SyntaxError) = true, want false")
	}
}

func TestWithContextIsFluentAndAdditive(t *testing.T) {
	err := New(GenericError, "bad thing").WithContext("pos", 12).WithContext("key", "name")
	if err.Context["pos"] != 12 || err.Context["key"] != "name" {
		t.Errorf("Context = %v, want both keys present", err.Context)
	}
}

func TestErrorCodeStringIsStable(t *testing.T) {
	cases := map[ErrorCode]string{
		NoError:              "no_error",
		SyntaxError:          "syntax_error",
		BracketsMissing:      "brackets_missing",
		NoSpaceInBufferValue: "no_space_in_buffer_value",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(code), got, want)
		}
	}
}
