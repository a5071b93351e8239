package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestRecoverConvertsPanic(t *testing.T) {
	testCases := []struct {
		name       string
		panicValue interface{}
		wantMsg    string
	}{
		{"string panic", "column buffer out of range", "panic in Lasso.Fit: column buffer out of range"},
		{"error panic", errors.New("matrix dimension error"), "panic in Lasso.Fit: matrix dimension error"},
		{"int panic", 42, "panic in Lasso.Fit: 42"},
		{"nil panic", nil, "panic in Lasso.Fit: panic called with nil argument"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testFunc := func() (err error) {
				defer Recover(&err, "Lasso.Fit")
				panic(tc.panicValue)
			}

			err := testFunc()
			if err == nil {
				t.Fatal("Expected error from recovered panic, got nil")
			}

			var panicErr *PanicError
			if !errors.As(err, &panicErr) {
				t.Fatalf("Expected PanicError, got %T", err)
			}
			if panicErr.Operation != "Lasso.Fit" {
				t.Errorf("Operation = %q, want %q", panicErr.Operation, "Lasso.Fit")
			}
			if panicErr.StackTrace == "" {
				t.Error("Expected non-empty stack trace")
			}
			if panicErr.Error() != tc.wantMsg {
				t.Errorf("Error() = %q, want %q", panicErr.Error(), tc.wantMsg)
			}
		})
	}
}

func TestRecoverWithoutPanic(t *testing.T) {
	testFunc := func() (err error) {
		defer Recover(&err, "Lasso.Predict")
		return nil
	}

	if err := testFunc(); err != nil {
		t.Fatalf("Expected no error when no panic occurs, got: %v", err)
	}
}

func TestRecoverPreservesExistingError(t *testing.T) {
	originalErr := fmt.Errorf("validation failed")

	testFunc := func() (err error) {
		defer Recover(&err, "Lasso.Fit")
		err = originalErr
		panic("panic after error")
	}

	err := testFunc()
	if err == nil {
		t.Fatal("Expected error from recovered panic with existing error, got nil")
	}

	errMsg := err.Error()
	for _, want := range []string{"panic in Lasso.Fit", "panic after error", "validation failed"} {
		if !strings.Contains(errMsg, want) {
			t.Errorf("Error message should contain %q: %s", want, errMsg)
		}
	}

	if !errors.Is(err, originalErr) {
		t.Error("Should be able to identify original error with errors.Is")
	}
}

func TestSafeExecute(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		if err := SafeExecute("scale features", func() error { return nil }); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
	})

	t.Run("function error passes through", func(t *testing.T) {
		originalErr := fmt.Errorf("function error")
		err := SafeExecute("scale features", func() error { return originalErr })
		if err != originalErr {
			t.Fatalf("Expected original error, got: %v", err)
		}
	})

	t.Run("panic becomes PanicError", func(t *testing.T) {
		err := SafeExecute("coordinate update", func() error {
			panic("index out of range")
		})
		if err == nil {
			t.Fatal("Expected error from panic, got nil")
		}

		var panicErr *PanicError
		if !errors.As(err, &panicErr) {
			t.Fatalf("Expected PanicError, got %T", err)
		}
		if panicErr.PanicValue != "index out of range" {
			t.Errorf("PanicValue = %v, want %q", panicErr.PanicValue, "index out of range")
		}
	})
}

func TestPanicErrorFormat(t *testing.T) {
	panicErr := NewPanicError("Lasso.Fit", "test value")

	wantMsg := "panic in Lasso.Fit: test value"
	if panicErr.Error() != wantMsg {
		t.Errorf("Error() = %q, want %q", panicErr.Error(), wantMsg)
	}

	str := panicErr.String()
	if !strings.Contains(str, "Stack trace:") {
		t.Error("String() should include stack trace information")
	}
	if !strings.Contains(str, wantMsg) {
		t.Error("String() should include basic error information")
	}

	if panicErr.Unwrap() != nil {
		t.Error("PanicError.Unwrap() should return nil")
	}
}

func BenchmarkRecoverNoPanic(b *testing.B) {
	for i := 0; i < b.N; i++ {
		func() (err error) {
			defer Recover(&err, "BenchmarkOp")
			return nil
		}()
	}
}
