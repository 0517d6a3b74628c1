package logger_test

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/pavetool/pave/internal/adapters/logger"
)

// captureStderr captures output written to os.Stderr during fn.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	originalStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stderr = w

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	_ = w.Close()
	output := <-done
	_ = r.Close()
	os.Stderr = originalStderr

	return output
}

func TestLogger_Info(t *testing.T) {
	output := captureStderr(t, func() {
		// Create the logger inside the capture so it uses the redirected stderr.
		lg := logger.New()
		lg.Info("some message")
	})

	if !strings.Contains(output, "some message") {
		t.Errorf("expected output to contain 'some message', got: %s", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("expected output to contain 'INFO', got: %s", output)
	}
}

func TestLogger_Warn(t *testing.T) {
	output := captureStderr(t, func() {
		lg := logger.New()
		lg.Warn("some warning")
	})

	if !strings.Contains(output, "some warning") {
		t.Errorf("expected output to contain 'some warning', got: %s", output)
	}
	if !strings.Contains(output, "WARN") {
		t.Errorf("expected output to contain 'WARN', got: %s", output)
	}
}

func TestLogger_Error(t *testing.T) {
	output := captureStderr(t, func() {
		lg := logger.New()
		lg.Error(os.ErrPermission)
	})

	if !strings.Contains(output, "permission denied") {
		t.Errorf("expected output to contain 'permission denied', got: %s", output)
	}
	if !strings.Contains(output, "ERROR") {
		t.Errorf("expected output to contain 'ERROR', got: %s", output)
	}
}
