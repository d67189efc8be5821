package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agbru/ratcalc/internal/config"
	apperrors "github.com/agbru/ratcalc/internal/errors"
	"github.com/agbru/ratcalc/internal/logging/mocks"
	"github.com/golang/mock/gomock"
)

func newTestApp(t *testing.T, args ...string) (*Application, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	app, err := New(append([]string{"ratcalc"}, args...), &bytes.Buffer{}, WithLogger(logger))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return app, logger
}

func TestRun_WritesReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "output.txt")
	app, logger := newTestApp(t, "-o", path)
	logger.EXPECT().Info("report written", gomock.Any()).Times(1)

	var out bytes.Buffer
	if code := app.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, want %d", code, apperrors.ExitSuccess)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !strings.Contains(string(content), "Sequence of rationals: [1/2 2/1]") {
		t.Errorf("unexpected report content:\n%s", content)
	}
	if !strings.Contains(out.String(), "Results written to "+path) {
		t.Errorf("missing confirmation, got %q", out.String())
	}
}

func TestRun_Quiet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.txt")
	app, logger := newTestApp(t, "-q", "-o", path)
	logger.EXPECT().Info("report written", gomock.Any()).Times(1)

	var out bytes.Buffer
	if code := app.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}
	if out.Len() != 0 {
		t.Errorf("quiet mode should print nothing, got %q", out.String())
	}
}

func TestRun_Stdout(t *testing.T) {
	app, _ := newTestApp(t, "--stdout")

	var out bytes.Buffer
	if code := app.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}
	if !strings.HasPrefix(out.String(), "1. Zero denominator:") {
		t.Errorf("expected report on stdout, got %q", out.String())
	}
}

func TestRun_StdoutLogsSectionCount(t *testing.T) {
	var errOut bytes.Buffer
	app, err := New([]string{"ratcalc", "--stdout", "-v", "--log-format", config.LogFormatJSON}, &errOut)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if code := app.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}
	logs := errOut.String()
	if !strings.Contains(logs, `"message":"report rendered"`) || !strings.Contains(logs, `"sections":4`) {
		t.Errorf("expected debug entry with section count, got %q", logs)
	}
}

func TestRun_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	app, logger := newTestApp(t, "-o", filepath.Join(blocker, "output.txt"))
	logger.EXPECT().Error("failed to write report", gomock.Any(), gomock.Any()).Times(1)

	if code := app.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitErrorReport {
		t.Errorf("Run() = %d, want %d", code, apperrors.ExitErrorReport)
	}
}

func TestRun_CanceledContext(t *testing.T) {
	app, logger := newTestApp(t, "-o", filepath.Join(t.TempDir(), "output.txt"))
	logger.EXPECT().Error("run aborted", context.Canceled).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if code := app.Run(ctx, &bytes.Buffer{}); code != apperrors.ExitErrorGeneric {
		t.Errorf("Run() = %d, want %d", code, apperrors.ExitErrorGeneric)
	}
}

func TestNew_Errors(t *testing.T) {
	t.Run("help", func(t *testing.T) {
		_, err := New([]string{"ratcalc", "--help"}, &bytes.Buffer{})
		if !IsHelpError(err) {
			t.Errorf("expected help error, got %v", err)
		}
	})

	t.Run("invalid config is reported", func(t *testing.T) {
		var errOut bytes.Buffer
		_, err := New([]string{"ratcalc", "--log-format", "xml"}, &errOut)
		if err == nil || IsHelpError(err) {
			t.Fatalf("expected config error, got %v", err)
		}
		if !strings.Contains(errOut.String(), "unknown log format") {
			t.Errorf("error not reported: %q", errOut.String())
		}
	})
}

func TestNew_DefaultLogger(t *testing.T) {
	var errOut bytes.Buffer
	app, err := New([]string{"ratcalc", "--log-format", config.LogFormatJSON, "-o", filepath.Join(t.TempDir(), "r.txt")}, &errOut)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if code := app.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}
	if !strings.Contains(errOut.String(), `"message":"report written"`) {
		t.Errorf("expected JSON log entry, got %q", errOut.String())
	}
}

func TestVersion(t *testing.T) {
	if !HasVersionFlag([]string{"-q", "--version"}) {
		t.Error("HasVersionFlag should detect --version")
	}
	if HasVersionFlag([]string{"-v"}) {
		t.Error("-v means verbose, not version")
	}
	var out bytes.Buffer
	PrintVersion(&out)
	if !strings.HasPrefix(out.String(), "ratcalc "+Version) {
		t.Errorf("unexpected version line %q", out.String())
	}
}
