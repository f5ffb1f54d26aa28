package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func newTestLogger(verbose, debug bool) (Logger, *bytes.Buffer, *bytes.Buffer) {
	var out, err bytes.Buffer
	return Logger{Verbose: verbose, Debug: debug, Out: &out, Err: &err}, &out, &err
}

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestInfofRespectsVerbosity(t *testing.T) {
	l, out, _ := newTestLogger(false, false)
	l.Infof("quiet")
	if out.Len() != 0 {
		t.Errorf("Infof wrote without verbose: %q", out.String())
	}

	l, out, _ = newTestLogger(true, false)
	l.Infof("hello %s", "world")
	if got := out.String(); got != "[info] hello world\n" {
		t.Errorf("Infof output = %q", got)
	}
}

func TestDebugfRequiresDebug(t *testing.T) {
	l, out, _ := newTestLogger(true, false)
	l.Debugf("hidden")
	if out.Len() != 0 {
		t.Errorf("Debugf wrote with verbose only: %q", out.String())
	}

	l, out, _ = newTestLogger(false, true)
	l.Debugf("shown")
	if got := out.String(); got != "[debug] shown\n" {
		t.Errorf("Debugf output = %q", got)
	}
}

func TestWarnfLevels(t *testing.T) {
	l, _, errBuf := newTestLogger(false, false)
	l.Warnf("suppressed")
	if errBuf.Len() != 0 {
		t.Errorf("Warnf wrote without verbose: %q", errBuf.String())
	}

	l.WarnfAlways("critical")
	if got := errBuf.String(); got != "[warn] critical\n" {
		t.Errorf("WarnfAlways output = %q", got)
	}
}

func TestErrorfAlwaysWrites(t *testing.T) {
	l, _, errBuf := newTestLogger(false, false)
	l.Errorf("boom: %d", 42)
	if got := errBuf.String(); got != "[error] boom: 42\n" {
		t.Errorf("Errorf output = %q", got)
	}
}

func TestErrorfAndReturnCarriesScrubbedText(t *testing.T) {
	l, _, errBuf := newTestLogger(false, false)

	err := l.ErrorfAndReturn("store rejected PASSWORD=%s", "hunter2")
	if err == nil {
		t.Fatal("expected an error")
	}
	if strings.Contains(err.Error(), "hunter2") {
		t.Errorf("returned error leaks the secret: %q", err.Error())
	}
	if !strings.Contains(errBuf.String(), "[REDACTED]") {
		t.Errorf("logged line not scrubbed: %q", errBuf.String())
	}
}

func TestFormattedLineIsScrubbed(t *testing.T) {
	l, out, _ := newTestLogger(true, false)
	l.Infof("loading %s", "API_KEY=sk_live_abc")
	got := out.String()
	if strings.Contains(got, "sk_live_abc") {
		t.Fatalf("secret survived formatting: %q", got)
	}
	if !strings.Contains(got, "API_KEY=[REDACTED]") {
		t.Errorf("expected redacted assignment, got %q", got)
	}
}

func TestStructArgumentsAreRedactedBeforeFormatting(t *testing.T) {
	type dbConfig struct {
		Host     string
		Password string
	}

	l, out, _ := newTestLogger(true, false)
	l.Infof("config: %v", dbConfig{Host: "localhost", Password: "pw"})
	got := out.String()

	if strings.Contains(got, "pw") && !strings.Contains(got, "[REDACTED]") {
		t.Fatalf("struct password leaked: %q", got)
	}
	if !strings.Contains(got, "localhost") {
		t.Errorf("neutral field lost: %q", got)
	}
	if !strings.Contains(got, "[REDACTED]") {
		t.Errorf("sensitive field not redacted: %q", got)
	}
}
