package diag

import (
	"testing"

	mp "github.com/unkn0wn-root/packmsg"
	"github.com/unkn0wn-root/packmsg/codec"
)

type recordingLogger struct {
	debugs, errors []string
}

func (l *recordingLogger) Debug(msg string, f Fields) { l.debugs = append(l.debugs, msg) }
func (l *recordingLogger) Info(msg string, f Fields)  {}
func (l *recordingLogger) Warn(msg string, f Fields)  {}
func (l *recordingLogger) Error(msg string, f Fields) { l.errors = append(l.errors, msg) }

func TestTraceLogsSuccess(t *testing.T) {
	log := &recordingLogger{}
	n, err := Trace(codec.Int, mp.Int(5), log)
	if err != nil || n != 5 {
		t.Fatalf("got %v, %v", n, err)
	}
	if len(log.debugs) != 1 || len(log.errors) != 0 {
		t.Fatalf("got debugs=%v errors=%v", log.debugs, log.errors)
	}
}

func TestTraceLogsFailure(t *testing.T) {
	log := &recordingLogger{}
	_, err := Trace(codec.Int, mp.Str("nope"), log)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if len(log.errors) != 1 {
		t.Fatalf("got errors=%v", log.errors)
	}
}

func TestNopLoggerDiscardsEverything(t *testing.T) {
	var log NopLogger
	_, err := Trace(codec.Int, mp.Str("nope"), log)
	if err == nil {
		t.Fatal("expected decode error")
	}
}
