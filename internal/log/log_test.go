package log

import (
	"bytes"
	"testing"

	. "github.com/onsi/gomega"
)

func TestLevelFromString(t *testing.T) {
	g := NewWithT(t)

	g.Expect(LevelFromString("debug")).To(Equal(LevelDebug))
	g.Expect(LevelFromString(" Warning ")).To(Equal(LevelWarn))
	g.Expect(LevelFromString("off")).To(Equal(LevelNone))
	g.Expect(LevelFromString("bogus")).To(Equal(LevelInfo))
}

func TestLoggerFiltersBelowLevel(t *testing.T) {
	g := NewWithT(t)

	var buf bytes.Buffer
	l := New(&buf, LevelWarn)
	l.Debugf("hidden %d", 1)
	l.Infof("hidden %d", 2)
	l.Warnf("shown %d", 3)
	l.Errorf("shown %d", 4)

	out := buf.String()
	g.Expect(out).NotTo(ContainSubstring("hidden"))
	g.Expect(out).To(ContainSubstring("WARN: shown 3"))
	g.Expect(out).To(ContainSubstring("ERROR: shown 4"))
}

func TestLoggerNoneAndNil(t *testing.T) {
	g := NewWithT(t)

	var buf bytes.Buffer
	l := New(&buf, LevelNone)
	l.Errorf("nothing")
	g.Expect(buf.Len()).To(BeZero())

	var nilLogger *Logger
	g.Expect(func() { nilLogger.Infof("ok") }).NotTo(Panic())
}
