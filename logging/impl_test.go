package logging

import (
	"io"
	"os"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.viam.com/test"
)

func TestObservedLevels(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)

	logger.Debug("debug", 1)
	logger.Infof("info %d", 2)
	logger.Warnw("warn", "segments", 3, "parallel", true)
	logger.Error("error")
	test.That(t, logs.Len(), test.ShouldEqual, 4)

	entries := logs.TakeAll()
	test.That(t, entries[0].Message, test.ShouldEqual, "debug1")
	test.That(t, entries[0].Level, test.ShouldEqual, zapcore.DebugLevel)
	test.That(t, entries[1].Message, test.ShouldEqual, "info 2")
	test.That(t, entries[2].ContextMap(), test.ShouldResemble, map[string]interface{}{"segments": int64(3), "parallel": true})
	test.That(t, entries[3].Level, test.ShouldEqual, zapcore.ErrorLevel)

	// the caller is the test, not the logging package
	test.That(t, entries[1].Caller.File, test.ShouldEndWith, "impl_test.go")

	logger.SetLevel(WARN)
	test.That(t, logger.GetLevel(), test.ShouldEqual, WARN)
	logger.Debugf("dropped %v", 1)
	logger.Infow("dropped")
	logger.Warnf("kept")
	test.That(t, logs.Len(), test.ShouldEqual, 1)
}

func TestUnpairedKey(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	logger.Infow("odd", "key")
	test.That(t, logs.Len(), test.ShouldEqual, 1)
	test.That(t, logs.All()[0].ContextMap()["key"], test.ShouldEqual, "unpaired log key")
}

func TestSublogger(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	sub := logger.Sublogger("distance")
	sub.Info("hi")
	test.That(t, logs.All()[0].LoggerName, test.ShouldEqual, "distance")

	subsub := sub.Sublogger("segment")
	subsub.Info("hi")
	test.That(t, logs.All()[1].LoggerName, test.ShouldEqual, "distance.segment")

	// sublogger levels are independent of the parent
	sub.SetLevel(ERROR)
	logger.Info("parent")
	test.That(t, logs.Len(), test.ShouldEqual, 3)
}

func TestAsZap(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	logger.SetLevel(INFO)
	zl := logger.AsZap()
	zl.Debug("filtered")
	zl.Infow("through zap", "k", "v")
	test.That(t, logs.Len(), test.ShouldEqual, 1)
	test.That(t, logs.All()[0].Message, test.ShouldEqual, "through zap")
	test.That(t, logger.Sync(), test.ShouldBeNil)
}

func TestLevelFromString(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected Level
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{"Warn", WARN},
		{"warning", WARN},
		{"error", ERROR},
	} {
		level, err := LevelFromString(tc.input)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, level, test.ShouldEqual, tc.expected)
		test.That(t, level.AsZap(), test.ShouldEqual, zapcore.Level(tc.expected))
	}

	_, err := LevelFromString("loud")
	test.That(t, err, test.ShouldBeError, `unknown log level: "loud"`)
	test.That(t, Level(7).String(), test.ShouldEqual, "Unknown")
}

func TestGlobal(t *testing.T) {
	orig := Global()
	defer ReplaceGlobal(orig)

	logger := NewTestLogger(t)
	ReplaceGlobal(logger)
	test.That(t, Global(), test.ShouldEqual, logger)
}

func TestStdoutAppenderPipe(t *testing.T) {
	reader, writer, err := os.Pipe()
	test.That(t, err, test.ShouldBeNil)
	stdout := os.Stdout
	os.Stdout = writer
	defer func() {
		os.Stdout = stdout
	}()

	logger := NewLogger("pipe")
	logger.Infow("closest points", "distance", 5)
	test.That(t, logger.Sync(), test.ShouldBeNil)

	test.That(t, writer.Close(), test.ShouldBeNil)
	out, err := io.ReadAll(reader)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(out), test.ShouldContainSubstring, "closest points")
	test.That(t, string(out), test.ShouldContainSubstring, `"distance"`)
}
