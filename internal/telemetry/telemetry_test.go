package telemetry

import "testing"

func TestNamedTimerStartAndStopDoNotPanic(t *testing.T) {
	timer := NewNamedTimer("test phase")
	timer.Stop()
}

func TestLoggerIsUsable(t *testing.T) {
	Logger.Debug().Str("key", "value").Msg("test message")
}
