package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

func TestSetupTracing(t *testing.T) {
	for _, tc := range []struct {
		flag  string
		level tracing.TraceLevel
	}{
		{"Info", tracing.LevelInfo},
		{"debug", tracing.LevelDebug},
		{"Error", tracing.LevelError},
	} {
		trace2go.Teardown()
		if err := setupTracing(tc.flag); err != nil {
			t.Fatal(err)
		}
		for _, sel := range traceSelectors {
			if l := tracing.Select(sel).GetTraceLevel(); l != tc.level {
				t.Errorf("-trace %s: expected %s to trace at %s, have %s", tc.flag, sel, tc.level, l)
			}
		}
		if l := tracing.Select("root").GetTraceLevel(); l != tc.level {
			t.Errorf("-trace %s: expected root to trace at %s, have %s", tc.flag, tc.level, l)
		}
	}
	trace2go.Teardown()
}
