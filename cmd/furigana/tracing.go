package main

import (
	"strconv"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// traceSelectors are the tracer keys of all packages of the module.
var traceSelectors = []string{
	"furigana",
	"furigana.cli",
	"furigana.jmdict",
	"furigana.kanjidic",
	"furigana.restext",
}

// traceConfig is the configuration handed to the root tracer. It holds
// the adapter key and a trace level per selector.
type traceConfig map[string]string

func (c traceConfig) InitDefaults()               {}
func (c traceConfig) IsSet(key string) bool       { _, ok := c[key]; return ok }
func (c traceConfig) GetString(key string) string { return c[key] }
func (c traceConfig) GetInt(key string) int       { n, _ := strconv.Atoi(c[key]); return n }
func (c traceConfig) GetBool(key string) bool     { b, _ := strconv.ParseBool(c[key]); return b }
func (c traceConfig) IsInteractive() bool         { return false }

// setupTracing routes all tracers to the Go standard logger, at the given
// level.
func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	c := traceConfig{
		"tracing.adapter": "go",
		"tracelevel.root": level,
	}
	for _, sel := range traceSelectors {
		c["tracelevel."+sel] = level
	}
	if err := trace2go.ConfigureRoot(c, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
