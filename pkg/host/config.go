package host

import (
	"io"
	"time"
)

// Exporter writes a run summary in some artifact format.
type Exporter interface {
	Name() string
}

// Analyser inspects a finished run and reports conclusions.
type Analyser interface {
	ID() string
}

// Validator checks a run configuration before execution.
type Validator interface {
	ID() string
	TreatsWarningsAsErrors() bool
}

// Orderer decides the execution and summary order of benchmarks.
type Orderer interface {
	Name() string
}

// Job is one execution environment a benchmark runs under.
type Job struct {
	ID         string
	Runtime    string
	LaunchRuns int
}

// Options are bit flags toggling runner behaviour.
type Options uint32

const (
	OptionJoinSummary Options = 1 << iota
	OptionKeepFiles
	OptionStopOnFirstError
	OptionDisableOptimizationsValidator
)

// Config is the runner configuration contract.
type Config interface {
	Loggers() []Logger
	Exporters() []Exporter
	Analysers() []Analyser
	Validators() []Validator
	Jobs() []Job
	Orderer() Orderer
	Culture() string
	ArtifactsPath() string
	BuildTimeout() time.Duration
	Options() Options
}

type named string

func (n named) Name() string { return string(n) }
func (n named) ID() string   { return string(n) }

type validator struct {
	named
	strict bool
}

func (v validator) TreatsWarningsAsErrors() bool { return v.strict }

// DefaultConfig is the runner's stock configuration.
type DefaultConfig struct {
	loggers []Logger
}

// NewDefaultConfig creates the stock configuration with a console logger on out.
func NewDefaultConfig(out io.Writer) *DefaultConfig {
	return &DefaultConfig{loggers: []Logger{NewConsoleLogger(out)}}
}

func (c *DefaultConfig) Loggers() []Logger { return c.loggers }

func (c *DefaultConfig) Exporters() []Exporter {
	return []Exporter{named("csv"), named("html"), named("markdown-github")}
}

func (c *DefaultConfig) Analysers() []Analyser {
	return []Analyser{named("EnvironmentAnalyser"), named("OutliersAnalyser"), named("MinIterationTimeAnalyser")}
}

func (c *DefaultConfig) Validators() []Validator {
	return []Validator{
		validator{named: "BaselineValidator", strict: true},
		validator{named: "JitOptimizationsValidator", strict: false},
	}
}

func (c *DefaultConfig) Jobs() []Job { return []Job{{ID: "DefaultJob"}} }

func (c *DefaultConfig) Orderer() Orderer { return named("DefaultOrderer") }

func (c *DefaultConfig) Culture() string { return "" }

func (c *DefaultConfig) ArtifactsPath() string { return "BenchmarkDotNet.Artifacts" }

func (c *DefaultConfig) BuildTimeout() time.Duration { return 120 * time.Second }

func (c *DefaultConfig) Options() Options { return 0 }
