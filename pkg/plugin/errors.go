package plugin

import "fmt"

// Stage names the part of a plugin's execution that failed.
type Stage string

const (
	StageTransform Stage = "transform"
	StageSetup     Stage = "setup"
	StageVisit     Stage = "visit"
	StageTeardown  Stage = "teardown"
)

// ExecutionError reports a failing plugin. It is fatal to the enclosing
// Apply/ApplyTransforms/ApplyVisitors call; the manager never retries.
type ExecutionError struct {
	Plugin string
	Stage  Stage
	Err    error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("plugin %q failed during %s: %v", e.Plugin, e.Stage, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
