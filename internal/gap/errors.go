package gap

import "fmt"

// Stage identifies which validation step produced an error.
type Stage string

const (
	StageNaming   Stage = "naming"
	StageReadme   Stage = "readme"
	StageMetadata Stage = "metadata"
	StageParse    Stage = "parse"
	StageSchema   Stage = "schema"
	StageSemantic Stage = "semantic"
)

// Error is a validation failure for one proposal directory. Validators return
// it up the stack; only the entry point decides on process termination.
type Error struct {
	Name    string // directory base name, e.g. "GAP-0042"
	Stage   Stage
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

func newError(name string, stage Stage, format string, args ...interface{}) *Error {
	return &Error{Name: name, Stage: stage, Message: fmt.Sprintf(format, args...)}
}
