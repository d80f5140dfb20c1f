package ports

import "context"

// ScriptRunner executes player-authored script source and returns its
// combined output. Implementations enforce their own execution timeout.
type ScriptRunner interface {
	Run(ctx context.Context, source string) (string, error)
}
