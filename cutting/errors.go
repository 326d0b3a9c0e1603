package cutting

import "errors"

// ErrRunnerFailed wraps any error returned by a stephen.Runner invoked
// during Run.
var ErrRunnerFailed = errors.New("cutting: stephen runner failed")
