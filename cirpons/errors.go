package cirpons

import "errors"

// ErrRunnerFailed wraps any error returned by a stephen.Runner invoked
// during Run.
var ErrRunnerFailed = errors.New("cirpons: stephen runner failed")

// ErrNoPresentation indicates New was given a nil presentation.
var ErrNoPresentation = errors.New("cirpons: no presentation")
