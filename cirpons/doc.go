// doc.go records the error set of this package.
//
// Errors:
//
//	ErrRunnerFailed   - a stephen.Runner returned an error from Run
//	ErrNoPresentation - New was given a nil presentation
package cirpons
