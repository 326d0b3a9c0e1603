// doc.go notes that this package declares no errors of its own: it is
// interfaces and a pure helper (IsLeftFactor) over them. Errors originate
// from whatever concrete Runner implementation a caller supplies.
package stephen
