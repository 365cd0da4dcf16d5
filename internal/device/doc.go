// Package device runs the access-control endpoint: it reads card UIDs from
// the attached reader, reports them to the registry when reachable, decides
// access locally, and renders the verdict on the operator display.
package device
