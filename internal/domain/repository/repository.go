package repository

// WriteResult reports whether a write reached the remote store or only the
// local mirror. Writes never fail outright; Message carries the degraded
// note when Remote is false.
type WriteResult struct {
	Remote  bool
	Message string
}
