package ports

// Receives periodic progress from a long-running search.
type ProgressObserver interface {
	// Percent is 100*(done)/total at the time of the call.
	Progress(done, total int, percent float64)
}
