package seek

// Change describes a new value of a control.
type Change struct {
	Value    int
	FromUser bool // set for changes made by dragging
}

// Listener is called synchronously, in order, for every change.
type Listener func(Change)

// Chan returns a Listener sending changes on ch. Sends block, so ch should be
// buffered or drained by another goroutine.
func Chan(ch chan<- Change) Listener {
	return func(c Change) { ch <- c }
}
