package batch

// Observer receives action lifecycle notifications as the batch progresses.
// Actions run concurrently, so implementations must be safe for concurrent
// use. attempt counts scheduled re-attempts, starting at 1.
type Observer interface {
	Retrying(label string, err error, attempt int)
	Succeeded(label string)
	Failed(label string, err error)
}

type nopObserver struct{}

func (nopObserver) Retrying(string, error, int) {}
func (nopObserver) Succeeded(string)            {}
func (nopObserver) Failed(string, error)        {}
