package oracle

import "sync"

// Future is a single-shot result slot for one oracle query.
// The first Resolve or Reject wins; later calls are ignored.
type Future struct {
	once sync.Once
	done chan struct{}
	val  *Statistics
	err  error
}

func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Resolve completes the future with statistics.
func (f *Future) Resolve(stats *Statistics) {
	f.complete(stats, nil)
}

// Reject completes the future with an error.
func (f *Future) Reject(err error) {
	f.complete(nil, err)
}

// Handler adapts the future to an oracle ResultHandler.
func (f *Future) Handler() ResultHandler {
	return func(stats *Statistics, err error) {
		if err != nil {
			f.Reject(err)
			return
		}
		f.Resolve(stats)
	}
}

func (f *Future) complete(stats *Statistics, err error) {
	f.once.Do(func() {
		f.val = stats
		f.err = err
		close(f.done)
	})
}

// Done is closed once the future has an outcome.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future is completed and returns its outcome.
func (f *Future) Await() (*Statistics, error) {
	<-f.done
	return f.val, f.err
}
