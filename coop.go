package matroska

// Cooperative I/O driver.
//
// spec.md §4.3/§5 calls for a second, cooperative family of Reader/Writer
// implementations whose operations are "suspendable computations" with no
// internal threads and suspension only at I/O boundaries. Go has no
// stackful coroutines, so the idiomatic way to get that shape without
// introducing uncoordinated concurrency is a single background goroutine
// per in-flight decode that blocks on a channel handshake between I/O
// calls — the caller's Scheduler drives it one step at a time, so at most
// one goroutine is ever runnable. spec.md §9 explicitly allows deriving
// one driver from the other "by macro, code generation, or trait
// abstraction"; here the abstraction is simply that CoopReader/CoopWriter
// satisfy the same Reader/Writer interfaces the blocking driver does, so
// every Element implementation in this package already works under both
// without change.

// Task runs a cooperative decode/encode body on a private goroutine,
// suspending at each CoopReader/CoopWriter call until the owning
// Scheduler calls Step.
type Task struct {
	resume  chan struct{}
	done    chan error
	yieldCh chan struct{}
	result  error
	over    bool
}

// StartTask launches fn on its own goroutine. fn should use the
// CoopReader/CoopWriter handed to it (or threaded through by the caller)
// for all I/O; ordinary computation between I/O calls never suspends.
func StartTask(fn func(y *Yielder) error) *Task {
	t := &Task{
		resume:  make(chan struct{}),
		done:    make(chan error, 1),
		yieldCh: make(chan struct{}),
	}
	y := &Yielder{t: t, yieldCh: t.yieldCh}
	go func() {
		<-t.resume // wait for the first Step before doing anything
		t.done <- fn(y)
	}()
	return t
}

// Step resumes the task until it either suspends again or finishes.
// Step reports whether the task has completed, and its error if so.
func (t *Task) Step() (finished bool, err error) {
	if t.over {
		return true, t.result
	}
	t.resume <- struct{}{}
	select {
	case err = <-t.done:
		t.over = true
		t.result = err
		return true, err
	case <-t.yielded():
		return false, nil
	}
}

// yielded is signaled by Yielder.Yield once per suspension; it's consumed
// by Step above. Implemented as a method so Task's zero-value channel
// fields stay unexported.
func (t *Task) yielded() <-chan struct{} {
	return t.yieldCh
}

// Yielder is handed to a Task's body so it can suspend at I/O boundaries.
type Yielder struct {
	t       *Task
	yieldCh chan struct{}
}

// Yield suspends the task until the Scheduler calls Step again.
func (y *Yielder) Yield() {
	y.yieldCh <- struct{}{}
	<-y.t.resume
}

// Scheduler round-robins Step across a set of tasks, the "caller's
// executor" spec.md §5 says cooperative operations are scheduled by.
type Scheduler struct {
	tasks []*Task
}

// Add registers t with the scheduler.
func (s *Scheduler) Add(t *Task) { s.tasks = append(s.tasks, t) }

// RunAll steps every registered task to completion, round-robin, and
// returns the first error encountered (if any). Cancellation (spec.md
// §5's "abandoned in an implementation-defined position") is the caller's
// responsibility: stop calling RunAll/Step and drop the Scheduler.
func (s *Scheduler) RunAll() error {
	remaining := append([]*Task(nil), s.tasks...)
	var firstErr error
	for len(remaining) > 0 {
		next := remaining[:0]
		for _, t := range remaining {
			finished, err := t.Step()
			if finished {
				if err != nil && firstErr == nil {
					firstErr = err
				}
				continue
			}
			next = append(next, t)
		}
		remaining = next
	}
	return firstErr
}

// CoopReader wraps a blocking Reader so each call yields to the owning
// Task before performing the real (blocking) read, giving the scheduler a
// chance to run other tasks between I/O operations.
type CoopReader struct {
	r Reader
	y *Yielder
}

// NewCoopReader wraps r for cooperative use within a task started with y.
func NewCoopReader(r Reader, y *Yielder) *CoopReader { return &CoopReader{r: r, y: y} }

func (c *CoopReader) ReadExact(buf []byte) error {
	c.y.Yield()
	return c.r.ReadExact(buf)
}

func (c *CoopReader) Skip(n int64) error {
	c.y.Yield()
	return c.r.Skip(n)
}

// CoopWriter is CoopReader's write-side counterpart.
type CoopWriter struct {
	w Writer
	y *Yielder
}

// NewCoopWriter wraps w for cooperative use within a task started with y.
func NewCoopWriter(w Writer, y *Yielder) *CoopWriter { return &CoopWriter{w: w, y: y} }

func (c *CoopWriter) WriteAll(buf []byte) error {
	c.y.Yield()
	return c.w.WriteAll(buf)
}
