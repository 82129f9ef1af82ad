// Package stream turns a piped input source into an ordered feed of line
// events consumed by the UI.
package stream

import (
	"bufio"
	"context"
	"io"
	"sync"

	"github.com/atomicstack/sluice/internal/logging"
	"github.com/atomicstack/sluice/internal/logging/events"
)

// Event conveys one ingested line, or the end of the input stream.
// End events carry no text; exactly one is published per stream.
type Event struct {
	Text string
	End  bool
}

// batchSize bounds how many lines a burst can queue ahead of the consumer
// before the reader goroutine blocks on the channel.
const batchSize = 10

// Reader scans newline-terminated records from a piped source and publishes
// them in order on its event channel. A read error is logged and treated as
// end-of-input.
type Reader struct {
	source io.ReadCloser

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup

	stopOnce sync.Once
}

// NewReader starts a reader over source. Stop must be called to release it.
func NewReader(source io.ReadCloser) *Reader {
	ctx, cancel := context.WithCancel(context.Background())
	r := &Reader{
		source: source,
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, batchSize),
	}

	r.wg.Add(1)
	go r.run()

	go func() {
		r.wg.Wait()
		close(r.events)
	}()

	return r
}

// Events returns the channel of line events. It closes after the reader has
// published its end-of-stream event or been stopped.
func (r *Reader) Events() <-chan Event {
	return r.events
}

// Stop cancels the reader and closes the underlying source so a blocked read
// returns promptly. Safe to call more than once.
func (r *Reader) Stop() {
	r.stopOnce.Do(func() {
		r.cancel()
		if err := r.source.Close(); err != nil {
			logging.Error(err)
		}
	})
}

// Wait blocks until the reader goroutine has exited. Call after Stop when a
// clean shutdown is required.
func (r *Reader) Wait() {
	r.wg.Wait()
}

func (r *Reader) run() {
	defer r.wg.Done()

	scanner := bufio.NewScanner(r.source)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	for scanner.Scan() {
		select {
		case <-r.ctx.Done():
			return
		case r.events <- Event{Text: scanner.Text()}:
			count++
			events.Stream.Line(count)
		}
	}
	if err := scanner.Err(); err != nil && r.ctx.Err() == nil {
		logging.Error(err)
		events.Stream.ReadError(err)
	}

	events.Stream.EOF(count)
	select {
	case <-r.ctx.Done():
	case r.events <- Event{End: true}:
	}
}
