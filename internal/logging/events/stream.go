package events

import "github.com/atomicstack/sluice/internal/logging"

type StreamTracer struct{}

var Stream = StreamTracer{}

func (StreamTracer) Line(count int) {
	logging.Trace("stream.line", map[string]interface{}{"count": count})
}

func (StreamTracer) EOF(lines int) {
	logging.Trace("stream.eof", map[string]interface{}{"lines": lines})
}

func (StreamTracer) ReadError(err error) {
	if err == nil {
		return
	}
	logging.Trace("stream.read-error", map[string]interface{}{"error": err.Error()})
}
