// Copyright 2026 The x12stream Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package host

import (
	"bytes"
	"errors"
	"io"

	"github.com/x12stream/x12parse/internal/metricstorage"
	"github.com/x12stream/x12parse/internal/pubsub"
	"github.com/x12stream/x12parse/internal/rescue"
	"github.com/x12stream/x12parse/internal/tracekit"
	"github.com/x12stream/x12parse/x12"
)

// Event is the payload published on a Driver's PubSub for each
// interchange lifecycle transition.
type Event struct {
	Kind            EventKind
	InterchangeCtrl string // ISA13, populated on Opened/Closed
	Trace           tracekit.TraceContext
}

type EventKind uint8

const (
	EventInterchangeOpened EventKind = iota
	EventInterchangeClosed
	EventReset
)

// Driver reads from an arbitrary byte source into a growable Window and
// drives x12.Parser's ParseSegment loop against it, single-threaded and
// blocking, per the chunked host driver's buffer management contract.
type Driver struct {
	cfg     Config
	parser  *x12.Parser
	window  *Window
	stats   Stats
	metrics *metricstorage.Storage
	bus     *pubsub.PubSub
	trace   tracekit.TraceContext
}

// New returns a Driver over a fresh parser and a window sized to
// cfg.InitialBufferSize (defaults applied for zero fields). Its trace
// session begins at construction and gets a fresh span per interchange.
func New(cfg Config) *Driver {
	cfg = cfg.applyDefaults()
	return &Driver{
		cfg:    cfg,
		trace:  tracekit.NewTraceContext(),
		parser: x12.NewParser(),
		window: NewWindow(cfg.InitialBufferSize),
	}
}

// AttachMetrics wires a metric storage so Run publishes Prometheus
// counters/gauges for bytes read, segments delivered, buffer growth,
// and max capacity reached, alongside the Stats return value.
func (d *Driver) AttachMetrics(m *metricstorage.Storage) {
	d.metrics = m
}

// AttachPubSub wires a lifecycle event bus. Run publishes
// EventInterchangeOpened on each ISA and EventInterchangeClosed on each
// matching IEA.
func (d *Driver) AttachPubSub(bus *pubsub.PubSub) {
	d.bus = bus
}

// Stats returns a snapshot of the driver's counters.
func (d *Driver) Stats() Stats {
	return d.stats
}

// Reset returns the parser to Initial and publishes EventReset on any
// attached bus. The window is left as-is; callers driving a fresh
// interchange on the same Driver should construct a new one instead if
// they also want the buffer reclaimed.
func (d *Driver) Reset() {
	d.parser.Reset()
	if d.bus != nil {
		d.bus.Publish(Event{Kind: EventReset})
	}
}

var errSegmentTooLarge = &x12.ParseError{Kind: x12.KindSegmentTooLarge, Message: "segment exceeds max_buffer_size"}

var errTrailingGarbage = &x12.ParseError{Kind: x12.KindTrailingGarbage, Message: "unparsed bytes remain at end of source with no terminator in the tail"}

// Run drives the parser against src until the source is exhausted or a
// fatal error occurs. handler is invoked once per parsed segment,
// exactly as Parser.ParseSegment would call it directly.
func (d *Driver) Run(src io.Reader, handler x12.Handler) (Stats, error) {
	defer rescue.HandleCrash()

	var lastCtrl string

	for {
		n, rerr := src.Read(d.window.Tail())
		if n > 0 {
			d.window.Filled(n)
			d.stats.BytesRead += int64(n)
		}

		for {
			consumed, perr := d.parser.ParseSegment(d.window.Unparsed(), wrapHandler(handler, d, &lastCtrl))
			if perr == nil {
				d.window.Advance(consumed)
				d.stats.SegmentsDelivered++
				continue
			}
			if errors.Is(perr, x12.ErrIncomplete) {
				break
			}
			d.publishMetrics()
			return d.stats, perr
		}

		if rerr != nil {
			if rerr == io.EOF {
				return d.finish()
			}
			d.publishMetrics()
			return d.stats, rerr
		}

		if err := d.growOrCompact(); err != nil {
			d.publishMetrics()
			return d.stats, err
		}
	}
}

func (d *Driver) growOrCompact() error {
	if d.window.ShouldCompact() {
		d.window.Compact()
		return nil
	}
	if d.window.AtCapacity() {
		if !d.window.Grow(d.cfg.ResizeMultiplier, d.cfg.MaxBufferSize) {
			d.stats.MaxCapacityReached++
			return errSegmentTooLarge
		}
		d.stats.BufferGrowthEvents++
	}
	return nil
}

func (d *Driver) finish() (Stats, error) {
	remaining := d.window.Unparsed()
	if len(remaining) == 0 {
		d.publishMetrics()
		return d.stats, nil
	}

	// A terminator found in the tail while a delimiter table is
	// established means a complete segment sits unconsumed: not a
	// partial segment, so not Incomplete. Without an established
	// table (Initial state) there is no terminator to look for; the
	// tail is always treated as a partial segment in that case.
	delims := d.parser.Delimiters()
	if delims != (x12.Delimiters{}) && bytes.IndexByte(remaining, delims.Terminator) >= 0 {
		d.publishMetrics()
		return d.stats, errTrailingGarbage
	}

	d.publishMetrics()
	return d.stats, x12.ErrIncomplete
}

func (d *Driver) publishMetrics() {
	if d.metrics == nil {
		return
	}
	d.metrics.Update(
		metricstorage.ConstMetric{Model: metricstorage.ModelCounter, Name: "x12parse_bytes_read_total", Value: float64(d.stats.BytesRead)},
		metricstorage.ConstMetric{Model: metricstorage.ModelCounter, Name: "x12parse_segments_total", Value: float64(d.stats.SegmentsDelivered)},
		metricstorage.ConstMetric{Model: metricstorage.ModelCounter, Name: "x12parse_buffer_growth_total", Value: float64(d.stats.BufferGrowthEvents)},
		metricstorage.ConstMetric{Model: metricstorage.ModelGauge, Name: "x12parse_max_capacity_bytes", Value: float64(d.window.Capacity())},
	)
}

// wrapHandler intercepts ISA/IEA deliveries to publish lifecycle events
// before forwarding the segment to the caller's handler, unchanged. Each
// new interchange gets its own span within the driver's one trace
// session, so a downstream sink can correlate every event belonging to
// the same ISA/IEA pair.
func wrapHandler(next x12.Handler, d *Driver, lastCtrl *string) x12.Handler {
	return x12.HandlerFunc(func(seg *x12.Segment) error {
		switch seg.ID() {
		case "ISA":
			if seg.ElementCount() > 12 {
				*lastCtrl = seg.Element(12).String()
			}
			d.trace = d.trace.NextSpan()
			if d.bus != nil {
				d.bus.Publish(Event{Kind: EventInterchangeOpened, InterchangeCtrl: *lastCtrl, Trace: d.trace})
			}
		case "IEA":
			if d.bus != nil {
				d.bus.Publish(Event{Kind: EventInterchangeClosed, InterchangeCtrl: *lastCtrl, Trace: d.trace})
			}
		}
		return next.Handle(seg)
	})
}
