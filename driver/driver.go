// Package driver is the JSON-over-string wire-format layer named in spec
// §6: it adapts the in-process toon/truth entry points to the stable
// interop boundary (complex values as JSON-encoded strings) for
// foreign-language bindings. Unlike the core packages, it may
// log a single diagnostic line per call.
package driver

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/k0kubun/toon-truth/toon"
	"github.com/k0kubun/toon-truth/truth"
	"github.com/k0kubun/toon-truth/util"
)

// Encode wraps toon.Encode.
func Encode(jsonText string) (string, error) {
	return toon.Encode(jsonText)
}

// Decode wraps toon.Decode.
func Decode(toonText string) (string, error) {
	return toon.Decode(toonText)
}

// FilterAndEncode wraps toon.FilterAndEncode.
func FilterAndEncode(jsonText string, patterns []string) (string, error) {
	return toon.FilterAndEncode(jsonText, patterns)
}

type wireEvent struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type wireStream struct {
	StreamID string      `json:"stream_id"`
	Events   []wireEvent `json:"events"`
}

type wireBusyBlock struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	SourceCount int    `json:"source_count"`
}

type wireFreeSlot struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int64  `json:"duration_minutes"`
}

type wireAvailability struct {
	Busy        []wireBusyBlock `json:"busy"`
	Free        []wireFreeSlot  `json:"free"`
	WindowStart string          `json:"window_start"`
	WindowEnd   string          `json:"window_end"`
	Privacy     string          `json:"privacy"`
}

func parseStreams(streamsJSON string) ([]truth.EventStream, error) {
	var wire []wireStream
	if err := json.Unmarshal([]byte(streamsJSON), &wire); err != nil {
		return nil, fmt.Errorf("driver: malformed event stream JSON: %w", err)
	}
	streams := make([]truth.EventStream, len(wire))
	for i, w := range wire {
		events := make([]truth.ExpandedEvent, len(w.Events))
		for j, e := range w.Events {
			start, err := parseDateTime(e.Start)
			if err != nil {
				return nil, err
			}
			end, err := parseDateTime(e.End)
			if err != nil {
				return nil, err
			}
			events[j] = truth.ExpandedEvent{Start: start, End: end}
		}
		streams[i] = truth.EventStream{StreamID: w.StreamID, Events: events}
	}
	return streams, nil
}

// MergeAvailability wraps truth.MergeAvailability across the wire
// boundary: streamsJSON is an array of {stream_id, events:[{start,end}]},
// and the result is the {busy, free, window_start, window_end, privacy}
// shape from spec §6.
func MergeAvailability(streamsJSON string, windowStart, windowEnd time.Time, opaque bool) (string, error) {
	started := time.Now()
	streams, err := parseStreams(streamsJSON)
	if err != nil {
		return "", err
	}

	privacy := truth.Full
	if opaque {
		privacy = truth.Opaque
	}
	result := truth.MergeAvailability(streams, windowStart, windowEnd, privacy)

	wire := wireAvailability{
		Busy: util.TransformSlice(result.Busy, func(b truth.BusyBlock) wireBusyBlock {
			return wireBusyBlock{Start: formatDateTime(b.Start), End: formatDateTime(b.End), SourceCount: b.SourceCount}
		}),
		Free: util.TransformSlice(result.Free, func(f truth.FreeSlot) wireFreeSlot {
			return wireFreeSlot{Start: formatDateTime(f.Start), End: formatDateTime(f.End), DurationMinutes: f.DurationMinutes}
		}),
		WindowStart: formatDateTime(windowStart),
		WindowEnd:   formatDateTime(windowEnd),
		Privacy:     privacy.String(),
	}
	data, err := json.Marshal(wire)
	if err != nil {
		return "", fmt.Errorf("driver: %w", err)
	}
	slog.Debug("merge_availability", "streams", len(streams), "elapsed", time.Since(started))
	return string(data), nil
}

// FindFirstFreeAcross wraps truth.FindFirstFreeAcross. Returns the literal
// text "null" (not an error) when no slot meets minMinutes.
func FindFirstFreeAcross(streamsJSON string, windowStart, windowEnd time.Time, minMinutes int64) (string, error) {
	started := time.Now()
	streams, err := parseStreams(streamsJSON)
	if err != nil {
		return "", err
	}

	slot := truth.FindFirstFreeAcross(streams, windowStart, windowEnd, minMinutes)
	slog.Debug("find_first_free_across", "streams", len(streams), "elapsed", time.Since(started))
	if slot == nil {
		return "null", nil
	}
	wire := wireFreeSlot{Start: formatDateTime(slot.Start), End: formatDateTime(slot.End), DurationMinutes: slot.DurationMinutes}
	data, err := json.Marshal(wire)
	if err != nil {
		return "", fmt.Errorf("driver: %w", err)
	}
	return string(data), nil
}
