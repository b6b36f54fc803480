// Package events carries observable scan progress from a token stream to
// any number of listeners (terminal output, debug dumps, tests).
package events

import (
	"sync"
	"time"
)

// EventType represents the type of scan event.
type EventType string

const (
	EventScanStarted   EventType = "scan_started"
	EventScanCompleted EventType = "scan_completed"
	EventTokenScanned  EventType = "token_scanned"
	EventLexError      EventType = "lex_error"
)

// Event represents an observable scan event with typed data.
type Event struct {
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// EventEmitter manages event listeners and dispatches events.
type EventEmitter struct {
	mu        sync.RWMutex
	listeners []func(Event)
}

// NewEventEmitter creates a new EventEmitter.
func NewEventEmitter() *EventEmitter {
	return &EventEmitter{
		listeners: make([]func(Event), 0),
	}
}

// On registers a listener function to receive events.
// Listeners are called synchronously in registration order.
func (e *EventEmitter) On(listener func(Event)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

// Emit dispatches an event to all registered listeners.
func (e *EventEmitter) Emit(event Event) {
	e.mu.RLock()
	listeners := make([]func(Event), len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.RUnlock()

	for _, listener := range listeners {
		listener(event)
	}
}

// ListenerCount returns the number of registered listeners.
func (e *EventEmitter) ListenerCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners)
}

// ScanStartedEvent creates a scan_started event.
func ScanStartedEvent(id, filename string, size int) Event {
	return Event{
		Type:      EventScanStarted,
		Timestamp: time.Now(),
		Data: map[string]any{
			"id":       id,
			"filename": filename,
			"size":     size,
		},
	}
}

// ScanCompletedEvent creates a scan_completed event.
func ScanCompletedEvent(id string, tokenCount, errorCount int, duration time.Duration) Event {
	return Event{
		Type:      EventScanCompleted,
		Timestamp: time.Now(),
		Data: map[string]any{
			"id":          id,
			"token_count": tokenCount,
			"error_count": errorCount,
			"duration_ms": duration.Milliseconds(),
		},
	}
}

// TokenScannedEvent creates a token_scanned event.
func TokenScannedEvent(kind, lexeme, channel string, line, column int) Event {
	return Event{
		Type:      EventTokenScanned,
		Timestamp: time.Now(),
		Data: map[string]any{
			"kind":    kind,
			"lexeme":  lexeme,
			"channel": channel,
			"line":    line,
			"column":  column,
		},
	}
}

// LexErrorEvent creates a lex_error event.
func LexErrorEvent(code, message string, line, column int) Event {
	return Event{
		Type:      EventLexError,
		Timestamp: time.Now(),
		Data: map[string]any{
			"code":    code,
			"message": message,
			"line":    line,
			"column":  column,
		},
	}
}
