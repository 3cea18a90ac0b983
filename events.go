package hedron

import "unsafe"

const (
	OVERLAP_ENTER EventType = iota
	OVERLAP_STAY
	OVERLAP_EXIT
)

type pairKey struct {
	brushA *Brush
	brushB *Brush
}

// makePairKey creates a normalized pair key with consistent ordering
func makePairKey(brushA, brushB *Brush) pairKey {
	ptrA := uintptr(unsafe.Pointer(brushA))
	ptrB := uintptr(unsafe.Pointer(brushB))

	if ptrB < ptrA {
		brushA, brushB = brushB, brushA
	}

	return pairKey{brushA: brushA, brushB: brushB}
}

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

type OverlapEnterEvent struct {
	BrushA *Brush
	BrushB *Brush
}

func (e OverlapEnterEvent) Type() EventType { return OVERLAP_ENTER }

type OverlapStayEvent struct {
	BrushA *Brush
	BrushB *Brush
}

func (e OverlapStayEvent) Type() EventType { return OVERLAP_STAY }

type OverlapExitEvent struct {
	BrushA *Brush
	BrushB *Brush
}

func (e OverlapExitEvent) Type() EventType { return OVERLAP_EXIT }

// EventListener - callback for events
type EventListener func(event Event)

// Events tracks overlapping pairs between two detections and notifies listeners
// of pairs starting, continuing and ending to overlap.
type Events struct {
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	previousActivePairs map[pairKey]bool
	currentActivePairs  map[pairKey]bool
}

func NewEvents() Events {
	return Events{
		listeners:           make(map[EventType][]EventListener),
		buffer:              make([]Event, 0, 256),
		previousActivePairs: make(map[pairKey]bool),
		currentActivePairs:  make(map[pairKey]bool),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// recordOverlaps marks the pairs found by the current detection as active
func (e *Events) recordOverlaps(pairs []Pair) {
	for _, p := range pairs {
		e.currentActivePairs[makePairKey(p.BrushA, p.BrushB)] = true
	}
}

// forget drops every tracked pair involving brush, without emitting an exit event
func (e *Events) forget(brush *Brush) {
	for pair := range e.previousActivePairs {
		if pair.brushA == brush || pair.brushB == brush {
			delete(e.previousActivePairs, pair)
		}
	}
}

// processOverlapEvents compares current and previous pairs to detect Enter/Stay/Exit
func (e *Events) processOverlapEvents() {
	for pair := range e.currentActivePairs {
		if e.previousActivePairs[pair] {
			e.buffer = append(e.buffer, OverlapStayEvent{BrushA: pair.brushA, BrushB: pair.brushB})
		} else {
			e.buffer = append(e.buffer, OverlapEnterEvent{BrushA: pair.brushA, BrushB: pair.brushB})
		}
	}

	for pair := range e.previousActivePairs {
		if !e.currentActivePairs[pair] {
			e.buffer = append(e.buffer, OverlapExitEvent{BrushA: pair.brushA, BrushB: pair.brushB})
		}
	}

	// Swap for next detection and clear current
	e.previousActivePairs, e.currentActivePairs = e.currentActivePairs, e.previousActivePairs
	clear(e.currentActivePairs)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	e.processOverlapEvents()

	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
