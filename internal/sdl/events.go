package sdl

import "unsafe"

// RawEvent mirrors the 56-byte SDL_Event union. Decoding reads fields at
// their native offsets, so this is only valid for the build platform's SDL.
type RawEvent [56]byte

// EventType identifies an event. Values match SDL_EventType.
type EventType uint32

const (
	EventNone    EventType = 0
	EventQuit    EventType = 0x100
	EventKeyDown EventType = 0x300
	EventKeyUp   EventType = 0x301
)

// Keycode is an SDL virtual key code. Printable keys match their ASCII
// lowercase value.
type Keycode int32

const (
	KeycodeUnknown Keycode = 0
	KeycodeEscape  Keycode = 27
	KeycodeSpace   Keycode = ' '
	KeycodeQ       Keycode = 'q'
)

// Event is a decoded input event. Keycode is meaningful only for
// EventKeyDown and EventKeyUp.
type Event struct {
	Type    EventType
	Keycode Keycode
}

// EventPump reads events from SDL's single event queue. Use it only on the
// thread that initialized SDL.
type EventPump struct {
	sdl *SDL
}

// WaitEvent blocks until the next event arrives.
func (p *EventPump) WaitEvent() (Event, error) {
	var raw RawEvent
	if lib.WaitEvent(&raw) == 0 {
		return Event{}, &Error{Call: "SDL_WaitEvent", Detail: lib.GetError()}
	}
	return decodeEvent(&raw), nil
}

// PollEvent returns the next pending event, or ok=false if the queue is
// empty.
func (p *EventPump) PollEvent() (Event, bool) {
	var raw RawEvent
	if lib.PollEvent(&raw) == 0 {
		return Event{}, false
	}
	return decodeEvent(&raw), true
}

// SDL_KeyboardEvent layout: type, timestamp, windowID (uint32 each), then
// state/repeat bytes and padding, then SDL_Keysym whose second field is the
// virtual key code.
const keysymSymOffset = 20

func decodeEvent(raw *RawEvent) Event {
	etype := EventType(*(*uint32)(unsafe.Pointer(&raw[0])))
	ev := Event{Type: etype}
	switch etype {
	case EventKeyDown, EventKeyUp:
		ev.Keycode = Keycode(*(*int32)(unsafe.Pointer(&raw[keysymSymOffset])))
	}
	return ev
}
