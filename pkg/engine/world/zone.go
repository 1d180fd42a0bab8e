package world

import (
	"fmt"
)

// Trigger describes how a zone is activated
type Trigger int

const (
	// TriggerWalkOver fires when the actor steps into the zone
	TriggerWalkOver Trigger = iota
	// TriggerFacing fires on an explicit interact while the actor faces the zone
	TriggerFacing
)

// String returns the name used in world files
func (t Trigger) String() string {
	switch t {
	case TriggerWalkOver:
		return "walk-over"
	case TriggerFacing:
		return "facing"
	default:
		return "unknown"
	}
}

// ParseTrigger converts a world file trigger name into a Trigger.
// "spacebar" is accepted as an alias of "facing".
func ParseTrigger(name string) (Trigger, bool) {
	switch name {
	case "walk-over", "walkover":
		return TriggerWalkOver, true
	case "facing", "facing-action", "spacebar":
		return TriggerFacing, true
	default:
		return TriggerWalkOver, false
	}
}

// Payload is the content surfaced when a zone fires.
// The engine never looks inside it beyond the Character tag.
type Payload struct {
	Title   string
	Content string

	// Character marks dialogue spoken by a character; it opens inline
	// as a text box rather than a modal.
	Character bool
}

// Zone is a rectangular trigger region
type Zone struct {
	Name    string
	Bounds  Rect
	Trigger Trigger
	Payload Payload

	// Exit is where the actor is placed when a modal opened by this zone closes.
	// Nil means one cell below the entry position.
	Exit *Pos
}

// Validate checks the zone definition
func (z Zone) Validate() error {
	if z.Bounds.W < 1 || z.Bounds.H < 1 {
		return fmt.Errorf("%w: zone %q is %dx%d", ErrInvalidZone, z.Name, z.Bounds.W, z.Bounds.H)
	}
	if z.Payload.Content == "" {
		return fmt.Errorf("%w: zone %q", ErrMissingPayload, z.Name)
	}
	return nil
}

// ZoneHandle identifies a registered zone. The zero value is never issued.
type ZoneHandle uint32

// ZoneIndex holds trigger zones in registration order. Overlapping zones are
// allowed; wherever a single zone must be chosen the first registered wins.
type ZoneIndex struct {
	bounds Rect
	zones  []Zone
}

// NewZoneIndex creates an empty index for a map of the given size
func NewZoneIndex(width, height int) *ZoneIndex {
	return &ZoneIndex{bounds: Rect{W: width, H: height}}
}

// Register validates and stores a zone. Invalid zones, including those whose
// exit lies outside the map, are not stored.
func (idx *ZoneIndex) Register(z Zone) (ZoneHandle, error) {
	if err := z.Validate(); err != nil {
		return 0, err
	}
	if z.Exit != nil {
		if !idx.bounds.Contains(*z.Exit) {
			return 0, fmt.Errorf("%w: zone %q exit %s is outside the map", ErrInvalidZone, z.Name, *z.Exit)
		}
		exit := *z.Exit
		z.Exit = &exit
	}
	idx.zones = append(idx.zones, z)
	return ZoneHandle(len(idx.zones)), nil
}

// Get returns the zone behind a handle
func (idx *ZoneIndex) Get(h ZoneHandle) (Zone, bool) {
	if h == 0 || int(h) > len(idx.zones) {
		return Zone{}, false
	}
	return idx.zones[h-1], true
}

// Len returns the number of registered zones
func (idx *ZoneIndex) Len() int {
	return len(idx.zones)
}

// All returns the handles of every zone in registration order
func (idx *ZoneIndex) All() []ZoneHandle {
	handles := make([]ZoneHandle, len(idx.zones))
	for i := range idx.zones {
		handles[i] = ZoneHandle(i + 1)
	}
	return handles
}

// ContainingZones returns every zone whose rectangle contains p, in registration order
func (idx *ZoneIndex) ContainingZones(p Pos) []ZoneHandle {
	var handles []ZoneHandle
	for i := range idx.zones {
		if idx.zones[i].Bounds.Contains(p) {
			handles = append(handles, ZoneHandle(i+1))
		}
	}
	return handles
}

// FacingZone returns the first facing-triggered zone containing the cell adjacent to p
// in direction dir. Cells outside the map never match.
func (idx *ZoneIndex) FacingZone(p Pos, dir Direction) (ZoneHandle, bool) {
	if !dir.IsValid() {
		return 0, false
	}
	target := p.Step(dir)
	if !idx.bounds.Contains(target) {
		return 0, false
	}
	for i := range idx.zones {
		z := &idx.zones[i]
		if z.Trigger == TriggerFacing && z.Bounds.Contains(target) {
			return ZoneHandle(i + 1), true
		}
	}
	return 0, false
}
