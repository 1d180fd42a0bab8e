package state

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"townwalk/pkg/engine/world"
)

// ModeKind enumerates the exclusive interaction modes
type ModeKind int

const (
	Exploring ModeKind = iota
	ModalOpen
	TextBoxOpen
)

// String returns the mode name
func (k ModeKind) String() string {
	switch k {
	case Exploring:
		return "exploring"
	case ModalOpen:
		return "modal"
	case TextBoxOpen:
		return "textbox"
	default:
		return "unknown"
	}
}

// Mode is the current interaction mode and, outside Exploring, the zone that opened it
type Mode struct {
	Kind ModeKind
	Zone world.ZoneHandle
}

// FadeKind says what a fade commits at its midpoint
type FadeKind int

const (
	// FadeOpen reveals the modal payload
	FadeOpen FadeKind = iota
	// FadeClose moves the actor out of the zone and returns to Exploring
	FadeClose
)

// String returns the fade kind name
func (k FadeKind) String() string {
	if k == FadeClose {
		return "close"
	}
	return "open"
}

// FadePhase is the visible half of a fade
type FadePhase int

const (
	FadeToOpaque FadePhase = iota
	FadeFromOpaque
)

// Fade is the single scheduled transition token. Token increases with every
// scheduled fade; a fade whose token no longer matches has been superseded.
type Fade struct {
	Token     uint64
	Kind      FadeKind
	Phase     FadePhase
	Start     time.Time
	CommitAt  time.Time
	EndAt     time.Time
	Committed bool
}

// Opacity returns the fade overlay opacity in [0,1] at now
func (f *Fade) Opacity(now time.Time) float64 {
	if f == nil {
		return 0
	}
	if now.Before(f.CommitAt) {
		total := f.CommitAt.Sub(f.Start)
		if total <= 0 {
			return 1
		}
		return clamp01(float64(now.Sub(f.Start)) / float64(total))
	}
	total := f.EndAt.Sub(f.CommitAt)
	if total <= 0 {
		return 0
	}
	return clamp01(1 - float64(now.Sub(f.CommitAt))/float64(total))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Interaction is the state behind the interaction state machine
type Interaction struct {
	Mode Mode

	// EntryPos is where the actor stood when a walk-over zone opened the modal
	EntryPos *world.Pos

	// PrevContained holds the zones containing the actor on the previous frame
	PrevContained mapset.Set[world.ZoneHandle]

	// Fade is the pending transition, nil when none is running
	Fade      *Fade
	fadeToken uint64

	// PayloadVisible is false while an opening modal is still fading in
	PayloadVisible bool

	// OpenedAt is when the current modal or text box opened
	OpenedAt time.Time
}

// NextFadeToken issues the token for a new fade
func (i *Interaction) NextFadeToken() uint64 {
	i.fadeToken++
	return i.fadeToken
}
