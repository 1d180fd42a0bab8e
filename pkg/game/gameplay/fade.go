package gameplay

import (
	"time"

	"github.com/sirupsen/logrus"

	"townwalk/pkg/game/state"
	"townwalk/pkg/logger"
)

// scheduleFade replaces any pending fade with a new one. The replaced fade
// never commits.
func scheduleFade(g *state.Game, kind state.FadeKind, toOpaque, back time.Duration) {
	now := g.Now()
	if old := g.Interaction.Fade; old != nil {
		logger.Get().WithFields(logrus.Fields{
			"token": old.Token,
			"kind":  old.Kind.String(),
		}).Debug("fade superseded")
	}
	commitAt := now.Add(toOpaque)
	g.Interaction.Fade = &state.Fade{
		Token:    g.Interaction.NextFadeToken(),
		Kind:     kind,
		Phase:    state.FadeToOpaque,
		Start:    now,
		CommitAt: commitAt,
		EndAt:    commitAt.Add(back),
	}
}

// AdvanceFade commits the pending fade once it is opaque and drops it once it
// has faded back. Called once per frame.
func AdvanceFade(g *state.Game, now time.Time) {
	f := g.Interaction.Fade
	if f == nil {
		return
	}

	if !f.Committed && !now.Before(f.CommitAt) {
		f.Committed = true
		f.Phase = state.FadeFromOpaque
		ev := EventPayloadRevealed
		if f.Kind == state.FadeClose {
			ev = EventCloseCommitted
		}
		logger.Get().WithFields(logrus.Fields{
			"token": f.Token,
			"kind":  f.Kind.String(),
		}).Debug("fade committed")
		Dispatch(g, ev, g.Interaction.Mode.Zone)
	}

	// The commit must not have replaced the token
	if g.Interaction.Fade != f {
		return
	}
	if f.Committed && !now.Before(f.EndAt) {
		g.Interaction.Fade = nil
	}
}
