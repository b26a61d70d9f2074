package systems

import (
	"time"

	"github.com/automoto/poetry-duel/components"
	"github.com/automoto/poetry-duel/sim"
	"github.com/yohamta/donburi/ecs"
)

// maxStep caps one simulation step so a stalled window does not tunnel the
// balls through each other.
const maxStep = 0.1

// Duel drives the simulation from the ECS update loop with wall-clock time.
type Duel struct {
	session *sim.Session
	record  *SavedRecord
	last    time.Time
	quit    bool
}

func NewDuel(session *sim.Session, record *SavedRecord) *Duel {
	if record == nil {
		record = &SavedRecord{}
	}
	return &Duel{session: session, record: record}
}

// Update steps the session once and reacts to a decided round.
func (d *Duel) Update(ecs *ecs.ECS) {
	entry, ok := components.Intent.First(ecs.World)
	if !ok {
		return
	}
	intent := *components.Intent.Get(entry)
	if intent.Quit {
		d.quit = true
		return
	}

	now := time.Now()
	dt := 0.0
	if !d.last.IsZero() {
		dt = now.Sub(d.last).Seconds()
	}
	d.last = now
	if dt > maxStep {
		dt = maxStep
	}

	out := d.session.Step(dt, intent)
	if out == components.OutcomeNone {
		return
	}
	ShowBanner(ecs, out)
	d.recordOutcome(out)
}

func (d *Duel) recordOutcome(out components.Outcome) {
	switch out {
	case components.OutcomeWin:
		d.record.Wins++
	case components.OutcomeLoss:
		d.record.Losses++
	default:
		return
	}
	m := d.session.Match()
	d.record.Poet = m.Poet
	d.record.Arena = m.Arena
	_ = SaveRecord(d.record)
}

// Record returns the lifetime record including this session.
func (d *Duel) Record() SavedRecord {
	return *d.record
}

// Quit reports whether the player asked to leave.
func (d *Duel) Quit() bool {
	return d.quit
}

// Resize forwards a new window size to the session, which resets the round.
func (d *Duel) Resize(width, height int) {
	d.session.Resize(float64(width), float64(height))
}
