package main

import "shootingsurvival/game"

// Bot plays a session without a window: it fires on a fixed cadence and
// steps away from the nearest enemy once it comes within the flee radius
type Bot struct {
	FireEvery  int // ticks between shots
	FleeRadius int // center distance that triggers fleeing

	vx, vy int // last steering decision per axis, -1, 0 or 1
}

// NewBot creates a bot with the given cadence and flee radius
func NewBot(fireEvery, fleeRadius int) *Bot {
	if fireEvery < 1 {
		fireEvery = 1
	}
	return &Bot{FireEvery: fireEvery, FleeRadius: fleeRadius}
}

// Events decides this tick's input from the simulation state
func (b *Bot) Events(sim *game.Simulation) []game.Event {
	var events []game.Event

	vx, vy := 0, 0
	from := sim.Player.Center()
	if target := game.NearestEnemy(from, sim.World.Enemies); target != nil {
		c := target.Center()
		if from.DistanceTo(c) < float64(b.FleeRadius) {
			vx = -sign(c.X - from.X)
			vy = -sign(c.Y - from.Y)
		}
	}
	events = steer(events, b.vx, vx, game.DirectionLeft, game.DirectionRight)
	events = steer(events, b.vy, vy, game.DirectionUp, game.DirectionDown)
	b.vx, b.vy = vx, vy

	if sim.Tick%b.FireEvery == 0 {
		events = append(events, game.Event{Kind: game.EventFire})
	}
	return events
}

// Reset forgets the steering state after a restart
func (b *Bot) Reset() {
	b.vx, b.vy = 0, 0
}

// steer emits the key edges that change one axis from prev to next
func steer(events []game.Event, prev, next int, neg, pos game.Direction) []game.Event {
	if prev == next {
		return events
	}
	switch {
	case next < 0:
		return append(events, game.Event{Kind: game.EventPress, Dir: neg})
	case next > 0:
		return append(events, game.Event{Kind: game.EventPress, Dir: pos})
	case prev < 0:
		return append(events, game.Event{Kind: game.EventRelease, Dir: neg})
	default:
		return append(events, game.Event{Kind: game.EventRelease, Dir: pos})
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
