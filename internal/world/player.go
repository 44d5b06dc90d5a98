package world

// Player is a minimal player-state provider for the scheduler: alive or
// dead. Hosts with a real player model supply their own implementation
// of the PlayerState interface instead.
type Player struct {
	dead bool
}

// NewPlayer creates a live player.
func NewPlayer() *Player {
	return &Player{}
}

// IsPlayerDead reports whether the player is dead.
func (p *Player) IsPlayerDead() bool {
	return p.dead
}

// Kill marks the player dead; the scheduler freezes on dead ticks.
func (p *Player) Kill() {
	p.dead = true
}

// Revive marks the player alive again.
func (p *Player) Revive() {
	p.dead = false
}
