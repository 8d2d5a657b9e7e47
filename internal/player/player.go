// Package player owns the player value type and scenario execution.
package player

// MaxHP caps player health.
const MaxHP = 100

// Player is a plain value type. Struct copies are fully independent.
type Player struct {
	ID   int64
	Name string
	HP   int
}

// New returns a player with hp clamped into [0, MaxHP].
func New(id int64, name string, hp int) Player {
	return Player{ID: id, Name: name, HP: clampHP(hp)}
}

// Damage lowers HP by n, clamped at zero. Non-positive n is ignored.
func (p *Player) Damage(n int) {
	if n <= 0 {
		return
	}
	p.HP = clampHP(p.HP - n)
}

// Heal raises HP by n, clamped at MaxHP. Non-positive n is ignored.
func (p *Player) Heal(n int) {
	if n <= 0 {
		return
	}
	p.HP = clampHP(p.HP + n)
}

// Alive reports whether the player has health left.
func (p Player) Alive() bool {
	return p.HP > 0
}

func clampHP(hp int) int {
	if hp < 0 {
		return 0
	}
	if hp > MaxHP {
		return MaxHP
	}
	return hp
}
