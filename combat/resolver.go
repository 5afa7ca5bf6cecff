// Package combat resolves a contest between two fighters.
//
// A contest is a strict alternation of turns. Initiative is fixed once at the
// start: higher speed acts first, then higher attack on equal speed, and on a
// full tie the second listed fighter acts first. Every hit deals
// max(attack-defense, 1), so the defender loses at least one hit point per
// turn and the loop always ends.
package combat

import "fighter-arena/models"

// Result describes how a contest ended. Only Winner is ever persisted.
type Result struct {
	Winner      models.Fighter // hit points left after the final turn
	Loser       models.Fighter // hit points are always exactly 0
	Turns       int
	WinnerFirst bool // the winner held the initiative
}

type combatant struct {
	fighter models.Fighter
	hp      int64
}

// FirstStriker reports whether a acts before b.
func FirstStriker(a, b models.Fighter) bool {
	if a.Speed != b.Speed {
		return a.Speed > b.Speed
	}
	return a.Attack > b.Attack
}

// Damage returns the hit points removed by one attack. Never less than 1.
func Damage(attack, defense int32) int64 {
	raw := int64(attack) - int64(defense)
	if raw < 1 {
		return 1
	}
	return raw
}

// Resolve runs the whole exchange and returns the winner. a and b are copies;
// the caller's records are not touched.
func Resolve(a, b models.Fighter) models.Fighter {
	return Outcome(a, b).Winner
}

// Outcome is Resolve plus bookkeeping about the exchange.
func Outcome(a, b models.Fighter) Result {
	first := &combatant{fighter: a, hp: int64(a.HitPoints)}
	second := &combatant{fighter: b, hp: int64(b.HitPoints)}
	if !FirstStriker(a, b) {
		first, second = second, first
	}

	attacker, defender := first, second
	for turn := 1; ; turn++ {
		dmg := Damage(attacker.fighter.Attack, defender.fighter.Defense)
		if defender.hp > dmg {
			defender.hp -= dmg
			attacker, defender = defender, attacker
			continue
		}

		winner, loser := attacker.fighter, defender.fighter
		winner.HitPoints = int32(attacker.hp)
		loser.HitPoints = 0
		return Result{
			Winner:      winner,
			Loser:       loser,
			Turns:       turn,
			WinnerFirst: attacker == first,
		}
	}
}
