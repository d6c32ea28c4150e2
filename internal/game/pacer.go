package game

import "time"

// Pacer inserts the presentation delays around a consumed turn. The battle
// is already resolved when it runs.
type Pacer struct {
	AttackDelay time.Duration
	EnemyDelay  time.Duration
	Sleep       func(time.Duration)
}

// NewPacer returns a pacer that sleeps for real.
func NewPacer(attackDelay, enemyDelay time.Duration) Pacer {
	return Pacer{AttackDelay: attackDelay, EnemyDelay: enemyDelay, Sleep: time.Sleep}
}

// AfterAttack waits after the player's attack is shown.
func (p Pacer) AfterAttack() { p.wait(p.AttackDelay) }

// AfterEnemy waits after the enemy's reply is shown.
func (p Pacer) AfterEnemy() { p.wait(p.EnemyDelay) }

func (p Pacer) wait(d time.Duration) {
	if d <= 0 || p.Sleep == nil {
		return
	}
	p.Sleep(d)
}
