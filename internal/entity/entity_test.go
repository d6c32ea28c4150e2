package entity

import (
	"errors"
	"testing"

	"github.com/samdwyer/lowlymage/internal/apperrors"
	"github.com/samdwyer/lowlymage/internal/gamedata"
)

func newTestPlayer() *Player {
	return NewPlayer(gamedata.PlayerTemplate{
		Name:          "Mage",
		MaxHealth:     100,
		MaxMana:       50,
		HealthPotions: 3,
		ManaPotions:   2,
		HasFireball:   true,
	})
}

func TestNewPlayerStartsFull(t *testing.T) {
	p := newTestPlayer()

	if p.Health != 100 || p.Mana != 50 {
		t.Errorf("NewPlayer() vitals = %d/%d, want 100/50", p.Health, p.Mana)
	}
	if p.LastAction != "" {
		t.Errorf("NewPlayer().LastAction = %q, want empty", p.LastAction)
	}
}

func TestPlayerApplyDamage(t *testing.T) {
	tests := []struct {
		name       string
		health     int
		amount     int
		wantActual int
		wantHealth int
	}{
		{"partial", 100, 30, 30, 70},
		{"exact", 30, 30, 30, 0},
		{"overkill clamps at zero", 10, 75, 10, 0},
		{"zero", 50, 0, 0, 50},
	}

	for _, tt := range tests {
		p := newTestPlayer()
		p.Health = tt.health

		got, err := p.ApplyDamage(tt.amount)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tt.name, err)
		}
		if got != tt.wantActual || p.Health != tt.wantHealth {
			t.Errorf("%s: ApplyDamage(%d) = %d, health %d; want %d, health %d",
				tt.name, tt.amount, got, p.Health, tt.wantActual, tt.wantHealth)
		}
	}
}

func TestPlayerApplyDamageRejectsNegative(t *testing.T) {
	p := newTestPlayer()

	_, err := p.ApplyDamage(-5)
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("ApplyDamage(-5) error = %v, want InvalidArgument", err)
	}
	if p.Health != 100 {
		t.Errorf("Health changed to %d after rejected damage", p.Health)
	}
}

func TestPlayerRestore(t *testing.T) {
	p := newTestPlayer()
	p.Health = 70
	p.Mana = 40

	got, err := p.Restore(gamedata.ResourceHealth, 50)
	if err != nil {
		t.Fatal(err)
	}
	if got != 30 || p.Health != 100 {
		t.Errorf("Restore(health, 50) = %d, health %d; want 30, 100", got, p.Health)
	}

	got, err = p.Restore(gamedata.ResourceMana, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got != 5 || p.Mana != 45 {
		t.Errorf("Restore(mana, 5) = %d, mana %d; want 5, 45", got, p.Mana)
	}
}

func TestPlayerRestoreRejectsBadInput(t *testing.T) {
	p := newTestPlayer()

	if _, err := p.Restore(gamedata.ResourceMana, -1); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("negative restore error = %v, want InvalidArgument", err)
	}
	if _, err := p.Restore(gamedata.Resource("gold"), 10); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("unknown resource error = %v, want InvalidArgument", err)
	}
}

func TestPlayerSpendMana(t *testing.T) {
	p := newTestPlayer()

	ok, err := p.SpendMana(25)
	if err != nil || !ok || p.Mana != 25 {
		t.Errorf("SpendMana(25) = %v, %v; mana %d", ok, err, p.Mana)
	}

	p.Mana = 10
	ok, err = p.SpendMana(25)
	if err != nil || ok || p.Mana != 10 {
		t.Errorf("SpendMana(25) with 10 mana = %v, %v; mana %d", ok, err, p.Mana)
	}
}

func TestPlayerConsumePotion(t *testing.T) {
	p := newTestPlayer()
	p.ManaPotions = 1

	if !p.ConsumePotion(gamedata.ResourceMana) {
		t.Fatal("ConsumePotion(mana) should succeed with one potion")
	}
	if p.ConsumePotion(gamedata.ResourceMana) {
		t.Error("ConsumePotion(mana) should fail with no potions")
	}
	if p.PotionCount(gamedata.ResourceMana) != 0 {
		t.Errorf("PotionCount(mana) = %d, want 0", p.PotionCount(gamedata.ResourceMana))
	}
	if p.PotionCount(gamedata.ResourceHealth) != 3 {
		t.Errorf("PotionCount(health) = %d, want 3", p.PotionCount(gamedata.ResourceHealth))
	}
}

func TestPlayerResetVitalsKeepsInventory(t *testing.T) {
	p := newTestPlayer()
	p.Health = 0
	p.Mana = 3
	p.HealthPotions = 1
	p.Gold = 12
	p.LastAction = "Fireball"

	p.ResetVitals()

	if p.Health != 100 || p.Mana != 50 {
		t.Errorf("ResetVitals() vitals = %d/%d, want 100/50", p.Health, p.Mana)
	}
	if p.HealthPotions != 1 || p.Gold != 12 || p.LastAction != "Fireball" {
		t.Errorf("ResetVitals() should not touch inventory, got %+v", *p)
	}
}

func TestEnemyDamageAndHeal(t *testing.T) {
	e := NewEnemy("Knight", 100, 25, gamedata.BehaviorDefensive)

	if _, err := e.ApplyDamage(130); err != nil {
		t.Fatal(err)
	}
	if e.Health != 0 || !e.IsDefeated() {
		t.Errorf("Enemy health %d after overkill, want 0 and defeated", e.Health)
	}

	e.Health = 90
	healed, err := e.Heal(30)
	if err != nil {
		t.Fatal(err)
	}
	if healed != 10 || e.Health != 100 {
		t.Errorf("Heal(30) at 90/100 = %d, health %d; want 10, 100", healed, e.Health)
	}

	if _, err := e.Heal(-1); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("Heal(-1) error = %v, want InvalidArgument", err)
	}
}

func TestNewEnemyFromDef(t *testing.T) {
	def := &gamedata.SpeciesDef{ID: "golem", Name: "Golem", Glyph: "G", Color: "#8B7355", HP: 150, Damage: 50}

	e := NewEnemyFromDef(def, gamedata.BehaviorAggressive)

	if e.Name != "Golem" || e.Health != 150 || e.MaxHealth != 150 || e.BaseDamage != 50 {
		t.Errorf("NewEnemyFromDef() = %+v", *e)
	}
	if e.Symbol() != 'G' {
		t.Errorf("Symbol() = %c, want G", e.Symbol())
	}
	if e.TurnsSinceSpecial != 0 {
		t.Errorf("TurnsSinceSpecial = %d, want 0", e.TurnsSinceSpecial)
	}
}

func TestHealthFraction(t *testing.T) {
	tests := []struct {
		name   string
		health int
		max    int
		want   float64
	}{
		{"full", 100, 100, 1},
		{"half", 50, 100, 0.5},
		{"quarter", 25, 100, 0.25},
		{"empty", 0, 100, 0},
		{"no max", 10, 0, 0},
	}

	for _, tt := range tests {
		e := NewEnemy("Goblin", tt.max, 10, gamedata.BehaviorAggressive)
		e.Health = tt.health
		if got := e.HealthFraction(); got != tt.want {
			t.Errorf("%s: Enemy.HealthFraction() = %v, want %v", tt.name, got, tt.want)
		}

		p := newTestPlayer()
		p.MaxHealth = tt.max
		p.Health = tt.health
		if got := p.HealthFraction(); got != tt.want {
			t.Errorf("%s: Player.HealthFraction() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestManaFraction(t *testing.T) {
	p := newTestPlayer()
	if got := p.ManaFraction(); got != 1 {
		t.Errorf("ManaFraction() at 50/50 = %v, want 1", got)
	}
	p.Mana = 25
	if got := p.ManaFraction(); got != 0.5 {
		t.Errorf("ManaFraction() at 25/50 = %v, want 0.5", got)
	}
}
