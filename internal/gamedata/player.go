package gamedata

import (
	"github.com/samdwyer/lowlymage/internal/apperrors"
)

// PlayerTemplate holds the starting stats of the mage.
type PlayerTemplate struct {
	Name          string `yaml:"name"`
	MaxHealth     int    `yaml:"maxHealth"`
	MaxMana       int    `yaml:"maxMana"`
	Gold          int    `yaml:"gold"`
	HealthPotions int    `yaml:"healthPotions"`
	ManaPotions   int    `yaml:"manaPotions"`
	HasFireball   bool   `yaml:"hasFireball"`
}

// LoadPlayerTemplate loads the starting stats from the embedded player.yaml file.
func LoadPlayerTemplate() (PlayerTemplate, error) {
	tmpl, err := Load[PlayerTemplate]("player.yaml")
	if err != nil {
		return tmpl, err
	}
	if tmpl.MaxHealth <= 0 || tmpl.MaxMana < 0 || tmpl.HealthPotions < 0 || tmpl.ManaPotions < 0 {
		return tmpl, apperrors.New(apperrors.CodeInvalidArgument, "player template has invalid stats")
	}
	return tmpl, nil
}

// MustLoadPlayerTemplate loads the player template, panicking on error.
func MustLoadPlayerTemplate() PlayerTemplate {
	tmpl, err := LoadPlayerTemplate()
	if err != nil {
		panic(err)
	}
	return tmpl
}
