// Package gamedata holds the game's tables (attacks, potions, species, the
// starting mage and menu hints) as embedded YAML, plus the registries that
// look them up.
package gamedata

import "embed"

//go:embed *.yaml
var dataFS embed.FS
