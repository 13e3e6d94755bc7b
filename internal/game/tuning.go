package game

import "github.com/tomz197/hive/internal/physics"

// HUD layout. The HUD strip also caps how far up the bee can move.
const (
	HUDHeight     = physics.FieldHeight / 15
	hudPanelWidth = physics.FieldWidth / 7
)

// Spawning
const (
	UpgradeOdds        = 300 // 1 in N chance per tick
	MaxUpgrades        = 2
	EnemySpawnInterval = 20 // Ticks between enemy spawn attempts
	MaxEnemies         = 20
	StrongEnemyOdds    = 10 // 1 in N spawns is a YellowJacket
)

// Scoring
const (
	DefaultWinScore = 4000
)

// Text sizes scale with the playfield the same way for every screen.
const (
	titleTextSize = (physics.FieldWidth + physics.FieldHeight) / 40
	bodyTextSize  = (physics.FieldWidth + physics.FieldHeight) / 60
)
