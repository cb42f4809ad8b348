package constants

// Terminal play defaults, sized for one glyph per world unit
const (
	// ArenaPlayerWidth and ArenaPlayerHeight are the player bounds in cells
	ArenaPlayerWidth  = 2.0
	ArenaPlayerHeight = 1.0

	// ArenaPlayerSpeed is the player step per key press in cells
	ArenaPlayerSpeed = 1.0

	// ArenaEnemySpeed is the enemy step per tick in cells
	ArenaEnemySpeed = 0.25

	// ArenaSpawnEveryTicks is the number of ticks between enemy spawns
	ArenaSpawnEveryTicks = 45

	// ArenaMaxEnemies caps the number of live enemies
	ArenaMaxEnemies = 12

	// StrikeDamage is the damage dealt to each enemy in strike range
	StrikeDamage = 40

	// StrikeReach grows the player bounds on each side when striking
	StrikeReach = 1.0
)
