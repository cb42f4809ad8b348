package constants

// --- Player Entity ---
const (
	// PlayerWidth and PlayerHeight are the default player bounds in world units
	PlayerWidth  = 50.0
	PlayerHeight = 60.0

	// PlayerSpeed scales the unit input vector per move
	PlayerSpeed = 5.0

	// PlayerChar is the fallback glyph when no sprite is loaded
	PlayerChar = '@'
)

// --- Enemy Entity ---
const (
	// EnemyHealth is the starting health of an enemy
	EnemyHealth = 100

	// EnemySpeed is the distance an enemy moves left every tick
	EnemySpeed = 2.0

	// EnemyChar is the glyph drawn for an enemy cell
	EnemyChar = 'X'
)
