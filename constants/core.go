package constants

import "time"

// Game Loop Timing
const (
	// TickRate is the default number of loop ticks per second
	TickRate = 60

	// TickInterval is the wall-clock duration of one tick at TickRate (~16.6ms)
	TickInterval = time.Second / TickRate

	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 256
)
