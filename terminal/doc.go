// Package terminal adapts a tcell screen to the game loop.
//
// A Screen owns the tcell.Screen and one pump goroutine blocking on PollEvent.
// Translated events are buffered on a channel and drained without blocking by
// Poll, once per tick, so the loop never waits on the keyboard.
//
// Key mapping:
//   - arrows and h/j/k/l move
//   - Enter selects, Escape goes back, Space strikes
//   - Ctrl+C and Ctrl+Q quit
package terminal
