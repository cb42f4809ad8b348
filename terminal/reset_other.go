//go:build !linux

package terminal

// resetTerminalMode is a no-op; tcell's Fini restores the mode on these platforms
func resetTerminalMode() {}
