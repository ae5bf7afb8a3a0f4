package game

// DebugState holds overlay flags toggled at runtime
type DebugState struct {
	ShowGrid  bool // Show partition cell outlines
	ShowStats bool // Show per-tick collision statistics
}

// Global debug state instance
var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}
