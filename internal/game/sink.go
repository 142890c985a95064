package game

import "checkers/internal/core"

// Sink receives synchronous notifications for the presentation layer.
// Calls complete before the triggering move returns; no buffering.
type Sink interface {
	// Message carries user-facing status text (rejections, notices).
	Message(text string)
	// BoardChanged fires after every successful move.
	BoardChanged(result *MoveResult)
	// TurnChanged fires after the turn flips.
	TurnChanged(turn core.Color)
}

type NopSink struct{}

func (NopSink) Message(string)           {}
func (NopSink) BoardChanged(*MoveResult) {}
func (NopSink) TurnChanged(core.Color)   {}
