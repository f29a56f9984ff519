package core

// RuntimeConfig contains the runtime parameters passed to the game at
// initialization: screen geometry, tick rate and the RNG seed used for
// deterministic apple placement.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform frames per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks a time-based seed
}

// GameState summarizes the game for the platform layer.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended (death or win)
	Won      bool // Whether the board was filled
	Paused   bool // Whether the game is paused
}

// Event is a discrete signal emitted by a simulation step. The presentation
// layer consumes events to trigger sound and visual feedback; the engine
// attaches no meaning to them beyond emitting.
type Event int

const (
	EventAppleEaten Event = iota
	EventDied
	EventWon
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventAppleEaten:
		return "apple_eaten"
	case EventDied:
		return "died"
	case EventWon:
		return "won"
	default:
		return "unknown"
	}
}

// StepResult is returned after each simulation tick. It carries the updated
// state and any events that occurred during the tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the result contains the given event.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
