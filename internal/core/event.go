package core

// EventType identifies something that happened during a simulation tick.
// Frontends use events to trigger audio and cosmetics without inspecting
// game internals.
type EventType int

const (
	EventPlaced   EventType = iota // A block was committed on the stack
	EventPerfect                   // The placement was within tolerance of a full overlap
	EventMiss                      // The block missed the one below
	EventLifeLost                  // A life was taken
	EventPowerUp                   // A power-up was activated
	EventWin                       // The win score was reached
	EventGameOver                  // The last life was lost
	EventRestart                   // The game was reset by the player
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventPlaced:
		return "Placed"
	case EventPerfect:
		return "Perfect"
	case EventMiss:
		return "Miss"
	case EventLifeLost:
		return "LifeLost"
	case EventPowerUp:
		return "PowerUp"
	case EventWin:
		return "Win"
	case EventGameOver:
		return "GameOver"
	case EventRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// Event is a single occurrence within a tick.
// Value carries event-specific data (overlap width, power-up kind, etc.).
type Event struct {
	Type  EventType
	Value float64
}
