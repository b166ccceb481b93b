package engine

// EventType enumerates the feedback events a session emits.
type EventType int

const (
	EventRotated EventType = iota
	EventLocked
	EventCleared
	EventLevelUp
	EventGameOver
)

// String returns a lower-case event name.
func (t EventType) String() string {
	switch t {
	case EventRotated:
		return "rotated"
	case EventLocked:
		return "locked"
	case EventCleared:
		return "cleared"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by a session operation. Only the fields relevant to the
// type are set.
type Event struct {
	Type   EventType
	Lines  int // EventCleared: lines removed in the pass
	Combos int // EventCleared: item-combo lines among them
	Points int // EventCleared: points awarded
	Level  int // EventLevelUp: new level
	Score  int // EventGameOver: final score
}
