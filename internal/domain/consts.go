package domain

// EventType discriminates the two kinds of persisted events.
type EventType string

const (
	EventTypeBirthday EventType = "Birthday"
	EventTypeGarbage  EventType = "Garbage"
)

// GarbageType is the bin color as shown on the keyboard.
type GarbageType string

const (
	GarbageSchwarz GarbageType = "Schwarz"
	GarbageGelb    GarbageType = "Gelb"
	GarbageGruen   GarbageType = "Grün"
	GarbageBraun   GarbageType = "Braun"
)

// GarbageTypes lists all bin colors in keyboard order.
var GarbageTypes = []GarbageType{GarbageSchwarz, GarbageGelb, GarbageGruen, GarbageBraun}

// GarbageDescriptions maps bin colors to what actually gets collected.
var GarbageDescriptions = map[GarbageType]string{
	GarbageSchwarz: "Hausmüll",
	GarbageGruen:   "Papier",
	GarbageBraun:   "Gartenabfall",
	GarbageGelb:    "Plastik",
}

// GarbageEmojis maps bin colors to the emoji used in reminder messages.
var GarbageEmojis = map[GarbageType]string{
	GarbageSchwarz: "⚫️",
	GarbageGruen:   "🟢",
	GarbageBraun:   "🟤",
	GarbageGelb:    "🟡",
}

// GarbageDescription returns the collection description for a bin color,
// falling back to the raw value for unknown colors.
func GarbageDescription(t GarbageType) string {
	if desc, ok := GarbageDescriptions[t]; ok {
		return desc
	}
	return string(t)
}

// GarbageEmoji returns the emoji for a bin color, empty for unknown colors.
func GarbageEmoji(t GarbageType) string {
	return GarbageEmojis[t]
}

// CancelWord is the reserved input that aborts any wizard at any step.
const CancelWord = "Abbrechen"
