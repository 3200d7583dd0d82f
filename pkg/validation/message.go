package validation

// Message is one validation outcome recorded at a path.
type Message struct {
	Level Level  `json:"level"`
	Code  string `json:"code"`
	Text  string `json:"text"`
}

// NewMessage builds a message. Messages are values; the set stores copies.
func NewMessage(level Level, code, text string) Message {
	return Message{Level: level, Code: code, Text: text}
}

func (m Message) IsError() bool   { return m.Level == LevelError }
func (m Message) IsWarning() bool { return m.Level == LevelWarning }
func (m Message) IsSuccess() bool { return m.Level == LevelSuccess }

func (m Message) String() string {
	return m.Level.String() + " " + m.Code + ": " + m.Text
}
