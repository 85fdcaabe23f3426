package stream

import (
	"encoding/json"
	"fmt"
)

// Event is the decoded form of one wire frame: the type tag plus exactly
// one non-nil payload pointer (none for TypeUnknown, which keeps the raw
// bytes instead).
type Event struct {
	Type EventType

	Session        *SessionPayload
	Thinking       *ThinkingPayload
	ToolCall       *ToolCallPayload
	Data           *DataPayload
	UIAction       *UIActionPayload
	SummaryMessage *SummaryMessagePayload
	UIComplete     *UICompletePayload
	Text           *TextPayload
	TitleUpdate    *TitleUpdatePayload
	Done           *DonePayload
	Error          *ErrorPayload

	// Raw holds the undecoded frame for TypeUnknown events.
	Raw json.RawMessage
}

// Terminal reports whether no further events may follow on this stream.
// Only done is terminal: a generation error is followed by done, and a
// stream that dies without done signals a transport failure.
func (e Event) Terminal() bool {
	return e.Type == TypeDone
}

// DecodeEvent parses one JSON frame into an Event. An unrecognized type
// tag yields a TypeUnknown event and no error — unknown variants are
// ignorable by contract, so only malformed JSON is a decode failure.
func DecodeEvent(data []byte) (Event, error) {
	var tag struct {
		Type EventType `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return Event{}, fmt.Errorf("malformed stream event: %w", err)
	}

	ev := Event{Type: tag.Type}
	var payload any
	switch tag.Type {
	case TypeSession:
		ev.Session = &SessionPayload{}
		payload = ev.Session
	case TypeThinking:
		ev.Thinking = &ThinkingPayload{}
		payload = ev.Thinking
	case TypeToolCall:
		ev.ToolCall = &ToolCallPayload{}
		payload = ev.ToolCall
	case TypeData:
		ev.Data = &DataPayload{}
		payload = ev.Data
	case TypeUIAction:
		ev.UIAction = &UIActionPayload{}
		payload = ev.UIAction
	case TypeSummaryMessage:
		ev.SummaryMessage = &SummaryMessagePayload{}
		payload = ev.SummaryMessage
	case TypeUIComplete:
		ev.UIComplete = &UICompletePayload{}
		payload = ev.UIComplete
	case TypeText:
		ev.Text = &TextPayload{}
		payload = ev.Text
	case TypeTitleUpdate:
		ev.TitleUpdate = &TitleUpdatePayload{}
		payload = ev.TitleUpdate
	case TypeDone:
		ev.Done = &DonePayload{}
		payload = ev.Done
	case TypeError:
		ev.Error = &ErrorPayload{}
		payload = ev.Error
	default:
		ev.Type = TypeUnknown
		ev.Raw = append(json.RawMessage(nil), data...)
		return ev, nil
	}

	if err := json.Unmarshal(data, payload); err != nil {
		return Event{}, fmt.Errorf("malformed %s event: %w", tag.Type, err)
	}
	return ev, nil
}
