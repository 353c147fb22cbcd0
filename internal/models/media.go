package models

// MediaID is the server-assigned identifier of a Media item.
type MediaID int64

var MediaKeys = []string{"id", "event_id", "base64_data"}

// Media is a binary attachment of an Event. The payload travels as base64
// text on the wire.
type Media struct {
	ID         MediaID `json:"id"`
	EventID    EventID `json:"event_id"`
	Base64Data []byte  `json:"base64_data"`
}

// MediaCreate is the body of POST /media.
type MediaCreate struct {
	EventID    EventID `json:"event_id"`
	Base64Data []byte  `json:"base64_data"`
}
