package server

import (
	"encoding/json"
	"time"
)

// MessageType identifies a WebSocket message
type MessageType string

const (
	// Client → Server
	MessageTypeAdvise  MessageType = "advise"
	MessageTypeObserve MessageType = "observe"
	MessageTypeReveal  MessageType = "reveal"

	// Server → Client
	MessageTypeDecision MessageType = "decision"
	MessageTypeError    MessageType = "error"
)

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// ValidActionData mirrors the engine's legal-action entry on the wire.
// A raise entry with min -1 means raising is disallowed.
type ValidActionData struct {
	Action string `json:"action"`
	Min    int    `json:"min"`
	Max    int    `json:"max"`
}

// OpponentActionData is one entry in the betting history.
type OpponentActionData struct {
	Actor  string `json:"actor"`
	Action string `json:"action"`
	Amount int    `json:"amount"`
}

// AdviseRequestData asks for a recommendation at one decision point.
type AdviseRequestData struct {
	Street          string               `json:"street"`
	Position        string               `json:"position"`
	HoleCards       []string             `json:"holeCards"`
	CommunityCards  []string             `json:"communityCards,omitempty"`
	PotSize         int                  `json:"potSize"`
	StackSize       int                  `json:"stackSize"`
	CallAmount      int                  `json:"callAmount"`
	BigBlind        int                  `json:"bigBlind"`
	ActiveOpponents int                  `json:"activeOpponents,omitempty"`
	OpponentActions []OpponentActionData `json:"opponentActions,omitempty"`
	ValidActions    []ValidActionData    `json:"validActions"`
	ExploitAction   string               `json:"exploitAction,omitempty"`
	ExploitAmount   int                  `json:"exploitAmount,omitempty"`
}

// ObserveData records one opponent action for tendency tracking.
type ObserveData struct {
	Actor  string `json:"actor"`
	Action string `json:"action"`
}

// RevealData carries the hole cards shown at the end of a round.
type RevealData struct {
	RoundID   string              `json:"roundId"`
	HoleCards map[string][]string `json:"holeCards"`
}

// SizingData is the wire form of a sizing recommendation.
type SizingData struct {
	Optimal     float64 `json:"optimal"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Type        string  `json:"type"`
	Explanation string  `json:"explanation"`
}

// RangeData is the wire form of the range analysis.
type RangeData struct {
	HandLabel     string  `json:"handLabel"`
	InOpenRange   bool    `json:"inOpenRange"`
	InDefendRange bool    `json:"inDefendRange"`
	RangeStrength float64 `json:"rangeStrength"`
}

// DecisionData is the engine's recommendation for one request.
type DecisionData struct {
	Action      string             `json:"action"`
	Amount      int                `json:"amount"`
	Confidence  float64            `json:"confidence"`
	Frequencies map[string]float64 `json:"frequencies"`
	Sizing      SizingData         `json:"sizing"`
	Range       RangeData          `json:"range"`
	Reasoning   string             `json:"reasoning"`
	Fallback    bool               `json:"fallback,omitempty"`
}

// ErrorData reports a request-level failure.
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
