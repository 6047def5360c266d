package domain

import "encoding/json"

// MessageType defines the type of message being sent
type MessageType string

// Client -> server
const (
	MessageTypeCreateSession    MessageType = "create_session"
	MessageTypeJoinSession      MessageType = "join_session"
	MessageTypeUpdateAvatar     MessageType = "update_avatar"
	MessageTypePlaceDecoration  MessageType = "place_decoration"
	MessageTypeUpdateDecoration MessageType = "update_decoration"
	MessageTypeRemoveDecoration MessageType = "remove_decoration"
	MessageTypeRequestState     MessageType = "request_state"
)

// Server -> client
const (
	MessageTypeSessionCreated MessageType = "session_created"
	MessageTypeSessionJoined  MessageType = "session_joined"
	MessageTypeSessionState   MessageType = "session_state"
	MessageTypeError          MessageType = "error"
)

// Envelope is the inbound frame
type Envelope struct {
	Type MessageType     `json:"type"`
	Data json.RawMessage `json:"data"`
}

// OutboundMessage is the frame sent to clients.
// Error frames carry Message at the top level and no Data.
type OutboundMessage struct {
	Type    MessageType `json:"type"`
	Data    any         `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// SessionAttachedPayload answers create_session and join_session
type SessionAttachedPayload struct {
	PlayerID string          `json:"playerId"`
	Code     string          `json:"code"`
	State    SessionSnapshot `json:"state"`
}

// Request is a decoded inbound message, one variant per message type
type Request interface {
	MessageType() MessageType
}

// CreateSessionRequest is the payload of create_session
type CreateSessionRequest struct {
	DisplayName string       `json:"displayName"`
	Avatar      *AvatarPatch `json:"avatar"`
	Transform   *Transform   `json:"transform"`
}

func (CreateSessionRequest) MessageType() MessageType { return MessageTypeCreateSession }

// JoinSessionRequest is the payload of join_session
type JoinSessionRequest struct {
	Code        string       `json:"code"`
	DisplayName string       `json:"displayName"`
	Avatar      *AvatarPatch `json:"avatar"`
	Transform   *Transform   `json:"transform"`
}

func (JoinSessionRequest) MessageType() MessageType { return MessageTypeJoinSession }

// UpdateAvatarRequest is the payload of update_avatar
type UpdateAvatarRequest struct {
	Transform *Transform   `json:"transform"`
	Avatar    *AvatarPatch `json:"avatar"`
}

func (UpdateAvatarRequest) MessageType() MessageType { return MessageTypeUpdateAvatar }

// DecorationRequest is shared by place_decoration, update_decoration and
// remove_decoration. Kind is set by the decoder, not read from the payload.
type DecorationRequest struct {
	Kind      MessageType               `json:"-"`
	ID        string                    `json:"id"`
	TypeID    string                    `json:"typeId"`
	Type      string                    `json:"type"`
	Transform *DecorationTransformInput `json:"transform"`
	Color     *string                   `json:"color"`
	Glow      *float64                  `json:"glow"`
	CabinID   *string                   `json:"cabinId"`
	Scale     *float64                  `json:"scale"`
	Colors    []string                  `json:"colors"`
}

func (r DecorationRequest) MessageType() MessageType { return r.Kind }

// TypeName prefers typeId over type
func (r DecorationRequest) TypeName() string {
	if r.TypeID != "" {
		return r.TypeID
	}
	return r.Type
}

// RequestStateRequest is the (empty) payload of request_state
type RequestStateRequest struct{}

func (RequestStateRequest) MessageType() MessageType { return MessageTypeRequestState }
