package ws

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/stephyg0/christmas/internal/domain"
)

// decodeRequest turns a raw frame into a typed request or a protocol error.
// A missing or null data object decodes as an empty payload.
func decodeRequest(raw []byte) (domain.Request, error) {
	if !json.Valid(raw) {
		return nil, domain.ErrInvalidJSON
	}
	env, err := decodeEnvelope(raw)
	if err != nil {
		return nil, err
	}

	switch env.Type {
	case domain.MessageTypeCreateSession:
		var req domain.CreateSessionRequest
		if err := decodeData(env, &req); err != nil {
			return nil, err
		}
		return req, nil

	case domain.MessageTypeJoinSession:
		var req domain.JoinSessionRequest
		if err := decodeData(env, &req); err != nil {
			return nil, err
		}
		return req, nil

	case domain.MessageTypeUpdateAvatar:
		var req domain.UpdateAvatarRequest
		if err := decodeData(env, &req); err != nil {
			return nil, err
		}
		return req, nil

	case domain.MessageTypePlaceDecoration,
		domain.MessageTypeUpdateDecoration,
		domain.MessageTypeRemoveDecoration:
		var req domain.DecorationRequest
		if err := decodeData(env, &req); err != nil {
			return nil, err
		}
		req.Kind = env.Type
		return req, nil

	case domain.MessageTypeRequestState:
		return domain.RequestStateRequest{}, nil
	}

	return nil, domain.UnknownEventError(string(env.Type))
}

func decodeData(env domain.Envelope, into any) error {
	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(data, into); err != nil {
		return domain.InvalidPayloadError(env.Type)
	}
	return nil
}

// decodeEnvelope splits well-formed JSON into type and data. A frame that is
// not an object, or whose type is not a string, is an unknown event.
func decodeEnvelope(raw []byte) (domain.Envelope, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return domain.Envelope{}, domain.UnknownEventError("undefined")
	}

	typeRaw, ok := fields["type"]
	if !ok {
		return domain.Envelope{}, domain.UnknownEventError("undefined")
	}
	var msgType any
	if err := json.Unmarshal(typeRaw, &msgType); err != nil {
		return domain.Envelope{}, domain.ErrInvalidJSON
	}
	name, ok := msgType.(string)
	if !ok {
		return domain.Envelope{}, domain.UnknownEventError(eventLabel(msgType))
	}

	return domain.Envelope{Type: domain.MessageType(name), Data: fields["data"]}, nil
}

// eventLabel renders a non-string type the way the browser client would print it
func eventLabel(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			if e != nil {
				parts[i] = eventLabel(e)
			}
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}
