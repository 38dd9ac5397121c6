package repositories

import (
	"care-chat/domain"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/protobuf/encoding/protowire"
)

// conversationID renders a key as two base64url segments so that
// neither ':' nor '.' inside user IDs can break the key layout.
func conversationID(key domain.ConversationKey) string {
	return base64.RawURLEncoding.EncodeToString([]byte(key.A)) + "." +
		base64.RawURLEncoding.EncodeToString([]byte(key.B))
}

func parseConversationID(id string) (domain.ConversationKey, error) {
	a, b, ok := strings.Cut(id, ".")
	if !ok {
		return domain.ConversationKey{}, fmt.Errorf("invalid conversation id %q", id)
	}
	rawA, err := base64.RawURLEncoding.DecodeString(a)
	if err != nil {
		return domain.ConversationKey{}, err
	}
	rawB, err := base64.RawURLEncoding.DecodeString(b)
	if err != nil {
		return domain.ConversationKey{}, err
	}
	return domain.NewConversationKey(string(rawA), string(rawB)), nil
}

const (
	userFieldID           protowire.Number = 1
	userFieldName         protowire.Number = 2
	userFieldUsername     protowire.Number = 3
	userFieldEmail        protowire.Number = 4
	userFieldRole         protowire.Number = 5
	userFieldPhysicianID  protowire.Number = 6
	userFieldPatientID    protowire.Number = 7
	userFieldPasswordHash protowire.Number = 8
)

func encodeUser(u domain.User) []byte {
	var b []byte
	b = appendString(b, userFieldID, u.ID)
	b = appendString(b, userFieldName, u.Name)
	b = appendString(b, userFieldUsername, u.Username)
	b = appendString(b, userFieldEmail, u.Email)
	b = appendString(b, userFieldRole, string(u.Role))
	b = appendString(b, userFieldPhysicianID, u.PhysicianID)
	for _, id := range u.PatientIDs {
		b = appendString(b, userFieldPatientID, id)
	}
	b = appendString(b, userFieldPasswordHash, u.PasswordHash)
	return b
}

func decodeUser(b []byte) (domain.User, error) {
	var u domain.User
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return domain.User{}, protowire.ParseError(n)
		}
		b = b[n:]
		if typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return domain.User{}, protowire.ParseError(n)
			}
			b = b[n:]
			continue
		}
		v, n := protowire.ConsumeString(b)
		if n < 0 {
			return domain.User{}, protowire.ParseError(n)
		}
		b = b[n:]
		switch num {
		case userFieldID:
			u.ID = v
		case userFieldName:
			u.Name = v
		case userFieldUsername:
			u.Username = v
		case userFieldEmail:
			u.Email = v
		case userFieldRole:
			u.Role = domain.Role(v)
		case userFieldPhysicianID:
			u.PhysicianID = v
		case userFieldPatientID:
			u.PatientIDs = append(u.PatientIDs, v)
		case userFieldPasswordHash:
			u.PasswordHash = v
		}
	}
	return u, nil
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}
