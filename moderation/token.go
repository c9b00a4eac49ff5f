package moderation

import (
	"fmt"
	"strconv"
	"strings"
)

// Action is a moderator verb carried by a prompt button.
type Action string

const (
	ActionPublish Action = "publish"
	ActionReject  Action = "reject"
	ActionErase   Action = "erase"
)

// DecisionToken builds the opaque token bound to a prompt button,
// of the form "<verb>_<id>".
func DecisionToken(action Action, id int64) string {
	return fmt.Sprintf("%s_%d", action, id)
}

// ParseToken decodes a "<verb>_<id>" token into an action and submission id.
func ParseToken(token string) (Action, int64, error) {
	verb, rawID, found := strings.Cut(token, "_")
	if !found {
		return "", 0, fmt.Errorf("%w: %q", ErrBadToken, token)
	}

	action := Action(verb)
	switch action {
	case ActionPublish, ActionReject, ActionErase:
	default:
		return "", 0, fmt.Errorf("%w: unknown verb %q", ErrBadToken, verb)
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q", ErrBadToken, token)
	}

	return action, id, nil
}
