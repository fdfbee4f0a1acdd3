package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Username uniquely identifies a player across the system. It is supplied
// by the transport (a console name, a chat address) and never changes.
type Username string

// StatusKind enumerates the player lifecycle states
type StatusKind string

const (
	StatusNew         StatusKind = "new"
	StatusIntroducing StatusKind = "introducing"
	StatusInLobby     StatusKind = "in_lobby"
	StatusInGame      StatusKind = "in_game"
)

// Status is a player's position in the lifecycle state machine. A status
// carries a game code only while its kind is StatusInGame; the fields are
// unexported so the pair cannot drift apart.
type Status struct {
	kind     StatusKind
	gameCode GameCode
}

// NewStatus returns the status of a freshly created player
func NewStatus() Status {
	return Status{kind: StatusNew}
}

// IntroducingStatus returns the status of a player mid-introduction
func IntroducingStatus() Status {
	return Status{kind: StatusIntroducing}
}

// InLobbyStatus returns the status of a player waiting in the lobby
func InLobbyStatus() Status {
	return Status{kind: StatusInLobby}
}

// InGameStatus returns the status of a player active in the given game
func InGameStatus(code GameCode) Status {
	return Status{kind: StatusInGame, gameCode: code}
}

// Kind returns the lifecycle state this status represents
func (s Status) Kind() StatusKind {
	return s.kind
}

// GameCode returns the active game's code; ok is false unless the
// player is in a game
func (s Status) GameCode() (GameCode, bool) {
	if s.kind != StatusInGame {
		return "", false
	}
	return s.gameCode, true
}

// String implements fmt.Stringer
func (s Status) String() string {
	if s.kind == StatusInGame {
		return fmt.Sprintf("%s(%s)", s.kind, s.gameCode)
	}
	return string(s.kind)
}

// statusJSON is the serialized form of Status for storage backends
type statusJSON struct {
	Kind     StatusKind `json:"kind"`
	GameCode GameCode   `json:"game_code,omitempty"`
}

// MarshalJSON implements json.Marshaler
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(statusJSON{Kind: s.kind, GameCode: s.gameCode})
}

// UnmarshalJSON implements json.Unmarshaler
func (s *Status) UnmarshalJSON(data []byte) error {
	var sj statusJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		return err
	}
	switch sj.Kind {
	case StatusNew, StatusIntroducing, StatusInLobby:
		*s = Status{kind: sj.Kind}
	case StatusInGame:
		*s = Status{kind: StatusInGame, gameCode: sj.GameCode}
	default:
		return fmt.Errorf("unknown player status %q", sj.Kind)
	}
	return nil
}

// Player represents a game participant
type Player struct {
	Username    Username
	DisplayName string // empty until the player completes introduction
	Status      Status
	CreatedAt   time.Time
}

// NewPlayer creates a player in the initial lifecycle state
func NewPlayer(username Username, now time.Time) *Player {
	return &Player{
		Username:  username,
		Status:    NewStatus(),
		CreatedAt: now,
	}
}

// Name returns the display name if set, falling back to the username
func (p *Player) Name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return string(p.Username)
}
