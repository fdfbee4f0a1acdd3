package request

// CreatePlayerRequest is the body for POST /players
type CreatePlayerRequest struct {
	Username string `json:"username"`
}

// IntroduceRequest is the body for POST /players/{username}/introduce
type IntroduceRequest struct {
	DisplayName string `json:"display_name"`
}

// CreateGameRequest is the body for POST /games
type CreateGameRequest struct {
	Username string `json:"username"`
}

// JoinGameRequest is the body for POST /games/{code}/join
type JoinGameRequest struct {
	Username string `json:"username"`
}

// GuessRequest is the body for POST /games/{code}/guesses
type GuessRequest struct {
	Username string `json:"username"`
	Guess    string `json:"guess"`
}
