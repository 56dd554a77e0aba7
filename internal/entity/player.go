package entity

type Player struct {
	ID     string `json:"id"`
	GameID string `json:"game_id,omitempty"`
}

type User struct {
	Email string `json:"email"`
}
