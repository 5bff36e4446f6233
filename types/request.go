package types

type AskRequest struct {
	Question string `json:"question"`
}
