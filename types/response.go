package types

type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type AskResponse struct {
	Success bool   `json:"success"`
	Answer  string `json:"answer"`
}

type DocumentsResponse struct {
	Success   bool     `json:"success"`
	Documents []string `json:"documents"`
}
