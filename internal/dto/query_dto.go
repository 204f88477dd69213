package dto

type QueryRequest struct {
	Question string `json:"question" validate:"required"`
}

type QueryResponse struct {
	Answer string `json:"answer"`
}
