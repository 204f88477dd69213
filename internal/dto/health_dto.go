package dto

// RagHealthResponse is the retrieval service's health payload. Field names
// mirror the public API contract.
type RagHealthResponse struct {
	Status           string `json:"status"`
	VectorstoreReady bool   `json:"vectorstore_ready"`
	TotalDocuments   int    `json:"total_documents"`
}

// GatewayHealthResponse is the gateway's local-only health payload.
type GatewayHealthResponse struct {
	Status      string `json:"status"`
	RagURL      string `json:"rag_url"`
	Environment string `json:"environment"`
}

// RagProxyHealthResponse wraps the retrieval service's health as relayed
// through the gateway.
type RagProxyHealthResponse struct {
	Status      string             `json:"status"`
	RagResponse *RagHealthResponse `json:"ragResponse,omitempty"`
}
