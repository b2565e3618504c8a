// Package handler provides HTTP request handlers for Soul Forge.
package handler

// MintRequest is the request body for POST /api/mint.
//
// The wire field names follow the public relay contract, which uses
// camelCase; they are mapped onto the domain manifest at the edge.
type MintRequest struct {
	Token    MintToken    `json:"token"`
	Bindings MintBindings `json:"bindings"`
}

// MintToken describes the token to create.
type MintToken struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Supply      string `json:"supply"`
	Description string `json:"description,omitempty"`
	Twitter     string `json:"twitter,omitempty"`
	Telegram    string `json:"telegram,omitempty"`
	Website     string `json:"website,omitempty"`
}

// MintBindings carries the advisory policy declarations.
type MintBindings struct {
	LockLiquidity bool `json:"lockLiquidity"`
	RenounceMint  bool `json:"renounceMint"`
	NoGodWallet   bool `json:"noGodWallet"`
	OpenSource    bool `json:"openSource"`
}

// MintResponse is the response body for POST /api/mint.
type MintResponse struct {
	OK             bool   `json:"ok"`
	MintAddress    string `json:"mintAddress,omitempty"`
	HoldingAddress string `json:"holdingAddress,omitempty"`
	Signature      string `json:"signature,omitempty"`
	OperationID    string `json:"operationId,omitempty"`
	Error          string `json:"error,omitempty"`
	ErrorCode      string `json:"errorCode,omitempty"`
}

// OperationResponse is the response body for GET /api/operations/{id}.
type OperationResponse struct {
	OK             bool   `json:"ok"`
	OperationID    string `json:"operationId"`
	State          string `json:"state"`
	Phase          string `json:"phase"`
	Message        string `json:"message,omitempty"`
	MintAddress    string `json:"mintAddress,omitempty"`
	HoldingAddress string `json:"holdingAddress,omitempty"`
	Signature      string `json:"signature,omitempty"`
	ErrorCode      string `json:"errorCode,omitempty"`
	CreatedAt      int64  `json:"createdAt"`
	UpdatedAt      int64  `json:"updatedAt"`
}

// ListOperationsResponse is the response body for GET /api/operations.
type ListOperationsResponse struct {
	OK         bool                 `json:"ok"`
	Operations []*OperationResponse `json:"operations"`
}

// ErrorResponse is the body for request-level failures.
type ErrorResponse struct {
	OK        bool   `json:"ok"`
	Error     string `json:"error"`
	ErrorCode string `json:"errorCode,omitempty"`
}
