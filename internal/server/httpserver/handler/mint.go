// Package handler provides HTTP request handlers for Soul Forge.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/twistedsoul/forge-go/internal/core/domain"
	"github.com/twistedsoul/forge-go/internal/core/service"
)

// maxMintBodyBytes bounds the request body; manifests are small.
const maxMintBodyBytes = 16 << 10

// handleMint handles POST /api/mint.
//
// The call is synchronous: it returns after the launch confirms, fails,
// or times out. On failure the response still carries the operation id
// (and transaction signature, when submission happened) so the caller
// can re-check by identifier instead of resubmitting.
func (h *Handler) handleMint(w http.ResponseWriter, r *http.Request) {
	var req MintRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMintBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "TS-ARG-1002", "invalid request body: "+err.Error())
		return
	}

	manifest := domain.TokenManifest{
		Name:        req.Token.Name,
		Symbol:      req.Token.Symbol,
		HumanSupply: req.Token.Supply,
		Description: req.Token.Description,
		Twitter:     req.Token.Twitter,
		Telegram:    req.Token.Telegram,
		Website:     req.Token.Website,
		Bindings: domain.PolicyFlags{
			LockLiquidity: req.Bindings.LockLiquidity,
			RenounceMint:  req.Bindings.RenounceMint,
			NoGodWallet:   req.Bindings.NoGodWallet,
			OpenSource:    req.Bindings.OpenSource,
		},
	}

	resp, err := h.mintSvc.Launch(r.Context(), &service.LaunchRequest{Manifest: manifest})
	if err != nil {
		code := domain.GetErrorCode(err)
		status := http.StatusInternalServerError
		if domain.IsDomainError(err, "") {
			status = errorCodeToHTTPStatus(code)
		} else {
			h.logger.Error("mint launch failed", "error", err)
			code = "TS-SYS-5000"
		}

		body := &MintResponse{
			OK:        false,
			Error:     err.Error(),
			ErrorCode: code,
		}
		if resp != nil {
			body.OperationID = resp.OperationID
			body.Signature = resp.TransactionID
		}
		w.Header().Set("X-Error-Code", code)
		h.writeJSON(w, status, body)
		return
	}

	h.writeJSON(w, http.StatusOK, &MintResponse{
		OK:             true,
		MintAddress:    resp.MintAddress,
		HoldingAddress: resp.HoldingAddress,
		Signature:      resp.TransactionID,
		OperationID:    resp.OperationID,
	})
}

// handleListOperations handles GET /api/operations.
func (h *Handler) handleListOperations(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.writeError(w, http.StatusBadRequest, "TS-ARG-1002", "limit must be a positive integer")
			return
		}
		limit = n
	}

	ops, err := h.mintSvc.ListOperations(r.Context(), limit)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	items := make([]*OperationResponse, 0, len(ops))
	for _, op := range ops {
		items = append(items, operationToResponse(op))
	}
	h.writeJSON(w, http.StatusOK, &ListOperationsResponse{
		OK:         true,
		Operations: items,
	})
}

// handleGetOperation handles GET /api/operations/{id}.
func (h *Handler) handleGetOperation(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	op, err := h.mintSvc.GetOperation(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, operationToResponse(op))
}

// operationToResponse projects an operation record onto the wire shape.
func operationToResponse(op *domain.Operation) *OperationResponse {
	view := op.View()
	return &OperationResponse{
		OK:             true,
		OperationID:    op.ID,
		State:          string(view.State),
		Phase:          string(op.Phase),
		Message:        view.Message,
		MintAddress:    view.MintAddress,
		HoldingAddress: view.HoldingAddress,
		Signature:      view.TransactionID,
		ErrorCode:      view.ErrorCode,
		CreatedAt:      op.CreatedAt,
		UpdatedAt:      op.UpdatedAt,
	}
}
