// Package service provides the domain services for Soul Forge.
package service

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/twistedsoul/forge-go/internal/chain"
	"github.com/twistedsoul/forge-go/internal/core/domain"
	"github.com/twistedsoul/forge-go/internal/telemetry/logger"
	"github.com/twistedsoul/forge-go/internal/telemetry/metric"
)

// Coordinator timing defaults. The confirmation wait is bounded: after
// ConfirmTimeout the attempt ends deterministically with
// ErrConfirmationTimeout, and the transaction id is preserved so the
// caller can re-check instead of resubmitting.
const (
	DefaultConfirmTimeout = 60 * time.Second
	DefaultPollInterval   = 2 * time.Second
)

// MintConfig holds coordinator tuning.
type MintConfig struct {
	// ConfirmTimeout bounds the confirmation poll after submission.
	ConfirmTimeout time.Duration

	// PollInterval is the pause between status queries.
	PollInterval time.Duration
}

// withDefaults fills zero fields.
func (c MintConfig) withDefaults() MintConfig {
	if c.ConfirmTimeout <= 0 {
		c.ConfirmTimeout = DefaultConfirmTimeout
	}
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	return c
}

// MintService is the transaction coordinator.
//
// One Launch call drives one attempt:
//
//	Built -> AwaitingExternalSignature -> Submitted -> Confirmed | Failed
//
// Every failure is terminal for the attempt. Retry is caller policy, and
// a retried attempt always starts from a fresh asset identity, so two
// attempts can never collide on the same mint address.
type MintService struct {
	ledger  Ledger
	signer  Signer
	repo    OperationRepository
	log     logger.Logger
	metrics *metric.Registry
	cfg     MintConfig
}

// NewMintService creates a new MintService.
func NewMintService(ledger Ledger, signer Signer, repo OperationRepository, log logger.Logger, metrics *metric.Registry, cfg MintConfig) *MintService {
	if log == nil {
		log = logger.Nop()
	}
	return &MintService{
		ledger:  ledger,
		signer:  signer,
		repo:    repo,
		log:     log,
		metrics: metrics,
		cfg:     cfg.withDefaults(),
	}
}

// LaunchRequest contains the validated-at-the-edge token manifest.
type LaunchRequest struct {
	Manifest domain.TokenManifest
}

// LaunchResponse contains the outcome of one attempt.
//
/// On failure the response is still returned alongside the error: it
// carries the operation id, and the transaction id when submission
// happened, so the caller can re-check by identifier later.
type LaunchResponse struct {
	OperationID    string
	MintAddress    string
	HoldingAddress string
	TransactionID  string
}

// Launch creates a token per the manifest and waits for confirmation.
//
// Input errors (invalid supply, overflow) are detected before any
// network call and before an operation record is written.
func (s *MintService) Launch(ctx context.Context, req *LaunchRequest) (*LaunchResponse, error) {
	manifest := req.Manifest.Normalize()
	if err := manifest.Validate(); err != nil {
		return nil, err
	}
	rawAmount, err := domain.ConvertSupply(manifest.HumanSupply)
	if err != nil {
		return nil, err
	}

	op, err := domain.NewOperation(manifest, rawAmount)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, op); err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.OperationsStarted.Inc()
	}

	log := s.log.With("operation_id", op.ID, "symbol", manifest.Symbol)
	started := time.Now()

	runErr := s.execute(ctx, op, log)

	resp := &LaunchResponse{
		OperationID:    op.ID,
		MintAddress:    op.MintAddress,
		HoldingAddress: op.HoldingAddress,
		TransactionID:  op.TransactionID,
	}

	if runErr != nil {
		op.Fail(runErr)
		s.persistBestEffort(op, log)
		if s.metrics != nil {
			s.metrics.OperationsFailed.WithLabelValues(domain.GetErrorCode(runErr)).Inc()
		}
		log.Warn("mint operation failed",
			"error", runErr,
			"phase_reached", string(op.Phase),
			"transaction_id", op.TransactionID)
		return resp, runErr
	}

	if s.metrics != nil {
		s.metrics.OperationsConfirmed.Inc()
		s.metrics.ConfirmationSeconds.Observe(time.Since(started).Seconds())
	}
	log.Info("mint operation confirmed",
		"mint_address", op.MintAddress,
		"holding_address", op.HoldingAddress,
		"transaction_id", op.TransactionID,
		"elapsed_ms", time.Since(started).Milliseconds())
	return resp, nil
}

// execute runs the attempt body. It mutates op as phases are reached but
// leaves terminal bookkeeping to the caller.
func (s *MintService) execute(ctx context.Context, op *domain.Operation, log logger.Logger) error {
	// Fresh identity per attempt; scrubbed on every exit path.
	asset, err := chain.NewAssetIdentity()
	if err != nil {
		return err
	}
	defer asset.Zero()

	mint := asset.PublicKey()
	owner := s.signer.PublicKey()
	op.MintAddress = mint.String()

	// Rent is re-queried each run: protocol rent parameters can change,
	// and a stale value would under-fund the account.
	rent, err := s.ledger.MinimumRentExemptBalance(ctx, chain.MintAccountSize)
	if err != nil {
		if !domain.IsDomainError(err, "") {
			err = domain.ErrOracleUnavailable.WithCause(err)
		}
		return err
	}

	holding, err := chain.DeriveHoldingAddress(mint, owner)
	if err != nil {
		return err
	}
	op.HoldingAddress = holding.String()

	instrs, err := chain.AssembleMintInstructions(chain.MintParams{
		Mint:         mint,
		Owner:        owner,
		Holding:      holding,
		RentLamports: rent,
		RawAmount:    op.RawAmount,
	})
	if err != nil {
		return err
	}

	anchor, err := s.ledger.RecentAnchor(ctx)
	if err != nil {
		if !domain.IsDomainError(err, "") {
			err = domain.ErrLedgerUnavailable.WithCause(err)
		}
		return err
	}

	tx, err := solana.NewTransaction(instrs, anchor, solana.TransactionPayer(owner))
	if err != nil {
		return domain.ErrAssembly.WithDetails("transaction build").WithCause(err)
	}
	msg, err := tx.Message.MarshalBinary()
	if err != nil {
		return domain.ErrAssembly.WithDetails("message encoding").WithCause(err)
	}

	// Local co-signature first (synchronous), then the external signer.
	assetSig, err := asset.SignMessage(msg)
	if err != nil {
		return err
	}

	op.Advance(domain.PhaseAwaitingSignature)
	if err := s.persist(ctx, op); err != nil {
		return err
	}
	log.Debug("awaiting external signature", "mint_address", op.MintAddress)

	ownerSig, err := s.signer.SignMessage(ctx, msg)
	if err != nil {
		// Nothing has been submitted; cancellation here has no on-chain
		// side effects.
		if ctx.Err() != nil && !domain.IsDomainError(err, "") {
			return domain.ErrUserRejected.WithDetails("cancelled before submission").WithCause(err)
		}
		if !domain.IsDomainError(err, "") {
			err = domain.ErrSignerUnavailable.WithCause(err)
		}
		return err
	}

	sigs, err := orderSignatures(tx, map[solana.PublicKey]solana.Signature{
		owner: ownerSig,
		mint:  assetSig,
	})
	if err != nil {
		return err
	}
	tx.Signatures = sigs

	txID, err := s.ledger.Submit(ctx, tx)
	if err != nil {
		if !domain.IsDomainError(err, "") {
			err = domain.ErrLedgerUnavailable.WithCause(err)
		}
		return err
	}
	op.TransactionID = txID.String()
	op.Advance(domain.PhaseSubmitted)
	if err := s.persist(ctx, op); err != nil {
		return err
	}
	log.Debug("transaction submitted", "transaction_id", op.TransactionID)

	if err := s.awaitConfirmation(ctx, txID); err != nil {
		return err
	}

	op.Confirm()
	return s.persist(ctx, op)
}

// awaitConfirmation polls transaction status until confirmed, failed, or
// the bounded wait elapses.
func (s *MintService) awaitConfirmation(ctx context.Context, txID solana.Signature) error {
	deadline := time.NewTimer(s.cfg.ConfirmTimeout)
	defer deadline.Stop()
	tick := time.NewTicker(s.cfg.PollInterval)
	defer tick.Stop()

	recheck := "re-check transaction " + txID.String() + " by id; do not resubmit"

	for {
		status, err := s.ledger.Status(ctx, txID)
		if err == nil {
			switch status.State {
			case TxConfirmed:
				return nil
			case TxFailed:
				return domain.ErrLedgerExecution.WithDetails(status.Code)
			}
		} else {
			// A transient status failure is not a verdict; keep polling
			// until the deadline.
			s.log.Debug("status query failed", "transaction_id", txID.String(), "error", err)
		}

		select {
		case <-ctx.Done():
			return domain.ErrConfirmationTimeout.WithDetails(recheck).WithCause(ctx.Err())
		case <-deadline.C:
			return domain.ErrConfirmationTimeout.WithDetails(recheck)
		case <-tick.C:
		}
	}
}

// GetOperation returns the record of a past or in-flight operation.
func (s *MintService) GetOperation(ctx context.Context, id string) (*domain.Operation, error) {
	if id == "" {
		return nil, domain.ErrMissingArgument.WithDetails("operation id is required")
	}
	return s.repo.Get(ctx, id)
}

// ListOperations returns recent operation records, newest first.
func (s *MintService) ListOperations(ctx context.Context, limit int) ([]*domain.Operation, error) {
	const maxListLimit = 100
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}
	return s.repo.List(ctx, limit)
}

// persist writes the operation record.
func (s *MintService) persist(ctx context.Context, op *domain.Operation) error {
	if err := s.repo.Put(ctx, op); err != nil {
		if !domain.IsDomainError(err, "") {
			err = domain.ErrStorageError.WithCause(err)
		}
		return err
	}
	return nil
}

// persistBestEffort writes terminal state without masking the original
// failure; a store error at this point is only logged.
func (s *MintService) persistBestEffort(op *domain.Operation, log logger.Logger) {
	if err := s.repo.Put(context.Background(), op); err != nil {
		log.Error("failed to persist terminal operation state", "error", err)
	}
}

// orderSignatures lays out the collected signatures in the message's
// required-signer order. The fee payer is always first, but the mapping
// is done by key so the coordinator does not depend on builder ordering.
func orderSignatures(tx *solana.Transaction, sigs map[solana.PublicKey]solana.Signature) ([]solana.Signature, error) {
	n := int(tx.Message.Header.NumRequiredSignatures)
	if len(tx.Message.AccountKeys) < n {
		return nil, domain.ErrAssembly.WithDetails("malformed message header")
	}
	out := make([]solana.Signature, n)
	for i := 0; i < n; i++ {
		key := tx.Message.AccountKeys[i]
		sig, ok := sigs[key]
		if !ok {
			return nil, domain.ErrAssembly.WithDetails("no signature for required signer " + key.String())
		}
		out[i] = sig
	}
	return out, nil
}
