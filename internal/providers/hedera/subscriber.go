package hedera

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/logger"
	"github.com/dright/marketplace/internal/messaging"
)

// SubscriberConfig holds the configuration for the Hedera transfer poller
type SubscriberConfig struct {
	ChainID domain.Chain // e.g. "hedera:testnet"
	// TokenID is the collection token whose serials are watched
	TokenID string
	// PollInterval is the delay between mirror node sweeps
	PollInterval time.Duration
	// PageSize is the number of serials fetched per mirror page
	PageSize int
}

// hederaSubscriber watches ownership changes of the collection token by
// polling a mirror node. Hedera has no log subscription, so the mirror's
// per-serial transaction history is swept on an interval and filtered by
// consensus timestamp.
type hederaSubscriber struct {
	config SubscriberConfig
	mirror MirrorClient
	clock  adapter.Clock
}

// NewSubscriber creates a mirror-poll transfer subscriber
func NewSubscriber(cfg SubscriberConfig, mirror MirrorClient, clock adapter.Clock) messaging.Subscriber {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 10 * time.Second
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 100
	}
	return &hederaSubscriber{
		config: cfg,
		mirror: mirror,
		clock:  clock,
	}
}

// SubscribeEvents polls the mirror node for transfers of the collection
// token. fromCursor is the consensus timestamp in seconds to resume after;
// 0 means from now.
func (s *hederaSubscriber) SubscribeEvents(ctx context.Context, fromCursor uint64, handler messaging.EventHandler) error {
	// The mirror filter wants a full consensus timestamp
	cursor := fmt.Sprintf("%d.000000000", fromCursor)

	logger.InfoCtx(ctx, "Starting mirror node transfer polling",
		zap.String("token_id", s.config.TokenID),
		zap.String("cursor", cursor),
		zap.Duration("poll_interval", s.config.PollInterval),
	)

	for {
		next, err := s.sweep(ctx, cursor, handler)
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Mirror sweep failed"))
		} else {
			cursor = next
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.clock.After(s.config.PollInterval):
		}
	}
}

// sweep pages the collection's serials, fetches each serial's transfers
// after the cursor, and hands them to the handler. It returns the highest
// consensus timestamp seen so the next sweep resumes past it.
func (s *hederaSubscriber) sweep(ctx context.Context, cursor string, handler messaging.EventHandler) (string, error) {
	maxSeen := cursor
	afterSerial := int64(0)

	for {
		serials, err := s.mirror.CollectionSerials(ctx, s.config.TokenID, afterSerial, s.config.PageSize)
		if err != nil {
			return maxSeen, fmt.Errorf("failed to page collection serials: %w", err)
		}
		if len(serials) == 0 {
			return maxSeen, nil
		}

		for _, info := range serials {
			afterSerial = info.Serial

			// Untouched serials have nothing new to report
			if consensusLessOrEqual(info.ModifiedTimestamp, cursor) {
				continue
			}

			transfers, err := s.mirror.NFTTransfers(ctx, s.config.TokenID, info.Serial, cursor)
			if err != nil {
				return maxSeen, fmt.Errorf("failed to fetch transfers of serial %d: %w", info.Serial, err)
			}

			for _, transfer := range transfers {
				if consensusLess(maxSeen, transfer.ConsensusTimestamp) {
					maxSeen = transfer.ConsensusTimestamp
				}

				// Mints are announced by the mint workflow itself; only
				// ownership changes between accounts flow through here
				if transfer.Type == "TOKENMINT" || transfer.SenderAccountID == "" {
					continue
				}

				event := s.transferEvent(info.Serial, transfer)
				if err := handler(event, consensusSeconds(transfer.ConsensusTimestamp)); err != nil {
					return maxSeen, fmt.Errorf("failed to handle transfer %s: %w", transfer.TransactionID, err)
				}
			}
		}

		if len(serials) < s.config.PageSize {
			return maxSeen, nil
		}
	}
}

// transferEvent maps one mirror transfer onto a marketplace event
func (s *hederaSubscriber) transferEvent(serial int64, transfer NFTTransfer) *domain.MarketplaceEvent {
	return &domain.MarketplaceEvent{
		EventType:    domain.EventRightTransferred,
		Chain:        s.config.ChainID,
		Ref:          domain.NewNFTRef(s.config.ChainID, s.config.TokenID, strconv.FormatInt(serial, 10)),
		Actor:        transfer.SenderAccountID,
		Counterparty: transfer.ReceiverAccountID,
		TxHash:       transfer.TransactionID,
		Timestamp:    time.Unix(int64(consensusSeconds(transfer.ConsensusTimestamp)), 0).UTC(), //nolint:gosec,G115
	}
}

// GetLatestBlock returns the current cursor position. With no saved cursor
// the emitter starts from now rather than replaying the full history.
func (s *hederaSubscriber) GetLatestBlock(ctx context.Context) (uint64, error) {
	return uint64(s.clock.Now().Unix()), nil //nolint:gosec,G115
}

// Close is a no-op; the poller holds no persistent connection
func (s *hederaSubscriber) Close() {}

// consensusSeconds extracts the whole-second part of a consensus timestamp
// like "1726239847.000483857"
func consensusSeconds(ts string) uint64 {
	secs, _, _ := strings.Cut(ts, ".")
	n, err := strconv.ParseUint(secs, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// consensusLess reports whether a < b in consensus timestamp order.
// Mirror timestamps are fixed-width decimals, so padded string compare
// matches numeric compare.
func consensusLess(a, b string) bool {
	return compareConsensus(a, b) < 0
}

// consensusLessOrEqual reports whether a <= b in consensus timestamp order
func consensusLessOrEqual(a, b string) bool {
	return compareConsensus(a, b) <= 0
}

func compareConsensus(a, b string) int {
	aSec, aFrac, _ := strings.Cut(a, ".")
	bSec, bFrac, _ := strings.Cut(b, ".")

	an, _ := strconv.ParseUint(aSec, 10, 64)
	bn, _ := strconv.ParseUint(bSec, 10, 64)
	if an != bn {
		if an < bn {
			return -1
		}
		return 1
	}
	return strings.Compare(padFraction(aFrac), padFraction(bFrac))
}

func padFraction(frac string) string {
	if len(frac) >= 9 {
		return frac[:9]
	}
	return frac + strings.Repeat("0", 9-len(frac))
}
