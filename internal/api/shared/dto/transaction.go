package dto

import (
	"encoding/json"
	"time"

	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/store/schema"
)

// TransactionResponse represents one ledger entry
type TransactionResponse struct {
	Reference   string            `json:"reference"`
	Type        domain.TxType     `json:"type"`
	RightID     *string           `json:"right_id,omitempty"`
	FromUserID  *int64            `json:"from_user_id,omitempty"`
	ToUserID    *int64            `json:"to_user_id,omitempty"`
	Amount      string            `json:"amount"`
	Currency    string            `json:"currency"`
	Breakdown   json.RawMessage   `json:"breakdown,omitempty"`
	TxHash      *string           `json:"tx_hash,omitempty"`
	Chain       domain.Blockchain `json:"chain"`
	Status      domain.TxStatus   `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	ConfirmedAt *time.Time        `json:"confirmed_at,omitempty"`
}

// TransactionListResponse represents a paginated list of ledger entries
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"items"`
	Offset       *uint64               `json:"offset,omitempty"`
	Total        uint64                `json:"total"`
}

// MapTransactionToDTO maps a schema.Transaction to TransactionResponse
func MapTransactionToDTO(tx *schema.Transaction) *TransactionResponse {
	if tx == nil {
		return nil
	}
	return &TransactionResponse{
		Reference:   tx.Reference,
		Type:        tx.Type,
		RightID:     tx.RightID,
		FromUserID:  tx.FromUserID,
		ToUserID:    tx.ToUserID,
		Amount:      tx.Amount,
		Currency:    tx.Currency,
		Breakdown:   json.RawMessage(tx.Breakdown),
		TxHash:      tx.TxHash,
		Chain:       tx.Chain,
		Status:      tx.Status,
		CreatedAt:   tx.CreatedAt,
		ConfirmedAt: tx.ConfirmedAt,
	}
}

// MapTransactionsToDTO maps a slice of ledger entries to a paginated list response
func MapTransactionsToDTO(txs []*schema.Transaction, offset *uint64, total uint64) *TransactionListResponse {
	items := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		if mapped := MapTransactionToDTO(tx); mapped != nil {
			items = append(items, *mapped)
		}
	}
	return &TransactionListResponse{
		Transactions: items,
		Offset:       offset,
		Total:        total,
	}
}
