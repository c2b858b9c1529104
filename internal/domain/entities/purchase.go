package entities

import "github.com/google/uuid"

// PurchaseCreditsInput is the body of the custodial purchase endpoint.
// UsdcAmount is derived from Credits server-side; when the client sends it,
// it is validated against the derived value, never trusted on its own.
type PurchaseCreditsInput struct {
	Credits    int64  `json:"credits" binding:"required,gt=0"`
	UsdcAmount string `json:"usdcAmount"`
}

// PurchaseCreditsResponse is returned after a custodial dispatch.
// RecordPending is set when the dispatch succeeded but the local record
// could not be written; the funds have moved either way.
type PurchaseCreditsResponse struct {
	Success               bool      `json:"success"`
	TransactionID         uuid.UUID `json:"transactionId"`
	ProviderTransactionID string    `json:"providerTransactionId"`
	RecordPending         bool      `json:"recordPending,omitempty"`
}

// RecordExternalPaymentInput persists a transfer already dispatched by a
// browser wallet. TxHash is the hash the wallet returned; the transfer is
// not yet chain-confirmed at this point.
type RecordExternalPaymentInput struct {
	Credits            int64  `json:"credits" binding:"required,gt=0"`
	UsdcAmount         string `json:"usdcAmount" binding:"required"`
	TxHash             string `json:"txHash" binding:"required"`
	ChainID            int64  `json:"chainId" binding:"required"`
	WalletAddress      string `json:"walletAddress" binding:"required"`
	DestinationAddress string `json:"destinationAddress" binding:"required"`
}

// RecordExternalPaymentResponse is returned after persisting an external
// dispatch.
type RecordExternalPaymentResponse struct {
	Success       bool      `json:"success"`
	TransactionID uuid.UUID `json:"transactionId"`
}
