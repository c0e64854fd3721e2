package amqp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ledger/internal/core"
)

// TransactionMessage carries one freshly appended record to the mirror
// worker. Fields use the same text forms as the CSV store.
type TransactionMessage struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewTransactionMessage wraps t with a fresh message ID.
func NewTransactionMessage(t core.Transaction) *TransactionMessage {
	return &TransactionMessage{
		ID:          uuid.NewString(),
		Date:        t.Date.String(),
		Amount:      t.Amount.String(),
		Category:    t.Category.String(),
		Description: t.Description,
		Timestamp:   time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *TransactionMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionMessageFromJSON creates a message from JSON bytes
func TransactionMessageFromJSON(data []byte) (*TransactionMessage, error) {
	var msg TransactionMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(msg.ID); err != nil {
		return nil, fmt.Errorf("message id: %w", err)
	}
	return &msg, nil
}

// ToTransaction decodes the payload back into a validated transaction.
func (m *TransactionMessage) ToTransaction() (core.Transaction, error) {
	date, err := core.ParseDate(m.Date)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("date %q: %w", m.Date, err)
	}
	amount, err := core.ParseAmount(m.Amount)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("amount %q: %w", m.Amount, err)
	}
	category, err := core.ParseStoredCategory(m.Category)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("category %q: %w", m.Category, err)
	}
	return core.Transaction{
		Date:        date,
		Amount:      amount,
		Category:    category,
		Description: m.Description,
	}, nil
}
