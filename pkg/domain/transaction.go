package domain

import (
	"time"

	"github.com/snikolow/commission-calculator/pkg/money"
)

// Transaction is one validated input record.
type Transaction struct {
	Date       time.Time
	UserID     string
	PersonKind PersonKind
	Operation  OperationKind
	Amount     money.Money
}
