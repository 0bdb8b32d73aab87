package fee_test

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/snikolow/commission-calculator/pkg/domain"
	"github.com/snikolow/commission-calculator/pkg/exchange"
	"github.com/snikolow/commission-calculator/pkg/fee"
	"github.com/snikolow/commission-calculator/pkg/ledger"
	"github.com/snikolow/commission-calculator/pkg/money"
)

func ExampleSelector() {
	rates := exchange.NewRates()
	_ = rates.Register(money.EUR, money.USD, decimal.RequireFromString("1.1497"))

	selector := fee.NewSelector(
		fee.DefaultConfig(),
		exchange.NewConverter(rates, nil),
		ledger.NewMemoryStore(),
		nil,
	)

	date := time.Date(2016, time.January, 6, 0, 0, 0, 0, time.UTC)
	for _, amount := range []string{"600.00", "650.00"} {
		f, err := selector.Calculate(domain.Transaction{
			Date:       date,
			UserID:     "1",
			PersonKind: domain.Natural,
			Operation:  domain.CashOut,
			Amount:     money.Must(amount, money.EUR),
		})
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(f.Format())
	}
	// Output:
	// 0.00 EUR
	// 0.75 EUR
}
