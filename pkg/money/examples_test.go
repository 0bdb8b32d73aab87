package money_test

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"github.com/snikolow/commission-calculator/pkg/money"
)

// ExampleNew demonstrates how to create a new Money instance
func ExampleNew() {
	eur, err := money.New("1200.00", money.EUR)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(eur.Format())

	// JPY has no minor unit
	jpy, err := money.New("30000", money.JPY)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(jpy.Format())
	// Output:
	// 1200.00 EUR
	// 30000 JPY
}

// ExampleMoney_Percent demonstrates directional rounding of a commission
func ExampleMoney_Percent() {
	amount := money.Must("333.33", money.EUR)
	pct := decimal.RequireFromString("0.3")

	up, _ := amount.Percent(pct, money.RoundUp)
	down, _ := amount.Percent(pct, money.RoundDown)
	fmt.Println(up, down)
	// Output:
	// 1.00 0.99
}

// ExampleMoney_Subtract demonstrates subtracting money values
func ExampleMoney_Subtract() {
	withdrawal := money.Must("1250.00", money.EUR)
	allowance := money.Must("1000.00", money.EUR)

	rest, err := withdrawal.Subtract(allowance)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(rest.Format())
	// Output:
	// 250.00 EUR
}
