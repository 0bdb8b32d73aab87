// Package config loads the calculator settings from the environment.
package config

// Prefix is prepended to every environment variable name.
const Prefix = "COMMISSION"

type CashIn struct {
	Percent        string `envconfig:"PERCENT" default:"0.03" validate:"required,numeric"`
	MaxFee         string `envconfig:"MAX_FEE" default:"5.00" validate:"required,numeric"`
	MaxFeeCurrency string `envconfig:"MAX_FEE_CURRENCY" default:"EUR" validate:"len=3,alpha"`
}

type Legal struct {
	Percent        string `envconfig:"PERCENT" default:"0.3" validate:"required,numeric"`
	MinFee         string `envconfig:"MIN_FEE" default:"0.50" validate:"required,numeric"`
	MinFeeCurrency string `envconfig:"MIN_FEE_CURRENCY" default:"EUR" validate:"len=3,alpha"`
}

type Natural struct {
	Percent          string `envconfig:"PERCENT" default:"0.3" validate:"required,numeric"`
	Discount         string `envconfig:"DISCOUNT" default:"1000.00" validate:"required,numeric"`
	DiscountCurrency string `envconfig:"DISCOUNT_CURRENCY" default:"EUR" validate:"len=3,alpha"`
	MaxOperations    int    `envconfig:"MAX_OPERATIONS" default:"3" validate:"gte=0"`
}

type Week struct {
	FirstDay string `envconfig:"FIRST_DAY" default:"monday" validate:"required"`
	LastDay  string `envconfig:"LAST_DAY" default:"sunday" validate:"required"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0" validate:"min=-4,max=8"`
	Format     string `envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[commission]"`
}

type App struct {
	Env           string   `envconfig:"APP_ENV" default:"development"`
	PivotCurrency string   `envconfig:"PIVOT_CURRENCY" default:"EUR" validate:"len=3,alpha"`
	CashIn        *CashIn  `envconfig:"CASH_IN" validate:"required"`
	Legal         *Legal   `envconfig:"LEGAL" validate:"required"`
	Natural       *Natural `envconfig:"NATURAL" validate:"required"`
	Week          *Week    `envconfig:"WEEK" validate:"required"`
	DateLayout    string   `envconfig:"DATE_LAYOUT" default:"2006-01-02" validate:"required"`
	RatesFile     string   `envconfig:"RATES_FILE"`
	Currencies    []string `envconfig:"CURRENCIES" validate:"dive,len=3,alpha"`
	Log           *Log     `envconfig:"LOG" validate:"required"`
}
