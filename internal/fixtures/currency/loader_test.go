package currency_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/snikolow/commission-calculator/internal/fixtures/currency"
	"github.com/snikolow/commission-calculator/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCurrencyMetaCSV(t *testing.T) {
	csvContent := `code,name,symbol,decimals,country,region,active
USD,US Dollar,$,2,United States,Americas,true
jpy,Japanese Yen,¥,0,Japan,Asia,true
LTL,Lithuanian Litas,Lt,2,Lithuania,Europe,false
BAD,Broken,?,x,Nowhere,Nowhere,true
EUR,Euro`

	metas, err := currency.LoadCurrencyMetaCSV(writeTemp(t, csvContent))
	require.NoError(t, err)
	require.Len(t, metas, 2)

	assert.Equal(t, money.USD, metas[0].Code)
	assert.Equal(t, "US Dollar", metas[0].Name)
	assert.Equal(t, "$", metas[0].Symbol)
	assert.Equal(t, 2, metas[0].Decimals)

	assert.Equal(t, money.JPY, metas[1].Code)
	assert.Equal(t, 0, metas[1].Decimals)
}

func TestLoadCurrencyMetaCSV_Embedded(t *testing.T) {
	metas, err := currency.LoadCurrencyMetaCSV("")
	require.NoError(t, err)
	require.NotEmpty(t, metas)

	byCode := make(map[money.Code]int)
	for _, m := range metas {
		byCode[m.Code] = m.Decimals
	}
	assert.Equal(t, 2, byCode[money.EUR])
	assert.Equal(t, 0, byCode[money.JPY])
	assert.Equal(t, 3, byCode[money.KWD])
	assert.NotContains(t, byCode, money.Code("LTL"))
}

func TestLoadCurrencyMetaCSV_InvalidHeader(t *testing.T) {
	_, err := currency.LoadCurrencyMetaCSV(writeTemp(t, "code,name\nEUR,Euro\n"))
	assert.Error(t, err)
}

func TestLoadCurrencyMetaCSV_MissingFile(t *testing.T) {
	_, err := currency.LoadCurrencyMetaCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestLoadRatesCSV_Embedded(t *testing.T) {
	rates, err := currency.LoadRatesCSV("")
	require.NoError(t, err)
	require.Len(t, rates, 2)

	assert.Equal(t, money.EUR, rates[0].From)
	assert.Equal(t, money.USD, rates[0].To)
	assert.Equal(t, "1.1497", rates[0].Value.String())
	assert.Equal(t, money.JPY, rates[1].To)
	assert.Equal(t, "129.53", rates[1].Value.String())
}

func TestLoadRatesCSV_File(t *testing.T) {
	rates, err := currency.LoadRatesCSV(writeTemp(t, "from,to,rate\neur, gbp, 0.85\n"))
	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.Equal(t, money.EUR, rates[0].From)
	assert.Equal(t, money.GBP, rates[0].To)
	assert.Equal(t, "0.85", rates[0].Value.String())
}

func TestLoadRatesCSV_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"short header", "from,to\n"},
		{"short row", "from,to,rate\nEUR,USD\n"},
		{"bad rate", "from,to,rate\nEUR,USD,abc\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := currency.LoadRatesCSV(writeTemp(t, tt.content))
			assert.Error(t, err)
		})
	}
}
