package export

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Money formats amounts for the configured locale, e.g. "1.500.000 ₫" for vi.
type Money struct {
	Tag    language.Tag
	Symbol string
	Scale  int
}

// NewMoney falls back to Vietnamese dong formatting for an unparseable locale.
func NewMoney(locale, symbol string) Money {
	tag, err := language.Parse(locale)
	if err != nil || locale == "" {
		tag = language.Vietnamese
	}
	if symbol == "" {
		symbol = "₫"
	}
	return Money{Tag: tag, Symbol: symbol}
}

func (m Money) Format(d decimal.Decimal) string {
	tag := m.Tag
	if tag == language.Und {
		tag = language.Vietnamese
	}
	symbol := m.Symbol
	if symbol == "" {
		symbol = "₫"
	}

	f, _ := d.Round(int32(m.Scale)).Float64()
	p := message.NewPrinter(tag)
	s := p.Sprint(number.Decimal(f,
		number.MinFractionDigits(m.Scale),
		number.MaxFractionDigits(m.Scale),
	))
	return s + " " + symbol
}
