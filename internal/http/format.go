package http

import (
	"html/template"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// pesoPrinter formats per the Philippine English locale: grouped thousands,
// dot decimal separator.
var pesoPrinter = message.NewPrinter(language.MustParse("en-PH"))

// Peso renders a peso amount for display: currency symbol plus a grouped,
// exactly-two-decimal number. Rounding to two decimals already happened in
// the core; this is formatting only.
func Peso(v float64) string {
	return pesoPrinter.Sprintf("₱%v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
}

// PlainNumber renders a count-like value without trailing zeros.
func PlainNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"peso": Peso,
		"num":  PlainNumber,
	}
}
