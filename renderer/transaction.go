package renderer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/etnz/stocksim"
)

// Trade renders an executed transaction as a confirmation sentence.
func Trade(tx stocksim.Transaction) string {
	switch tx.Action {
	case stocksim.ActionBuy:
		return fmt.Sprintf("Successfully bought %v shares of %s at %v per share.", tx.Quantity, tx.Symbol, tx.Price)
	case stocksim.ActionSell:
		return fmt.Sprintf("Successfully sold %v shares of %s at %v per share.", tx.Quantity, tx.Symbol, tx.Price)
	default:
		return fmt.Sprintf("%s %v %s at %v", tx.Action, tx.Quantity, tx.Symbol, tx.Price)
	}
}

// Rejection renders a trade error as a sentence.
func Rejection(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	r, size := utf8.DecodeRuneInString(msg)
	return string(unicode.ToUpper(r)) + msg[size:] + "."
}
