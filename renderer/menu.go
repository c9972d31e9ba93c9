package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
)

// MenuItems are the numbered choices of the interactive session, in order.
var MenuItems = []string{
	"View Market Data",
	"View Portfolio",
	"Buy Stocks",
	"Sell Stocks",
	"View Transaction History",
	"Simulate Market Update",
	"Exit",
}

// Menu renders the numbered choices.
func Menu() string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.PlainText(md.Bold("Stock Trading Platform"))
	doc.OrderedList(MenuItems...)
	return doc.String()
}
