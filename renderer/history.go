package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/stocksim"
	md "github.com/nao1215/markdown"
)

// timeLayout is how execution times are displayed.
const timeLayout = "2006-01-02 15:04:05"

// HistoryMarkdown renders the transaction log in execution order.
func HistoryMarkdown(txs []stocksim.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transaction History")

	if len(txs) == 0 {
		doc.PlainText("No transactions yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"#", "Time", "Action", "Symbol", "Shares", "Price", "Amount"},
		Rows:   [][]string{},
	}
	for i, tx := range txs {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i + 1),
			tx.Time.Format(timeLayout),
			string(tx.Action),
			tx.Symbol,
			tx.Quantity.String(),
			tx.Price.String(),
			tx.Amount().String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
