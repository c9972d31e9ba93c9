package renderer

import (
	"bytes"

	"github.com/etnz/stocksim"
	md "github.com/nao1215/markdown"
)

// MarketMarkdown renders the quotes in catalog order, under the market status line.
func MarketMarkdown(quotes []stocksim.Quote, status string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Market")
	doc.PlainText(status)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Company", "Price", "Change"},
		Rows:   [][]string{},
	}
	for _, q := range quotes {
		table.Rows = append(table.Rows, []string{
			md.Bold(q.Symbol),
			q.Name,
			q.Price.String(),
			q.Change.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}
