package renderer

import (
	"bytes"

	"github.com/etnz/stocksim"
	md "github.com/nao1215/markdown"
)

// PortfolioMarkdown renders the positions valued at current prices, followed by the totals.
func PortfolioMarkdown(s stocksim.PortfolioSnapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio")

	if s.IsEmpty() {
		doc.PlainText("No stocks in portfolio.")
	} else {
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Symbol", "Company", "Shares", "Avg. Cost", "Price", "Market Value", "Gain / Loss", "Return"},
			Rows:   [][]string{},
		}
		for _, p := range s.Positions {
			table.Rows = append(table.Rows, []string{
				md.Bold(p.Symbol),
				p.Name,
				p.Quantity.String(),
				p.AverageCost.String(),
				p.Price.String(),
				p.MarketValue.String(),
				p.ProfitLoss.SignedString(),
				p.Return().SignedString(),
			})
		}
		doc.Table(table)
	}

	doc.H2("Summary")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total Value"),
			md.Bold(s.TotalValue.String()),
		},
		Rows: [][]string{
			{"Cash", s.Cash.String()},
			{"Invested", s.CostBasis.String()},
			{"Stocks", s.MarketValue.String()},
			{"Initial Balance", s.Initial.String()},
			{"Gain / Loss", s.ProfitLoss.SignedString()},
			{"Return", s.Return().SignedString()},
		},
	})

	return doc.String()
}
