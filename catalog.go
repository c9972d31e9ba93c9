package stocksim

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// DefaultCatalogPath selects the instrument list in a catalog document.
const DefaultCatalogPath = "$.instruments"

/*
A catalog document lists the instruments the market starts with. The
instrument list is located with a JSONPath expression, so that catalogs can be
embedded in larger documents:

	{
	    "instruments": [
	        {"symbol": "AAPL", "name": "Apple Inc.", "price": 185.00, "volatility": 0.02},
	        {"symbol": "MSFT", "name": "Microsoft Corp.", "price": "420.00", "volatility": 0.015}
	    ]
	}
*/

// DecodeCatalog reads a catalog document from r and returns the instruments
// found at path, priced in currency.
func DecodeCatalog(r io.Reader, path, currency string) ([]Instrument, error) {
	if path == "" {
		path = DefaultCatalogPath
	}
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var jobj any
	if err := dec.Decode(&jobj); err != nil {
		return nil, fmt.Errorf("invalid catalog document: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q in catalog: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%q in catalog is not a list but %T", path, jval)
	}

	// jinstrument is the object read from the document.
	type jinstrument struct {
		Symbol     string          `json:"symbol"`
		Name       string          `json:"name"`
		Price      decimal.Decimal `json:"price"`
		Volatility float64         `json:"volatility"`
	}

	market := NewMarket()
	for i, elem := range jlist {
		raw, err := json.Marshal(elem)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		var ji jinstrument
		if err := json.Unmarshal(raw, &ji); err != nil {
			return nil, fmt.Errorf("catalog entry %d %s: %w", i, raw, err)
		}
		inst := NewInstrument(ji.Symbol, ji.Name, M(ji.Price, currency), ji.Volatility)
		// Market.Add validates and rejects duplicates.
		if err := market.Add(inst); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
	}
	if market.Len() == 0 {
		return nil, fmt.Errorf("catalog %q has no instruments", path)
	}

	instruments := make([]Instrument, 0, market.Len())
	for inst := range market.All() {
		instruments = append(instruments, *inst)
	}
	return instruments, nil
}
