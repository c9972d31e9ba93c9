package stocksim

import (
	"strings"
	"testing"
)

func TestDecodeCatalog(t *testing.T) {
	doc := `{
		"instruments": [
			{"symbol": "ACME", "name": "Acme Corp.", "price": 12.34, "volatility": 0.05},
			{"symbol": "INIT", "name": "Initech", "price": "99.99", "volatility": 0.01}
		]
	}`
	got, err := DecodeCatalog(strings.NewReader(doc), "", "USD")
	if err != nil {
		t.Fatalf("DecodeCatalog() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d instruments, want 2", len(got))
	}
	if got[0].Symbol != "ACME" || got[0].Name != "Acme Corp." || !got[0].Price.Equal(USD(12.34)) || got[0].Volatility != 0.05 {
		t.Errorf("first instrument = %+v", got[0])
	}
	if !got[1].Price.Equal(USD(99.99)) || !got[1].Previous.Equal(USD(99.99)) {
		t.Errorf("second instrument = %+v", got[1])
	}

	l, err := New(WithCatalog(got))
	if err != nil {
		t.Fatalf("New(WithCatalog) failed: %v", err)
	}
	if _, ok := l.Quote("ACME"); !ok {
		t.Error("decoded catalog not used by the ledger")
	}
}

func TestDecodeCatalog_Path(t *testing.T) {
	doc := `{"data": {"stocks": [{"symbol": "ACME", "name": "Acme", "price": 1, "volatility": 0.1}]}}`
	got, err := DecodeCatalog(strings.NewReader(doc), "$.data.stocks", "EUR")
	if err != nil {
		t.Fatalf("DecodeCatalog() failed: %v", err)
	}
	if len(got) != 1 || got[0].Price.Currency() != "EUR" {
		t.Errorf("DecodeCatalog() = %+v", got)
	}
}

func TestDecodeCatalog_Errors(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
		path string
	}{
		{"not json", `{`, ""},
		{"missing path", `{"other": []}`, ""},
		{"not a list", `{"instruments": {"symbol": "A"}}`, ""},
		{"empty list", `{"instruments": []}`, ""},
		{"missing symbol", `{"instruments": [{"name": "A", "price": 1}]}`, ""},
		{"zero price", `{"instruments": [{"symbol": "A", "price": 0}]}`, ""},
		{"negative volatility", `{"instruments": [{"symbol": "A", "price": 1, "volatility": -1}]}`, ""},
		{"duplicate", `{"instruments": [{"symbol": "A", "price": 1}, {"symbol": "A", "price": 2}]}`, ""},
		{"bad price", `{"instruments": [{"symbol": "A", "price": "cheap"}]}`, ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeCatalog(strings.NewReader(tc.doc), tc.path, "USD"); err == nil {
				t.Error("DecodeCatalog() should fail")
			}
		})
	}
}
