package stocksim

import (
	"bytes"
	"testing"
	"time"
)

func TestEncodeTransactions(t *testing.T) {
	l := newTestLedger(t)
	mustBuy(t, l, "AAPL", 10, mondayOpen)
	if _, err := l.Sell("AAPL", Q(4), mondayOpen.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodeTransactions(&buf, l.Transactions()); err != nil {
		t.Fatalf("EncodeTransactions() failed: %v", err)
	}
	want := `{"id":"tx-1","time":"2025-01-06T10:00:00Z","action":"BUY","symbol":"AAPL","quantity":"10","price":"185.00","currency":"USD","amount":"1850.00"}
{"id":"tx-2","time":"2025-01-06T11:00:00Z","action":"SELL","symbol":"AAPL","quantity":"4","price":"185.00","currency":"USD","amount":"740.00"}
`
	if got := buf.String(); got != want {
		t.Errorf("EncodeTransactions() =\n%s\nwant\n%s", got, want)
	}
}
