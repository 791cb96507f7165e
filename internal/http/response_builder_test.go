package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTMXResponseBuilder(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHTMXResponse().
		Status(http.StatusUnprocessableEntity).
		TriggerLedgerChanged().
		TriggerErrorNotification("boom").
		ErrorDiv("boom <script>").
		Write(rec)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	header := rec.Header().Get("HX-Trigger")
	var triggers map[string]json.RawMessage
	if err := json.Unmarshal([]byte(header), &triggers); err != nil {
		t.Fatalf("HX-Trigger not valid JSON: %q (%v)", header, err)
	}
	if _, ok := triggers["ledger:changed"]; !ok {
		t.Fatalf("missing ledger:changed trigger in %q", header)
	}
	if _, ok := triggers["show-notification"]; !ok {
		t.Fatalf("missing show-notification trigger in %q", header)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "boom &lt;script&gt;") {
		t.Fatalf("body not escaped: %q", body)
	}
}

func TestHTMXResponseBuilderNoTriggers(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHTMXResponse().BodyString("ok").Write(rec)

	if rec.Header().Get("HX-Trigger") != "" {
		t.Fatal("HX-Trigger header set without triggers")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestPeso(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{756.9, "₱756.90"},
		{1234.5, "₱1,234.50"},
		{0, "₱0.00"},
	}
	for _, tc := range cases {
		if got := Peso(tc.in); got != tc.out {
			t.Fatalf("Peso(%v) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestPlainNumber(t *testing.T) {
	if got := PlainNumber(3); got != "3" {
		t.Fatalf("PlainNumber(3) = %q", got)
	}
	if got := PlainNumber(2.5); got != "2.5" {
		t.Fatalf("PlainNumber(2.5) = %q", got)
	}
}
