package ledger

import (
	"testing"
	"time"
)

func TestComputeFuelBalanced(t *testing.T) {
	res := ComputeFuel(FuelInput{
		OpeningMeter:  0,
		ClosingMeter:  50,
		RatePerLiter:  940,
		CashCollected: 47000,
	})
	if res.LitersSold != 50 {
		t.Fatalf("expected 50 liters, got %.2f", res.LitersSold)
	}
	if res.Expected != 47000 {
		t.Fatalf("expected 47000 expected amount, got %.2f", res.Expected)
	}
	if res.Variance != 0 {
		t.Fatalf("expected zero variance, got %.2f", res.Variance)
	}
	if res.Outcome() != OutcomeBalanced {
		t.Fatalf("expected balanced outcome, got %s", res.Outcome())
	}
}

func TestComputeFuelShortageAndExcess(t *testing.T) {
	short := ComputeFuel(FuelInput{ClosingMeter: 10, RatePerLiter: 1000, CashCollected: 9000})
	if short.Variance != -1000 || short.Outcome() != OutcomeShortage {
		t.Fatalf("expected shortage of 1000, got %.2f (%s)", short.Variance, short.Outcome())
	}
	excess := ComputeFuel(FuelInput{ClosingMeter: 10, RatePerLiter: 1000, CashCollected: 10500})
	if excess.Variance != 500 || excess.Outcome() != OutcomeExcess {
		t.Fatalf("expected excess of 500, got %.2f (%s)", excess.Variance, excess.Outcome())
	}
}

func TestComputeFuelToleratesReversedMeters(t *testing.T) {
	res := ComputeFuel(FuelInput{OpeningMeter: 100, ClosingMeter: 40, RatePerLiter: 940})
	if res.LitersSold != -60 {
		t.Fatalf("reversed meters should yield negative liters, got %.2f", res.LitersSold)
	}
	if res.Expected != -56400 {
		t.Fatalf("expected -56400, got %.2f", res.Expected)
	}
}

func TestComputeBakerySettled(t *testing.T) {
	cart := []CartLine{{BreadType: "Agege Bread", QtyGiven: 20, QtyReturned: 2, Price: 500}}
	res := ComputeBakery(cart, 0, 9000)
	if res.TotalSoldValue != 9000 {
		t.Fatalf("expected sold value 9000, got %.2f", res.TotalSoldValue)
	}
	if res.DebtIncurred != 0 {
		t.Fatalf("expected no debt, got %.2f", res.DebtIncurred)
	}
}

func TestComputeBakeryShortage(t *testing.T) {
	cart := []CartLine{{BreadType: "Agege Bread", QtyGiven: 20, QtyReturned: 2, Price: 500}}
	res := ComputeBakery(cart, 0, 8000)
	if res.DebtIncurred != 1000 {
		t.Fatalf("expected debt 1000, got %.2f", res.DebtIncurred)
	}
}

func TestComputeBakeryEmptyCart(t *testing.T) {
	res := ComputeBakery(nil, 0, 0)
	if res.TotalSoldValue != 0 || res.DebtIncurred != 0 {
		t.Fatalf("empty cart should degrade to zero, got %+v", res)
	}
}

func TestComputePOSBalanceBoundary(t *testing.T) {
	// Target profit 1000; raw profit 900 leaves a gap of exactly -100,
	// which still counts as balanced.
	in := POSInput{
		ClosingCash:       900,
		TransactionVolume: 100000,
		ChargePer100k:     1000,
	}
	res := ComputePOS(in)
	if res.PerformanceGap != -100 {
		t.Fatalf("expected gap -100, got %.2f", res.PerformanceGap)
	}
	if !res.Balanced() {
		t.Fatal("gap of exactly -100 must be balanced")
	}

	in.ClosingCash = 899
	res = ComputePOS(in)
	if res.PerformanceGap != -101 {
		t.Fatalf("expected gap -101, got %.2f", res.PerformanceGap)
	}
	if res.Balanced() {
		t.Fatal("gap of -101 must be a shortage")
	}
	if res.Outcome() != OutcomeShortage {
		t.Fatalf("expected shortage outcome, got %s", res.Outcome())
	}
}

func TestComputePOSExemptedVolumeFloor(t *testing.T) {
	res := ComputePOS(POSInput{TransactionVolume: 50000, ExemptedVolume: 80000, ChargePer100k: 1000})
	if res.TaxableVolume != 0 {
		t.Fatalf("taxable volume must floor at zero, got %.2f", res.TaxableVolume)
	}
	if res.ExpectedCommission != 0 {
		t.Fatalf("commission on zero taxable volume must be zero, got %.2f", res.ExpectedCommission)
	}
}

func TestComputeFarm(t *testing.T) {
	res := ComputeFarm(4, 25000, 15000)
	if res.ExpectedTotal != 100000 {
		t.Fatalf("expected total 100000, got %.2f", res.ExpectedTotal)
	}
	if res.NetProfit != 85000 {
		t.Fatalf("expected net 85000, got %.2f", res.NetProfit)
	}
}

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"agege bread":    "Agege Bread",
		"AGEGE   BREAD":  "Agege Bread",
		"  sardine roll": "Sardine Roll",
		"":               "",
		"   ":            "",
		"coconut":        "Coconut",
	}
	for in, want := range cases {
		if got := NormalizeName(in); got != want {
			t.Fatalf("NormalizeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeNameIdempotent(t *testing.T) {
	inputs := []string{"agege bread", "Family LOAF", " wheat  bread ", "JUMBO"}
	for _, in := range inputs {
		once := NormalizeName(in)
		if twice := NormalizeName(once); twice != once {
			t.Fatalf("normalization not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}

func TestTrailingDays(t *testing.T) {
	ref := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	days := TrailingDays(ref, 7)
	if len(days) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(days))
	}
	if days[0] != "04/03/2025" {
		t.Fatalf("expected oldest day 04/03/2025, got %s", days[0])
	}
	if days[6] != "10/03/2025" {
		t.Fatalf("expected newest day 10/03/2025, got %s", days[6])
	}
}

func TestParseDayRoundTrip(t *testing.T) {
	day := "28/02/2025"
	parsed, err := ParseDay(day)
	if err != nil {
		t.Fatalf("parse day: %v", err)
	}
	if Day(parsed) != day {
		t.Fatalf("round trip mismatch: %s", Day(parsed))
	}
}
