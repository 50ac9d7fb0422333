package fuel

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/okeb-ng/backoffice/internal/ledger"
)

func TestSubmitInputValidate(t *testing.T) {
	in := SubmitInput{StaffName: "Musa", PumpID: "Pump 1", Product: "PMS (Petrol)", Rate: 940}
	assert.NoError(t, in.Validate())

	in.StaffName = "   "
	assert.Error(t, in.Validate())
}

func TestZeroRateEntryAccepted(t *testing.T) {
	// A forgotten rate still records; the variance surfaces the mistake
	// instead of the form rejecting it.
	in := SubmitInput{
		StaffName:     "Musa",
		PumpID:        "Pump 1",
		Product:       "PMS (Petrol)",
		OpeningMeter:  1000,
		ClosingMeter:  1200,
		Rate:          0,
		CashCollected: 50000,
	}

	assert.NoError(t, validator.New().Struct(in))
	assert.NoError(t, in.Validate())

	calc := ledger.ComputeFuel(ledger.FuelInput{
		OpeningMeter:  in.OpeningMeter,
		ClosingMeter:  in.ClosingMeter,
		RatePerLiter:  in.Rate,
		CashCollected: in.CashCollected,
	})
	assert.Equal(t, 0.0, calc.Expected)
	assert.Equal(t, 50000.0, calc.Variance)
}
