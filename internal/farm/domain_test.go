package farm

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/okeb-ng/backoffice/internal/ledger"
)

func TestSubmitInputValidate(t *testing.T) {
	in := SubmitInput{CustomerName: "Alhaji Sule", Item: "Broilers", Quantity: 12, PricePerUnit: 7500}
	assert.NoError(t, in.Validate())

	in.CustomerName = "   "
	assert.Error(t, in.Validate())

	in = SubmitInput{CustomerName: "Alhaji Sule", Item: "Broilers", DebtRepaidAmount: 2000}
	assert.Error(t, in.Validate())
}

func TestExpenseOnlyRecordAccepted(t *testing.T) {
	// Feed and drug purchases are filed as records with nothing sold.
	in := SubmitInput{
		CustomerName: "Farm Ops",
		Item:         "Feed / Drugs (Expense Only)",
		Quantity:     0,
		PricePerUnit: 0,
		Expenses:     45000,
	}

	assert.NoError(t, validator.New().Struct(in))
	assert.NoError(t, in.Validate())

	calc := ledger.ComputeFarm(in.Quantity, in.PricePerUnit, in.Expenses)
	assert.Equal(t, 0.0, calc.ExpectedTotal)
	assert.Equal(t, -45000.0, calc.NetProfit)
}
