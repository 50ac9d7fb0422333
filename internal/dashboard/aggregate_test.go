package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("02/01/2006", s)
	require.NoError(t, err)
	return parsed
}

func TestBuildOverviewTodayStats(t *testing.T) {
	ref := day(t, "10/03/2025")
	h := History{
		Fuel: []Entry{
			{Amount: 47000, Date: "10/03/2025"},
			{Amount: 99999, Date: "09/03/2025"},
		},
		Bakery: []Entry{
			{Amount: 9000, Expenses: 500, Date: "10/03/2025"},
		},
		Farm: []Entry{
			{Amount: 150000, Expenses: 20000, Date: "10/03/2025"},
		},
		POS: []Entry{
			{Amount: 4200, Date: "10/03/2025"},
		},
		UnpaidDebtsTotal: 36000,
	}

	overview := BuildOverview(h, ref)

	assert.Equal(t, 47000.0+9000+150000+4200, overview.Stats.TodaySales)
	assert.Equal(t, 20500.0, overview.Stats.TodayExpenses)
	assert.Equal(t, overview.Stats.TodaySales-20500, overview.Stats.TodayProfit)
	assert.Equal(t, 36000.0, overview.Stats.TotalDebts)
}

func TestBuildOverviewTrendAlwaysSevenEntries(t *testing.T) {
	ref := day(t, "10/03/2025")

	overview := BuildOverview(History{}, ref)
	require.Len(t, overview.Trend, 7)
	assert.Equal(t, "04/03/2025", overview.Trend[0].Date)
	assert.Equal(t, "10/03/2025", overview.Trend[6].Date)
	for _, p := range overview.Trend {
		assert.Zero(t, p.Total)
	}

	h := History{
		Fuel: []Entry{{Amount: 1000, Date: "07/03/2025"}},
		POS:  []Entry{{Amount: 250, Date: "07/03/2025"}},
	}
	overview = BuildOverview(h, ref)
	require.Len(t, overview.Trend, 7)
	assert.Equal(t, 1250.0, overview.Trend[3].Total)
	assert.Equal(t, "07/03", overview.Trend[3].Label)
}

func TestBuildOverviewSplitOmitsZeroDepartments(t *testing.T) {
	ref := day(t, "10/03/2025")
	h := History{
		Fuel:   []Entry{{Amount: 47000, Date: "10/03/2025"}},
		Bakery: []Entry{{Amount: 0, Date: "10/03/2025"}},
		POS:    []Entry{{Amount: 4200, Date: "10/03/2025"}},
	}

	overview := BuildOverview(h, ref)
	require.Len(t, overview.Split, 2)
	assert.Equal(t, DepartmentShare{Name: "Fuel", Value: 47000}, overview.Split[0])
	assert.Equal(t, DepartmentShare{Name: "POS", Value: 4200}, overview.Split[1])
}

func TestBuildOverviewPOSContributesProfitNotVolume(t *testing.T) {
	ref := day(t, "10/03/2025")
	h := History{
		POS: []Entry{{Amount: -350, Date: "10/03/2025"}},
	}

	overview := BuildOverview(h, ref)
	assert.Equal(t, -350.0, overview.Stats.TodaySales)
	assert.Empty(t, overview.Split)
}
