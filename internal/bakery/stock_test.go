package bakery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectStockSubtractsQuantityGivenOut(t *testing.T) {
	production := []ProductionLog{
		{ProducedItems: map[string]float64{"Agege Bread": 50}},
	}
	sales := []Sale{
		{BreadType: "agege bread", OpeningStock: 10, ClosingStock: 2},
	}

	stock := ProjectStock(production, sales)
	assert.Equal(t, 40.0, stock["Agege Bread"])
}

func TestProjectStockMergesNameVariants(t *testing.T) {
	production := []ProductionLog{
		{ProducedItems: map[string]float64{"agege bread": 30}},
		{ProducedItems: map[string]float64{"AGEGE BREAD": 20, "Sardine Roll": 15}},
	}
	sales := []Sale{
		{BreadType: "Agege  Bread", OpeningStock: 5},
		{BreadType: "sardine roll", OpeningStock: 15},
	}

	stock := ProjectStock(production, sales)
	assert.Equal(t, 45.0, stock["Agege Bread"])
	assert.Equal(t, 0.0, stock["Sardine Roll"])
}

func TestProjectStockIgnoresSalesWithoutDispatch(t *testing.T) {
	production := []ProductionLog{
		{ProducedItems: map[string]float64{"Agege Bread": 10}},
	}
	sales := []Sale{
		{BreadType: "Agege Bread", OpeningStock: 0},
		{BreadType: "", OpeningStock: 4},
	}

	stock := ProjectStock(production, sales)
	assert.Equal(t, 10.0, stock["Agege Bread"])
}

func TestStockLevelsFlagsLowStock(t *testing.T) {
	levels := StockLevels(map[string]float64{
		"Agege Bread":  9,
		"Sardine Roll": 10,
	}, 10)

	assert.Len(t, levels, 2)
	assert.Equal(t, "Agege Bread", levels[0].Name)
	assert.True(t, levels[0].Low)
	assert.Equal(t, "Sardine Roll", levels[1].Name)
	assert.False(t, levels[1].Low)
}

func TestCleanProducedDropsZeroCountsAndNormalizes(t *testing.T) {
	in := ProductionInput{
		BakerName: "Chinedu",
		ProducedItems: map[string]float64{
			"agege bread":  50,
			"Sardine Roll": 0,
			"  family loaf": 12,
		},
	}

	produced := in.CleanProduced()
	assert.Equal(t, map[string]float64{
		"Agege Bread": 50,
		"Family Loaf": 12,
	}, produced)
}

func TestCartLinesNormalizeBreadNames(t *testing.T) {
	in := SalesInput{
		StaffName: "Ngozi",
		Cart: []CartItem{
			{BreadType: "agege bread", QtyGiven: 20, QtyReturned: 2, Price: 500},
		},
	}

	lines := in.CartLines()
	assert.Equal(t, "Agege Bread", lines[0].BreadType)
	assert.Equal(t, 18.0, lines[0].Sold())
	assert.Equal(t, 9000.0, lines[0].Total())
}
