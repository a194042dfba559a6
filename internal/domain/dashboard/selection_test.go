package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilterSelection_Key(t *testing.T) {
	june1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("order independent", func(t *testing.T) {
		a := FilterSelection{Mode: DateModeDaily, Date: june1, Routes: []string{"R1", "R2"}, Areas: []string{"Harare", "Mutare"}}
		b := FilterSelection{Mode: DateModeDaily, Date: june1, Routes: []string{"R2", "R1"}, Areas: []string{"Mutare", "Harare"}}
		assert.Equal(t, a.Key(), b.Key())
	})

	t.Run("separators inside labels", func(t *testing.T) {
		a := FilterSelection{Mode: DateModeDaily, Date: june1, Routes: []string{"a|b"}, Areas: []string{"c"}}
		b := FilterSelection{Mode: DateModeDaily, Date: june1, Routes: []string{"a"}, Areas: []string{"b|c"}}
		assert.NotEqual(t, a.Key(), b.Key())

		c := FilterSelection{Mode: DateModeDaily, Date: june1, Routes: []string{"x,y"}}
		d := FilterSelection{Mode: DateModeDaily, Date: june1, Routes: []string{"x", "y"}}
		assert.NotEqual(t, c.Key(), d.Key())
	})

	t.Run("period", func(t *testing.T) {
		daily := FilterSelection{Mode: DateModeDaily, Date: june1}
		nextDay := FilterSelection{Mode: DateModeDaily, Date: june1.AddDate(0, 0, 1)}
		monthly := FilterSelection{Mode: DateModeMonthly, Month: "June", Date: june1}
		assert.NotEqual(t, daily.Key(), nextDay.Key())
		assert.NotEqual(t, daily.Key(), monthly.Key())
	})

	t.Run("nil and empty sets agree", func(t *testing.T) {
		a := FilterSelection{Mode: DateModeMonthly, Month: "June"}
		b := FilterSelection{Mode: DateModeMonthly, Month: "June", Routes: []string{}, Areas: []string{}}
		assert.Equal(t, a.Key(), b.Key())
	})
}

func TestFilterSelection_KeyDoesNotReorderInput(t *testing.T) {
	routes := []string{"R2", "R1"}
	sel := FilterSelection{Mode: DateModeDaily, Routes: routes}
	_ = sel.Key()
	assert.Equal(t, []string{"R2", "R1"}, routes)
}
