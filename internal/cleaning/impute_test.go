package cleaning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanpro/internal/dataset"
)

func numericColumn(name string, cells ...dataset.Value) dataset.Column {
	return dataset.Column{Name: name, Type: dataset.TypeNumeric, Values: cells}
}

func TestFillColumnNumeric(t *testing.T) {
	t.Run("odd count uses middle value", func(t *testing.T) {
		col := numericColumn("a",
			dataset.Number(1), dataset.Null(), dataset.Number(2), dataset.Number(9))
		got := FillColumn(col)
		assert.Equal(t, dataset.Number(2), got.Values[1])
	})

	t.Run("even count averages the middles", func(t *testing.T) {
		col := numericColumn("a",
			dataset.Number(1), dataset.Number(1), dataset.Number(2), dataset.Number(2), dataset.Null())
		got := FillColumn(col)
		assert.Equal(t, dataset.Number(1.5), got.Values[4])
	})

	t.Run("all null fills zero", func(t *testing.T) {
		col := numericColumn("a", dataset.Null(), dataset.Null())
		got := FillColumn(col)
		assert.Equal(t, dataset.Number(0), got.Values[0])
		assert.Equal(t, dataset.Number(0), got.Values[1])
	})
}

func TestFillColumnDatetime(t *testing.T) {
	jan := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("fills with minimum date", func(t *testing.T) {
		col := dataset.Column{Name: "d", Type: dataset.TypeDatetime, Values: []dataset.Value{
			dataset.Date(mar), dataset.Null(), dataset.Date(jan),
		}}
		got := FillColumn(col)
		assert.Equal(t, dataset.Date(jan), got.Values[1])
	})

	t.Run("all null stays null", func(t *testing.T) {
		col := dataset.Column{Name: "d", Type: dataset.TypeDatetime, Values: []dataset.Value{
			dataset.Null(), dataset.Null(),
		}}
		got := FillColumn(col)
		assert.True(t, got.Values[0].IsNull(), "a date cannot be invented")
		assert.True(t, got.Values[1].IsNull())
	})
}

func TestFillColumnCategorical(t *testing.T) {
	t.Run("fills with mode", func(t *testing.T) {
		col := textColumn("c", "x", "y", "x")
		col.Values = append(col.Values, dataset.Null())
		got := FillColumn(col)
		assert.Equal(t, dataset.Text("x"), got.Values[3])
	})

	t.Run("tie breaks to first encountered", func(t *testing.T) {
		col := dataset.Column{Name: "c", Type: dataset.TypeGeneric, Values: []dataset.Value{
			dataset.Text("b"), dataset.Text("a"), dataset.Text("a"), dataset.Text("b"), dataset.Null(),
		}}
		got := FillColumn(col)
		require.Equal(t, dataset.Text("b"), got.Values[4])

		// Deterministic: repeated runs agree.
		again := FillColumn(col)
		assert.Equal(t, got.Values[4], again.Values[4])
	})

	t.Run("no non-null values falls back to sentinel", func(t *testing.T) {
		col := dataset.Column{Name: "c", Type: dataset.TypeGeneric, Values: []dataset.Value{
			dataset.Null(), dataset.Null(),
		}}
		got := FillColumn(col)
		assert.Equal(t, dataset.Text("Unknown"), got.Values[0])
	})

	t.Run("control bytes in values counted separately", func(t *testing.T) {
		col := dataset.Column{Name: "c", Type: dataset.TypeGeneric, Values: []dataset.Value{
			dataset.Text("y\x1f2z"), dataset.Text("x\x1f2y"), dataset.Text("x\x1f2y"), dataset.Null(),
		}}
		got := FillColumn(col)
		assert.Equal(t, dataset.Text("x\x1f2y"), got.Values[3])
	})

	t.Run("mixed kinds counted separately", func(t *testing.T) {
		col := dataset.Column{Name: "c", Type: dataset.TypeGeneric, Values: []dataset.Value{
			dataset.Number(1), dataset.Text("1"), dataset.Text("1"), dataset.Null(),
		}}
		got := FillColumn(col)
		assert.Equal(t, dataset.Text("1"), got.Values[3])
	})
}

func TestFillColumnDoesNotMutateInput(t *testing.T) {
	col := numericColumn("a", dataset.Number(1), dataset.Null())
	FillColumn(col)
	assert.True(t, col.Values[1].IsNull())
}
