package importer

import (
	"strings"
	"testing"

	"github.com/budingo48763/Japan-trip-app/internal/apperr"
	"github.com/budingo48763/Japan-trip-app/pkg/itinerary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("should parse a full sheet", func(t *testing.T) {
		csv := "Day,Time,Title,Location,Cost,Note\n" +
			"1,09:00,清水寺,清水寺,400,先買票\n" +
			"1,12:30,午餐,,1200,\n" +
			"2,10:00,環球影城,大阪環球影城,8600,提早出門\n"

		rows, err := Parse(strings.NewReader(csv))

		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, Row{Day: 1, Time: "09:00", Title: "清水寺", Location: "清水寺", Cost: 400, Note: "先買票"}, rows[0])
		assert.Equal(t, "", rows[1].Location)
		assert.Equal(t, 2, rows[2].Day)
	})

	t.Run("should match headers case-insensitively", func(t *testing.T) {
		csv := "DAY,time,Title\n1,09:00,早餐\n"

		rows, err := Parse(strings.NewReader(csv))

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "早餐", rows[0].Title)
	})

	t.Run("should pad single-digit hours", func(t *testing.T) {
		csv := "day,time,title\n1,9:00,早餐\n"

		rows, err := Parse(strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, "09:00", rows[0].Time)
	})

	t.Run("should reject a sheet missing a required column", func(t *testing.T) {
		csv := "day,title\n1,早餐\n"

		_, err := Parse(strings.NewReader(csv))

		require.Error(t, err)
		assert.ErrorIs(t, err, apperr.ErrValidation)
		assert.Contains(t, err.Error(), "time")
	})

	t.Run("should reject the whole sheet when one row is bad", func(t *testing.T) {
		csv := "day,time,title\n" +
			"1,09:00,早餐\n" +
			"零,10:00,壞掉的\n" +
			"2,11:00,午餐\n"

		rows, err := Parse(strings.NewReader(csv))

		require.Error(t, err)
		assert.ErrorIs(t, err, apperr.ErrValidation)
		assert.Nil(t, rows)
	})

	t.Run("should reject a negative cost", func(t *testing.T) {
		csv := "day,time,title,cost\n1,09:00,早餐,-5\n"

		_, err := Parse(strings.NewReader(csv))

		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("should reject a malformed time", func(t *testing.T) {
		csv := "day,time,title\n1,which-way,早餐\n"

		_, err := Parse(strings.NewReader(csv))

		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestRow_toItem(t *testing.T) {
	row := Row{Day: 2, Time: "10:00", Title: "環球影城", Location: "大阪", Cost: 8600, Note: "早點到"}

	item := row.toItem()

	assert.Equal(t, 2, item.Day)
	assert.Equal(t, itinerary.CategoryOther, item.Category)
	assert.Equal(t, itinerary.Transport{Mode: itinerary.TransportMove, Minutes: 30}, item.Transport)
	assert.Equal(t, 8600, item.BaseCost)
}
