package importer

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_CorrectFile(t *testing.T) {
	f, err := os.Open("testdata/fighters-correct.csv")
	require.NoError(t, err)
	defer f.Close()

	fighters, err := Parse(f)
	require.NoError(t, err)
	require.Len(t, fighters, 5)

	first := fighters[0]
	assert.Equal(t, "Dead Unicorn", first.Name)
	assert.Equal(t, "https://cdn.example.com/dead-unicorn.png", first.ImageURL)
	assert.Equal(t, int32(60), first.Attack)
	assert.Equal(t, int32(15), first.Defense)
	assert.Equal(t, int32(10), first.HitPoints)
	assert.Equal(t, int32(80), first.Speed)
	assert.Empty(t, first.ID, "ids are assigned by the store, never read from the file")
}

func TestParse_WrongColumn(t *testing.T) {
	f, err := os.Open("testdata/fighters-wrong-column.csv")
	require.NoError(t, err)
	defer f.Close()

	_, err = Parse(f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hp")
}

func TestParse_ColumnOrderAndCase(t *testing.T) {
	in := "Speed, HP ,Defense,Attack,Image_URL,Name\n5,9,3,7,img,Zed\n"

	fighters, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, fighters, 1)
	assert.Equal(t, int32(5), fighters[0].Speed)
	assert.Equal(t, int32(9), fighters[0].HitPoints)
	assert.Equal(t, int32(7), fighters[0].Attack)
	assert.Equal(t, "Zed", fighters[0].Name)
}

func TestParse_RowErrors(t *testing.T) {
	const header = "name,image_url,attack,defense,hp,speed\n"
	cases := []struct {
		name   string
		body   string
		row    int
		line   int
		column string
	}{
		{"missing value", "A,img,1,1,1,1\nB,img,,1,1,1\n", 2, 3, "attack"},
		{"not a number", "A,img,one,1,1,1\n", 1, 2, "attack"},
		{"out of int32 range", "A,img,1,1,1,99999999999\n", 1, 2, "speed"},
		{"short row", "A,img,1,1,1\n", 1, 2, ""},
		{"negative hp", "A,img,1,1,-4,1\n", 1, 2, ""},
		{"blank name", " ,img,1,1,4,1\n", 1, 2, "name"},
		{"blank lines are counted in line only", "A,img,1,1,1,1\n\n\nB,img,x,1,1,1\n", 2, 5, "attack"},
		{"short row after blank line", "\nA,img,1,1,1\n", 1, 3, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(header + tc.body))
			require.Error(t, err)

			var rowErr *RowError
			require.ErrorAs(t, err, &rowErr)
			assert.Equal(t, tc.row, rowErr.Row)
			assert.Equal(t, tc.line, rowErr.Line)
			assert.Equal(t, tc.column, rowErr.Column)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoHeader)

	_, err = Parse(strings.NewReader("name,image_url,attack,defense,hp,speed\n"))
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestParse_ZeroAndNegativeStatsAreAllowed(t *testing.T) {
	in := "name,image_url,attack,defense,hp,speed\nGhost,img,-3,0,0,-10\n"

	fighters, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, int32(-3), fighters[0].Attack)
	assert.Equal(t, int32(0), fighters[0].HitPoints)
}

func TestParse_EmptyImageURL(t *testing.T) {
	in := "name,image_url,attack,defense,hp,speed\nZed,,5,3,9,1\n"

	fighters, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, fighters, 1)
	assert.Equal(t, "Zed", fighters[0].Name)
	assert.Empty(t, fighters[0].ImageURL)
	assert.Equal(t, int32(9), fighters[0].HitPoints)
}
