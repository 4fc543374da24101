package analytics

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTrendCSV(t *testing.T) {
	trend := []TrendPoint{
		{Month: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Label: "Jan 2024", Revenue: 140, Cost: 50, Profit: 90},
		{Month: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Label: "Feb 2024", Revenue: 0, Cost: 0, Profit: 0},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTrendCSV(&buf, trend))

	assert.Equal(t,
		"Date,Revenue,Cost,Profit\n"+
			"Jan 2024,140.00,50.00,90.00\n"+
			"Feb 2024,0.00,0.00,0.00\n",
		buf.String())
}
