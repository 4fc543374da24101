package dataset

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateAcceptsBothLayouts(t *testing.T) {
	var o Order
	require.NoError(t, json.Unmarshal([]byte(`{"order_id":1,"order_date":"2024-03-05"}`), &o))
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), o.OrderDate.Time)

	require.NoError(t, json.Unmarshal([]byte(`{"order_id":2,"order_date":"2024-03-05T10:30:00Z"}`), &o))
	assert.Equal(t, 2024, o.OrderDate.Year())

	require.NoError(t, json.Unmarshal([]byte(`{"order_id":3,"order_date":null}`), &o))
	assert.True(t, o.OrderDate.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"order_date":"05/03/2024"}`), &o))
}

func TestCustomerDisplayNameFallback(t *testing.T) {
	assert.Equal(t, "Asha Iyer", Customer{FullName: "Asha Iyer", FirstName: "X"}.DisplayName())
	assert.Equal(t, "Rohan Mehta", Customer{FirstName: "Rohan", LastName: "Mehta"}.DisplayName())
	assert.Equal(t, "Priya", Customer{FirstName: "Priya"}.DisplayName())
}
