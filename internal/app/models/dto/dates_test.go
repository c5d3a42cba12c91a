package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateUnmarshal(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2023-05-10"`), &d))
	assert.Equal(t, 2023, d.Year())
	assert.Equal(t, time.May, d.Month())

	// RFC3339 timestamps are accepted too
	require.NoError(t, json.Unmarshal([]byte(`"2023-05-10T14:30:00Z"`), &d))
	assert.Equal(t, 10, d.Day())

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"10/05/2023"`), &d))
}

func TestDateMarshal(t *testing.T) {
	d := Date{Time: time.Date(2023, time.May, 10, 14, 30, 0, 0, time.UTC)}
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2023-05-10"`, string(out))

	out, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestDateTimePtr(t *testing.T) {
	var nilDate *Date
	assert.Nil(t, nilDate.TimePtr())
	assert.Nil(t, (&Date{}).TimePtr())

	d := &Date{Time: time.Date(2023, time.May, 10, 0, 0, 0, 0, time.UTC)}
	ptr := d.TimePtr()
	require.NotNil(t, ptr)
	assert.Equal(t, d.Time, *ptr)
}
