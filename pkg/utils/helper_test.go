package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseInt64(t *testing.T) {
	assert.Equal(t, int64(42), ParseInt64("42"))
	assert.Equal(t, int64(0), ParseInt64("abc"))
	assert.Equal(t, int64(0), ParseInt64(""))
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "Yes", YesNo(true))
	assert.Equal(t, "No", YesNo(false))
}

func TestCollapseNewlines(t *testing.T) {
	assert.Equal(t, "a b c", CollapseNewlines("a\r\nb\nc"))
	assert.Equal(t, "plain", CollapseNewlines("plain"))
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "", FormatTimestamp(time.Time{}))
	assert.Equal(t, "2026-08-20 09:30:00",
		FormatTimestamp(time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)))
}
