package exportstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPutTake_OneShot(t *testing.T) {
	store := New()

	token := store.Put("report.xlsx", []byte("data"), time.Minute)

	entry, ok := store.Take(token)
	assert.True(t, ok)
	assert.Equal(t, "report.xlsx", entry.FileName)
	assert.Equal(t, []byte("data"), entry.Data)

	_, ok = store.Take(token)
	assert.False(t, ok)
}

func TestTake_Expired(t *testing.T) {
	store := New()

	token := store.Put("report.xlsx", []byte("data"), -time.Second)

	_, ok := store.Take(token)
	assert.False(t, ok)
}

func TestTake_UnknownToken(t *testing.T) {
	store := New()

	_, ok := store.Take("nope")
	assert.False(t, ok)
}
