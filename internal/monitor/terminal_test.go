package monitor

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeysForwardsBytesAndClosesOnEOF(t *testing.T) {
	ch := Keys(strings.NewReader("eq"))

	var got []byte
	timeout := time.After(2 * time.Second)
	for {
		select {
		case b, ok := <-ch:
			if !ok {
				assert.Equal(t, []byte("eq"), got)
				return
			}
			got = append(got, b)
		case <-timeout:
			t.Fatal("key channel did not close on EOF")
		}
	}
}
