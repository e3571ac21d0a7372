package match_test

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// Parallel search must not leave goroutines behind.
	goleak.VerifyTestMain(m)
}
