package utils

import (
	"os"
	"testing"

	"gallery-server/internal/testutils"
)

func TestMain(m *testing.M) {
	cleanup := testutils.InitTestConfig()
	code := m.Run()
	cleanup()
	os.Exit(code)
}
