package testutil_test

import (
	"testing"

	"github.com/m-mizutani/gitminer/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestGetEnvOrSkip(t *testing.T) {
	t.Run("Returns value when env var is set", func(t *testing.T) {
		key := "TEST_ENV_VAR_SET"
		expected := "test_value"
		t.Setenv(key, expected)

		value := testutil.GetEnvOrSkip(t, key)
		gt.V(t, value).Equal(expected)
	})

	t.Run("Skips test when env var is not set", func(t *testing.T) {
		var skipped bool
		t.Run("inner", func(t *testing.T) {
			defer func() { skipped = t.Skipped() }()
			t.Setenv("GITMINER_TEST_UNSET_ENV", "")
			testutil.GetEnvOrSkip(t, "GITMINER_TEST_UNSET_ENV")
		})
		gt.True(t, skipped)
	})
}
