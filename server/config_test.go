package server

import (
	"os"
	"testing"
	"time"

	utils "github.com/elliemb/eights/internal"
)

func TestConfigFromEnv(t *testing.T) {
	unset := func() {
		os.Unsetenv("PORT")
		os.Unsetenv("STATIC_DIR")
		os.Unsetenv("AI_DELAY")
		os.Unsetenv("ALLOWED_ORIGIN")
	}

	t.Run("defaults", func(t *testing.T) {
		unset()

		config, err := ConfigFromEnv()
		utils.AssertNoError(t, err)

		utils.AssertEqual(t, config.Port, 8000)
		utils.AssertEqual(t, config.StaticDir, "./build")
		utils.AssertEqual(t, config.AIDelay, 1500*time.Millisecond)
		utils.AssertEqual(t, config.AllowedOrigin, "*")
	})

	t.Run("reads the environment", func(t *testing.T) {
		os.Setenv("PORT", "9000")
		os.Setenv("AI_DELAY", "250ms")
		defer unset()

		config, err := ConfigFromEnv()
		utils.AssertNoError(t, err)

		utils.AssertEqual(t, config.Port, 9000)
		utils.AssertEqual(t, config.AIDelay, 250*time.Millisecond)
	})
}
