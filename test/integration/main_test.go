package integration_test

import (
	"os"
	"sync"
	"testing"

	"hatamo_backend/test/helpers"
)

// Общий сервер для всех интеграционных тестов. Тесты не параллелятся:
// каждый начинает с очистки таблиц.
var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer возвращает тестовый сервер (создает при первом вызове).
// Интеграционные тесты требуют Postgres: без DATABASE_URL они пропускаются.
func GetTestServer(t *testing.T) *helpers.TestServer {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL is not set, skipping integration test")
	}

	serverOnce.Do(func() {
		if os.Getenv("JWT_SECRET") == "" {
			os.Setenv("JWT_SECRET", "integration_test_secret_12345")
		}
		os.Setenv("SERVER_ENV", "test")
		os.Setenv("ENABLE_EMAIL", "false")

		globalTestServer = helpers.NewTestServer(t)
	})

	ts := globalTestServer
	ts.ClearTables(t)
	return ts
}

func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		globalTestServer.Close()
	}

	os.Exit(code)
}
