package bankroll

import (
	"fmt"
	"os"
	"testing"

	"pokermaster-server/internal/config"
	"pokermaster-server/internal/util"
	"pokermaster-server/pkg/db"
)

func TestMain(m *testing.M) {
	unset := util.SetEnv("PMS_MIGRATIONS_PATH", util.Getenv("PMS_MIGRATIONS_PATH", "../../sql"))

	conn, err := db.Open(config.Instance().PGDSN)
	if err != nil {
		fmt.Printf("skipping bankroll tests, database unavailable: %v\n", err)
		unset()
		os.Exit(0)
	}
	_ = conn.Close()

	if err := db.Migrate(); err != nil {
		fmt.Printf("could not migrate: %v\n", err)
		unset()
		os.Exit(1)
	}

	code := m.Run()
	unset()
	os.Exit(code)
}
