package main

import (
	"database/sql"
	"time"

	"tarneeb-server/internal/config"
	"tarneeb-server/pkg/db"

	"github.com/sirupsen/logrus"
)

func main() {
	dbh := waitForDB()
	if err := db.Migrate(dbh, config.Instance().MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}
}

func waitForDB() *sql.DB {
	timeout := time.NewTimer(time.Second * 10)
	for {
		select {
		case <-timeout.C:
			logrus.Fatal("could not connect to database")
		default:
			dbh, err := db.Instance()
			if err == db.ErrNotConfigured {
				logrus.Fatal("pgDsn is not configured")
			}

			if err == nil {
				return dbh
			}

			logrus.WithError(err).Debug("database is not ready")
			time.Sleep(time.Millisecond * 500)
		}
	}
}
