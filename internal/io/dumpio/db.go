package dumpio

import (
	"database/sql"
	"fmt"

	"github.com/davidpeckham/vin/pkg/config"
	_ "github.com/go-sql-driver/mysql"
)

func mysqlConn(cfg config.Config) (*sql.DB, error) {
	url := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		cfg.MyUser, cfg.MyPass, cfg.MyHost, 3306, cfg.MyDB)
	db, err := sql.Open("mysql", url)
	if err != nil {
		return nil, err
	}
	return db, db.Ping()
}
