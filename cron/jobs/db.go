package jobs

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openDB connects from MYSQL_* env vars. Jobs cannot use the config package
// because config registers its schedules from this one.
func openDB() (*gorm.DB, error) {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		port := os.Getenv("MYSQL_PORT")
		if port == "" {
			port = "3306"
		}
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=Local",
			os.Getenv("MYSQL_USER"), os.Getenv("MYSQL_PASS"),
			os.Getenv("MYSQL_HOST"), port, os.Getenv("MYSQL_DB"))
	}
	return gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}
