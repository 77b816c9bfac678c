package database

import (
	"ShortVid.com/cmd/model"
	"ShortVid.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormopentracing "gorm.io/plugin/opentracing"
)

var DB *gorm.DB

// Init init DB
// 各领域dal共享同一个连接池
func Init() {
	var err error
	dsn := utils.GetMysqlDsn()
	DB, err = gorm.Open(mysql.Open(dsn),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
		},
	)
	if err != nil {
		panic(err)
	}
	if err = DB.Use(gormopentracing.New()); err != nil {
		panic(err)
	}

	if err = migrateTables(); err != nil {
		panic(err)
	}
}

func migrateTables() error {
	hlog.Info("Starting tables migration...")

	if err := DB.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.VideoLike{},
		&model.VideoBookmark{},
		&model.VideoShare{},
		&model.Comment{},
		&model.Follow{},
		&model.Notification{},
	); err != nil {
		hlog.Errorf("Failed to migrate tables: %v", err)
		return err
	}

	hlog.Info("Tables migration completed successfully")
	return nil
}
