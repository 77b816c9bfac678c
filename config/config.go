package config

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

// 使用Viper的好处在于支持配置文件的热更新 同时viper对于大小写并不敏感
func Init() {
	viper.SetConfigType("yaml")
	viper.SetConfigName("config.yml")

	configPaths := []string{
		"../../config",
		"./config",
		"../config",
		".",
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Errorf("config file not found: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
		}
		return
	}

	logrus.Infof("Successfully read config file: %s", viper.ConfigFileUsed())

	ConfigInfo.Server.Addr = viper.GetString("server.addr")

	ConfigInfo.Mysql.Addr = viper.GetString("mysql.addr")
	ConfigInfo.Mysql.Database = viper.GetString("mysql.database")
	ConfigInfo.Mysql.Username = viper.GetString("mysql.username")
	ConfigInfo.Mysql.Password = viper.GetString("mysql.password")
	ConfigInfo.Mysql.Charset = viper.GetString("mysql.charset")

	ConfigInfo.Redis.Addr = viper.GetString("redis.addr")
	ConfigInfo.Redis.Password = viper.GetString("redis.password")
	ConfigInfo.Redis.DB = viper.GetInt("redis.db")

	ConfigInfo.RabbitMq.Addr = viper.GetString("rabbitmq.addr")
	ConfigInfo.RabbitMq.Username = viper.GetString("rabbitmq.username")
	ConfigInfo.RabbitMq.Password = viper.GetString("rabbitmq.password")

	ConfigInfo.Minio.Endpoint = viper.GetString("minio.endpoint")
	ConfigInfo.Minio.AccessKey = viper.GetString("minio.access_key")
	ConfigInfo.Minio.SecretKey = viper.GetString("minio.secret_key")
	ConfigInfo.Minio.UseSSL = viper.GetBool("minio.use_ssl")
	ConfigInfo.Minio.Bucket = viper.GetString("minio.bucket")

	ConfigInfo.Jwt.AccessSecret = viper.GetString("jwt.access_secret")
	ConfigInfo.Jwt.RefreshSecret = viper.GetString("jwt.refresh_secret")

	logrus.Infof("Config loaded - MySQL: %s:%s@%s/%s",
		ConfigInfo.Mysql.Username, "***", ConfigInfo.Mysql.Addr, ConfigInfo.Mysql.Database)
}
