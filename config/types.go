package config

type config struct {
	Server   server   `yaml:"server" mapstructure:"server"`
	Mysql    mysql    `yaml:"mysql" mapstructure:"mysql"`
	Redis    redis    `yaml:"redis" mapstructure:"redis"`
	RabbitMq rabbitmq `yaml:"rabbitmq" mapstructure:"rabbitmq"`
	Minio    minio    `yaml:"minio" mapstructure:"minio"`
	Jwt      jwt      `yaml:"jwt" mapstructure:"jwt"`
}

type server struct {
	Addr string `yaml:"addr"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type rabbitmq struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type minio struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl"`
	Bucket    string `yaml:"bucket"`
}

type jwt struct {
	AccessSecret  string `yaml:"access_secret"`
	RefreshSecret string `yaml:"refresh_secret"`
}
