package constants

const (
	DataFormate = "2006-01-02 15:04:05"

	DefaultPageNum = 1
	DefaultLimit   = 10
	MaxLimit       = 50

	// toggle写入冲突时的重试次数
	ToggleMaxRetry = 2

	ApiServiceName = "api"
)
