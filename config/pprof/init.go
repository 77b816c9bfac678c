package pprof

import (
	"net/http"
	_ "net/http/pprof"
	"runtime"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const pprofAddr = ":6060"

// Load 在独立端口暴露pprof 运行时诊断用 不和业务端口混在一起
// 锁与阻塞采样打开 方便排查toggle事务的锁竞争
func Load() {
	runtime.SetMutexProfileFraction(1)
	runtime.SetBlockProfileRate(1)

	go func() {
		if err := http.ListenAndServe(pprofAddr, nil); err != nil {
			hlog.Errorf("pprof server exited: %v", err)
		}
	}()
}
