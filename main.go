package main

import (
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/quasilyte/gdata/v2"

	"fbx/server"
	"fbx/stats"
)

// FBX 入口：启动 HTTP + WebSocket 服务，并创建对局会话
func main() {
	var addr, cfgPath string
	flag.StringVar(&addr, "addr", "", "server listen address, overrides config, e.g. :8080")
	flag.StringVar(&cfgPath, "config", "fbx.yaml", "path to config file")
	flag.Parse()

	cfg, err := server.LoadConfig(cfgPath)
	if err != nil {
		panic(err)
	}
	if addr != "" {
		cfg.Addr = addr
	}

	// 使用第三方 zap 日志库写入文件（带滚动）
	if err := server.InitLogger(cfg.LogFile); err != nil {
		panic(err)
	}
	defer server.SyncLogger()

	// 统计台账走 gdata 跨平台存储；打不开时降级为仅内存
	manager, err := gdata.Open(gdata.Config{AppName: cfg.DataAppName})
	if err != nil {
		server.Log.Warnf("gdata unavailable, stats will not persist: %v", err)
		manager = nil
	}
	store, err := stats.Open(manager)
	if err != nil {
		server.Log.Fatalf("open stats store: %v", err)
	}

	sess := server.NewSession(store, cfg)
	sess.Start()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", sess.HandleWS)
	// 前后端分离：将 / 映射到 web 目录的静态资源
	mux.Handle("/", http.FileServer(http.Dir("web")))
	// 管理与监控接口
	mux.HandleFunc("/admin/config", sess.HandleAdminConfig)
	mux.HandleFunc("/metrics", sess.HandleMetrics)
	mux.HandleFunc("/stats", sess.HandleStats)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{Addr: cfg.Addr, Handler: mux}

	go func() {
		server.Log.Infof("FBX listening on %s; open http://localhost%v/", cfg.Addr, cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			server.Log.Fatalf("listen: %v", err)
		}
	}()

	// 优雅退出（Ctrl+C）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	server.Log.Info("Shutting down...")
	sess.Stop()
}
