package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/spf13/pflag"

	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"

	"resume-agent-go/internal/api/handler"
	"resume-agent-go/internal/api/router"
	"resume-agent-go/internal/config"
	appLogger "resume-agent-go/internal/logger"
	"resume-agent-go/internal/processor"
)

var (
	version     = "1.0.0"           //nolint:gochecknoglobals
	serviceName = "resume-agent-go" //nolint:gochecknoglobals
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		glog.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志：应用日志走zerolog，hertz框架日志通过适配器桥接过去
	appLogger.Init(appLogger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})
	glog.SetLogger(hertzadapter.From(appLogger.Logger))

	appLogger.Info().
		Str("service", serviceName).
		Str("version", version).
		Str("address", cfg.Server.Address).
		Msg("服务启动")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resumeParser, err := processor.BuildResumeParser(ctx, cfg)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("初始化简历解析器失败")
	}

	resumeHandler := handler.NewResumeHandler(cfg, resumeParser)

	h := server.Default(server.WithHostPorts(cfg.Server.Address))
	router.RegisterRoutes(h, resumeHandler)

	// 监听退出信号，优雅关闭
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		appLogger.Info().Msg("收到退出信号，开始关闭服务")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := h.Shutdown(shutdownCtx); err != nil {
			appLogger.Error().Err(err).Msg("关闭服务失败")
		}
	}()

	h.Spin()
}
