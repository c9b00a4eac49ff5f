package bot

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"suggestbox/command"
	"suggestbox/config"
	"suggestbox/db"
	"suggestbox/handler/suggest"
	"suggestbox/moderation"
	"suggestbox/queue"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Start 启动机器人: loads config, wires the pipeline, and blocks until a
// termination signal.
func Start() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("加载配置文件时出错: %v", err)
	}

	logger, err := config.NewLogger()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	conn, err := db.Open(cfg.Suggest.DatabasePath)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer conn.Close()

	// 使用提供的机器人令牌创建一个新的 Discord 会话
	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		logger.Fatal("failed to create Discord session", zap.Error(err))
	}

	store := db.NewStore(conn)
	pending := queue.New()
	letters := moderation.NewDeadLetter(cfg.Suggest.DeadLetterCapacity)
	notifier := suggest.NewNotifier(dg, cfg, logger)
	proc := moderation.NewProcessor(pending, store, notifier, letters, logger)

	h := suggest.New(cfg, proc, pending, letters, store, logger)
	h.Register()
	registerEventHandlers(dg, h)

	if err := dg.Open(); err != nil {
		logger.Fatal("failed to open gateway connection", zap.Error(err))
	}

	for _, cmd := range command.AllCommands {
		if _, err := dg.ApplicationCommandCreate(dg.State.User.ID, cfg.GuildID, cmd); err != nil {
			logger.Fatal("failed to create command", zap.String("command", cmd.Name), zap.Error(err))
		}
	}

	logger.Info("bot is now running, press CTRL-C to exit")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	dg.Close()
}
