package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/kontenflow/kontenflow-api/infrastructure/database/postgres"
	"github.com/kontenflow/kontenflow-api/infrastructure/repository"
	"github.com/kontenflow/kontenflow-api/internal/api"
	"github.com/kontenflow/kontenflow-api/internal/config"
	"github.com/kontenflow/kontenflow-api/internal/scheduler"
	"github.com/kontenflow/kontenflow-api/internal/usecases/content"
	"github.com/kontenflow/kontenflow-api/internal/usecases/sweetspot"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Uma única conexão com o banco, compartilhada por todos os repositórios
	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	contentRepo := repository.NewContentItemRepository(pgConn)
	sweetSpotEntryRepo := repository.NewSweetSpotEntryRepository(pgConn)
	sweetSpotSettingsRepo := repository.NewSweetSpotSettingsRepository(pgConn)

	contentService := content.NewService(contentRepo)
	sweetSpotService := sweetspot.NewService(sweetSpotEntryRepo, sweetSpotSettingsRepo, cfg)

	// Inicializa o agendador de lembrete de publicação
	publicationReminderService := scheduler.NewPublicationReminderService(contentRepo, cfg)

	if err := publicationReminderService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de lembrete de publicação")
	} else {
		logrus.Info("Agendador de lembrete de publicação iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		contentService,
		sweetSpotService,
		publicationReminderService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
