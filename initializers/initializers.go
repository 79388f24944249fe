package initializers

import (
	"context"
	log "github.com/sirupsen/logrus"
	"hr-onboarding-board/config"
	"hr-onboarding-board/fiberlog"
	"hr-onboarding-board/lib/board"
	pdfexport "hr-onboarding-board/lib/export/pdf"
	xlsexport "hr-onboarding-board/lib/export/xls"
	filestorage "hr-onboarding-board/lib/file-storage"
	onboardinghandler "hr-onboarding-board/lib/onboarding"
	onboardingclient "hr-onboarding-board/lib/onboarding/client"
	"time"
)

var LoggerConfig *fiberlog.Config

const (
	BoardSourceHttp  = "http"
	BoardSourceLocal = "local"
)

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	SetLogLevel(config.Conf.App.LogLevel)
	InitDBConnection()
	s3 := InitS3(ctx)
	filestorage.NewHandler(s3, time.Second*time.Duration(config.Conf.S3.LinkExpireInSec))
	xlsexport.NewHandler()
	pdfexport.NewHandler(config.Conf.Export.FontDir)
	onboardinghandler.NewHandler()
	onboardingclient.NewProvider(config.Conf.Board.SourceURL, config.Conf.Auth.JWTSecret, config.Conf.Auth.JWTExpireInSec)
	board.NewHandler(getBoardSource(), time.Second*time.Duration(config.Conf.Board.RenderWaitInSec))
}

func getBoardSource() board.DataSource {
	switch config.Conf.Board.Source {
	case BoardSourceLocal:
		log.Info("Доска онбординга читает данные напрямую из БД")
		return onboardinghandler.Instance
	case BoardSourceHttp:
		log.WithField("source_url", config.Conf.Board.SourceURL).Info("Доска онбординга читает данные через api")
		return onboardingclient.Instance
	default:
		log.WithField("source", config.Conf.Board.Source).Warn("неизвестный источник доски, используется http")
		return onboardingclient.Instance
	}
}
