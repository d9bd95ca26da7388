package initializers

import (
	"context"

	"fairhire-backend/config"
	"fairhire-backend/fiberlog"
	"fairhire-backend/lib/accuracy"
	"fairhire-backend/lib/application"
	authhandler "fairhire-backend/lib/auth"
	"fairhire-backend/lib/candidate"
	companyprovider "fairhire-backend/lib/dicts/company"
	jobpositionprovider "fairhire-backend/lib/dicts/job-position"
	skillprovider "fairhire-backend/lib/dicts/skill"
	evaluationhandler "fairhire-backend/lib/evaluation"
	xlsexport "fairhire-backend/lib/export/xls"
	gpthandler "fairhire-backend/lib/gpt"
	"fairhire-backend/lib/offer"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	skillprovider.NewHandler()
	companyprovider.NewHandler()
	jobpositionprovider.NewHandler()
	gpthandler.NewHandler()
	accuracy.NewHandler()
	candidate.NewHandler()
	offer.NewHandler()
	application.NewHandler()
	evaluationhandler.NewHandler()
	authhandler.NewHandler()
	xlsexport.NewHandler()
}
