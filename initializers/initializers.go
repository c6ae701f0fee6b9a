package initializers

import (
	"question-extractor/config"
	"question-extractor/fiberlog"
	pdfexport "question-extractor/lib/export/pdf"
	xlsexport "question-extractor/lib/export/xls"
)

var LoggerConfig *fiberlog.Config

func InitAllServices() {
	config.InitConfig()
	LoggerConfig = InitLogger()
	InitAI()
	xlsexport.NewHandler()
	pdfexport.NewHandler(config.Conf.Export.PdfFontDir, config.Conf.Export.PdfFontFile)
}
