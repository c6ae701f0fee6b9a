package xlsexport

import (
	"bytes"
	extractionapimodels "question-extractor/models/api/extraction"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportQuestionList(list []extractionapimodels.ExtractedItem) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const sheetName = "Questions"

var (
	questionHeaders = []string{"S.N.", "Question", "Options"}
	questionWidths  = []float64{8, 70, 70}
)

func (i impl) ExportQuestionList(list []extractionapimodels.ExtractedItem) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, questionHeaders, questionWidths)
	if err != nil {
		return nil, errors.Wrap(err, "unable to write xlsx header")
	}
	if len(list) != 0 {
		if _, err = writeQuestionData(f, sheet, list, row); err != nil {
			return nil, errors.Wrap(err, "unable to write xlsx data")
		}
	}
	if err = f.SetSheetName(sheet, sheetName); err != nil {
		return nil, errors.Wrap(err, "unable to rename xlsx sheet")
	}
	return f.WriteToBuffer()
}

func writeQuestionData(f *excelize.File, sheet string, list []extractionapimodels.ExtractedItem, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(questionHeaders), row+len(list)); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "S.N."
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Sn); err != nil {
			return row, err
		}

		// "Question"
		col++
		if err := writeColumn(f, sheet, col, row, item.Question); err != nil {
			return row, err
		}

		// "Options"
		col++
		if err := writeColumn(f, sheet, col, row, item.Options); err != nil {
			return row, err
		}
	}
	return row, nil
}
