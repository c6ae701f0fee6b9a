package pdfexport

import (
	"bytes"
	"fmt"
	extractionapimodels "question-extractor/models/api/extraction"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const fontFamily = "QuestionFont"

type Provider interface {
	ExportQuestionList(list []extractionapimodels.ExtractedItem) ([]byte, error)
}

var Instance Provider

// NewHandler fontDir и fontFile - TTF шрифт с нужными глифами (для деванагари стандартные шрифты pdf не подходят)
func NewHandler(fontDir, fontFile string) {
	Instance = impl{
		fontDir:  fontDir,
		fontFile: fontFile,
	}
}

type impl struct {
	fontDir  string
	fontFile string
}

func (i impl) ExportQuestionList(list []extractionapimodels.ExtractedItem) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("ExportQuestionList panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", i.fontDir)
	pdf.SetTitle("Questions", true)
	pdf.AddUTF8Font(fontFamily, "", i.fontFile)
	pdf.SetFont(fontFamily, "", 12)
	if pdf.Error() != nil {
		return nil, errors.Wrapf(pdf.Error(), "unable to load pdf font %s", i.fontFile)
	}
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	_, lineHt := pdf.GetFontSize()
	lineHt *= 1.5
	for _, item := range list {
		pdf.MultiCell(0, lineHt, fmt.Sprintf("%s. %s", item.Sn, item.Question), "", "L", false)
		pdf.SetX(pdf.GetX() + 8)
		pdf.MultiCell(0, lineHt, item.Options, "", "L", false)
		pdf.Ln(lineHt / 2)
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
