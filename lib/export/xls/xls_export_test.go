package xlsexport

import (
	extractionapimodels "question-extractor/models/api/extraction"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportQuestionList(t *testing.T) {
	t.Run(`questions export check`, func(t *testing.T) {
		list := []extractionapimodels.ExtractedItem{
			{Sn: "512", Question: "सम्राट अशोक कहिले नेपालआएका थिए ?", Options: "(A) इ.पू. २५० (B) इ.पू. २५२"},
			{Sn: "513", Question: "अर्को प्रश्न?", Options: "(A) विकल्प १ (B) विकल्प २"},
		}
		buf, err := impl{}.ExportQuestionList(list)
		require.NoError(t, err)

		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows(sheetName)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		require.Equal(t, questionHeaders, rows[0])
		require.Equal(t, []string{"512", "सम्राट अशोक कहिले नेपालआएका थिए ?", "(A) इ.पू. २५० (B) इ.पू. २५२"}, rows[1])
		require.Equal(t, []string{"513", "अर्को प्रश्न?", "(A) विकल्प १ (B) विकल्प २"}, rows[2])
	})

	t.Run(`empty list export check`, func(t *testing.T) {
		buf, err := impl{}.ExportQuestionList(nil)
		require.NoError(t, err)

		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows(sheetName)
		require.NoError(t, err)
		require.Len(t, rows, 1)
	})
}
