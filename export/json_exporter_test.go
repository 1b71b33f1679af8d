package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONExporter(t *testing.T) {
	exporter := NewJSONExporter()
	assert.NotNil(t, exporter)
	assert.NotNil(t, exporter.options)
}

func TestJSONExporter_Export(t *testing.T) {
	exporter := NewJSONExporter()

	var buf bytes.Buffer
	err := exporter.Export(testRecords(), &buf)
	require.NoError(t, err)

	var result recordSetJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))

	assert.Equal(t, 2, result.Count)
	require.Len(t, result.Records, 2)
	assert.Equal(t, "1/2/2024", result.Records[0].ApplicationNumber)
	assert.Equal(t, "1 Example Street", result.Records[0].Address)
	assert.Equal(t, "5/9/2024", result.Records[1].ApplicationNumber)
}

func TestJSONExporter_ExportToString(t *testing.T) {
	exporter := NewJSONExporter()

	result, err := exporter.ExportToString(testRecords())
	require.NoError(t, err)

	var data recordSetJSON
	require.NoError(t, json.Unmarshal([]byte(result), &data))
	assert.Equal(t, 2, data.Count)
}

func TestJSONExporter_WithPrettyPrint(t *testing.T) {
	exporter1 := NewJSONExporter().WithPrettyPrint(false)
	result1, err := exporter1.ExportToString(testRecords())
	require.NoError(t, err)

	exporter2 := NewJSONExporter().WithPrettyPrint(true)
	result2, err := exporter2.ExportToString(testRecords())
	require.NoError(t, err)

	assert.Greater(t, len(result2), len(result1))
	assert.Contains(t, result2, "\n  ")
}

func TestJSONExporter_EmptyRecordSet(t *testing.T) {
	exporter := NewJSONExporter()

	result, err := exporter.ExportToString(nil)
	require.NoError(t, err)

	var data recordSetJSON
	require.NoError(t, json.Unmarshal([]byte(result), &data))
	assert.Equal(t, 0, data.Count)
	assert.Empty(t, data.Records)
}

func TestJSONExporter_OmitsEmptyReceivedDate(t *testing.T) {
	exporter := NewJSONExporter()

	result, err := exporter.ExportToString(testRecords())
	require.NoError(t, err)
	assert.NotContains(t, result, `"receivedDate":""`)
}

func TestJSONExporter_ContentType(t *testing.T) {
	exporter := NewJSONExporter()
	assert.Equal(t, "application/json", exporter.ContentType())
}

func TestJSONExporter_FileExtension(t *testing.T) {
	exporter := NewJSONExporter()
	assert.Equal(t, ".json", exporter.FileExtension())
}
