package utils

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	var buf bytes.Buffer

	plain := InitLogger(LoggerConfig{Output: &buf})
	assert.Equal(t, "[Learning Catalog] ", plain.Prefix())
	assert.False(t, ColorsEnabled(plain))

	colored := InitLogger(LoggerConfig{Output: &buf, EnableColors: true})
	assert.True(t, ColorsEnabled(colored))

	jsonLogger := InitLogger(LoggerConfig{Output: &buf, Format: "json", EnableColors: true})
	assert.False(t, ColorsEnabled(jsonLogger))
}

func TestJSONLoggerWritesOneObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LoggerConfig{Output: &buf, Format: "json"})

	logger.Printf("GET %s %d", "/api/courses", 200)
	logger.Print(`quoted "value"`)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	var first map[string]string
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "GET /api/courses 200", first["msg"])
	assert.Equal(t, "Learning Catalog", first["app"])
	assert.NotEmpty(t, first["time"])

	var second map[string]string
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, `quoted "value"`, second["msg"])
}
