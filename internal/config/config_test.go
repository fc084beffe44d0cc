package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfigFromFile 验证能否从 YAML 文件正确加载配置
func TestLoadConfigFromFile(t *testing.T) {
	yamlContent := `
server:
  address: ":9090"
parser:
  extract_timeout_seconds: 15
  max_upload_size_mb: 5
  temp_dir: "/tmp/resume-uploads"
vocab:
  skills:
    - "go"
    - "rust"
  degree_keywords:
    - "bachelor"
logger:
  level: "debug"
  format: "pretty"
`
	tmpDir, err := os.MkdirTemp("", "config-test")
	require.NoError(t, err, "无法创建临时目录")
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	err = os.WriteFile(configPath, []byte(yamlContent), 0644)
	require.NoError(t, err, "无法写入临时配置文件")

	config, err := LoadConfig(configPath)
	require.NoError(t, err, "加载合法的配置文件不应返回错误")
	require.NotNil(t, config, "配置对象不应为 nil")

	assert.Equal(t, ":9090", config.Server.Address, "Server.Address 的值与预期不符")
	assert.Equal(t, 15, config.Parser.ExtractTimeoutSeconds, "ExtractTimeoutSeconds 的值与预期不符")
	assert.Equal(t, 5, config.Parser.MaxUploadSizeMB, "MaxUploadSizeMB 的值与预期不符")
	assert.Equal(t, "/tmp/resume-uploads", config.Parser.TempDir, "TempDir 的值与预期不符")
	assert.Equal(t, []string{"go", "rust"}, config.Vocab.Skills, "Vocab.Skills 的值与预期不符")
	assert.Equal(t, []string{"bachelor"}, config.Vocab.DegreeKeywords, "Vocab.DegreeKeywords 的值与预期不符")
	assert.Equal(t, "debug", config.Logger.Level, "Logger.Level 的值与预期不符")
	assert.Equal(t, "pretty", config.Logger.Format, "Logger.Format 的值与预期不符")
}

// TestLoadConfigAppliesDefaults 验证缺省字段会被填充默认值
func TestLoadConfigAppliesDefaults(t *testing.T) {
	yamlContent := `
server:
  address: ""
`
	tmpDir, err := os.MkdirTemp("", "config-test-defaults")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	err = os.WriteFile(configPath, []byte(yamlContent), 0644)
	require.NoError(t, err)

	config, err := LoadConfig(configPath)
	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, ":8080", config.Server.Address, "缺省时应使用默认监听地址")
	assert.Equal(t, 30, config.Parser.ExtractTimeoutSeconds, "缺省时应使用默认提取超时")
	assert.Equal(t, 10, config.Parser.MaxUploadSizeMB, "缺省时应使用默认上传大小限制")
	assert.Equal(t, "info", config.Logger.Level, "缺省时日志级别应为 info")
	assert.Equal(t, "json", config.Logger.Format, "缺省时日志格式应为 json")
	assert.Empty(t, config.Vocab.Skills, "未配置词表时应为空，由抽取器使用内置默认词表")
}

// TestLoadConfigFileNotFound 验证指定的配置文件不存在时返回错误
func TestLoadConfigFileNotFound(t *testing.T) {
	config, err := LoadConfig("/nonexistent/path/config.yaml")
	require.Error(t, err, "配置文件不存在时应返回错误")
	assert.Nil(t, config, "加载失败时配置对象应为 nil")
}
