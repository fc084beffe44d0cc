package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"resume-agent-go/internal/constants"
)

// ServerConfig 定义服务器配置
type ServerConfig struct {
	Address string `yaml:"address"` // 例如 ":8080" or "0.0.0.0:8080"
}

// ParserConfig 解析流程相关配置
type ParserConfig struct {
	// ExtractTimeoutSeconds 单次文本提取的超时(秒)
	ExtractTimeoutSeconds int `yaml:"extract_timeout_seconds"`
	// MaxUploadSizeMB 上传文件大小上限(MB)
	MaxUploadSizeMB int `yaml:"max_upload_size_mb"`
	// TempDir 上传文件落盘目录，为空时使用系统临时目录
	TempDir string `yaml:"temp_dir"`
}

// VocabConfig 抽取器词表配置
// 为空的字段使用内置默认词表；测试可以注入小词表
type VocabConfig struct {
	Skills           []string `yaml:"skills"`             // 技能关键词
	DegreeKeywords   []string `yaml:"degree_keywords"`    // 学位关键词
	NameExcludeWords []string `yaml:"name_exclude_words"` // 姓名行排除词
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level        string `yaml:"level"`         // debug, info, warn, error
	Format       string `yaml:"format"`        // json, pretty
	TimeFormat   string `yaml:"time_format"`   // 时间格式
	ReportCaller bool   `yaml:"report_caller"` // 是否报告调用位置
}

// Config 应用程序配置
type Config struct {
	Server ServerConfig `yaml:"server"`
	Parser ParserConfig `yaml:"parser"`
	Vocab  VocabConfig  `yaml:"vocab"`
	Logger LoggerConfig `yaml:"logger"`
}

// LoadConfig 从文件加载配置
// configPath为空时在常见位置查找；找不到配置文件则返回默认配置
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		searchPaths := []string{
			"config.yaml",
			"./config.yaml",
			"../config.yaml",
			filepath.Join(os.Getenv("HOME"), ".resume-agent", "config.yaml"),
		}

		execPath, err := os.Executable()
		if err == nil {
			execDir := filepath.Dir(execPath)
			searchPaths = append(searchPaths, filepath.Join(execDir, "config.yaml"))
		}

		for _, path := range searchPaths {
			if _, err := os.Stat(path); err == nil {
				configPath = path
				break
			}
		}

		// 没有配置文件时直接使用默认值
		if configPath == "" {
			cfg := &Config{}
			cfg.applyDefaults()
			return cfg, nil
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件 %s 失败: %w", configPath, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件 %s 失败: %w", configPath, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults 为未设置的字段填充默认值
func (c *Config) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = ":8080"
	}
	if c.Parser.ExtractTimeoutSeconds <= 0 {
		c.Parser.ExtractTimeoutSeconds = constants.DefaultExtractTimeoutSeconds
	}
	if c.Parser.MaxUploadSizeMB <= 0 {
		c.Parser.MaxUploadSizeMB = constants.DefaultMaxUploadSizeMB
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Format == "" {
		c.Logger.Format = "json"
	}
}
