package exporter

import (
	"encoding/json"
	"fmt"
	"os"

	"resume-agent-go/internal/types"
)

// SaveJSON 将解析档案写成缩进的UTF-8 JSON文件
func SaveJSON(profile *types.ResumeProfile, outputPath string) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化简历档案失败: %w", err)
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("写入JSON文件 %s 失败: %w", outputPath, err)
	}
	return nil
}

// LoadJSON 从JSON文件读回解析档案
// 保证列表字段读回后仍是空切片而不是nil
func LoadJSON(inputPath string) (*types.ResumeProfile, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("读取JSON文件 %s 失败: %w", inputPath, err)
	}

	profile := types.NewResumeProfile("", "")
	if err := json.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("解析JSON文件 %s 失败: %w", inputPath, err)
	}
	return profile, nil
}
