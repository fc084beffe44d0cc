package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"resume-agent-go/internal/types"
)

// csvHeader CSV输出的列顺序
// 列表字段被压扁：技能合并为一个字符串，教育/工作经历只保留条数
var csvHeader = []string{
	"name", "email", "phone", "linkedin", "github", "portfolio",
	"skills", "education_count", "experience_count", "source_format",
}

// SaveCSV 将解析档案写成单行的CSV文件
func SaveCSV(profile *types.ResumeProfile, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("创建CSV文件 %s 失败: %w", outputPath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("写入CSV表头失败: %w", err)
	}
	if err := writer.Write(flattenProfile(profile)); err != nil {
		return fmt.Errorf("写入CSV数据行失败: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("刷新CSV文件 %s 失败: %w", outputPath, err)
	}
	return nil
}

// flattenProfile 把档案压扁为一行CSV记录，列序与csvHeader一致
func flattenProfile(profile *types.ResumeProfile) []string {
	return []string{
		profile.Name,
		profile.Email,
		profile.Phone,
		profile.LinkedIn,
		profile.GitHub,
		profile.Portfolio,
		strings.Join(profile.Skills, ", "),
		strconv.Itoa(len(profile.Education)),
		strconv.Itoa(len(profile.Experience)),
		string(profile.SourceFormat),
	}
}
