package processor

import (
	"context"

	"resume-agent-go/internal/types"
)

//
// 文本提取相关接口
//

// TextExtractor 文件文本提取器接口
// 由parser.FileTextExtractor实现，测试可注入替身
type TextExtractor interface {
	// ExtractFromFile 提取文件文本并返回识别出的格式
	ExtractFromFile(ctx context.Context, filePath string) (string, types.SourceFormat, error)
}

//
// 字段提取相关接口
// 子提取器都是纯函数：对同一文本永远不失败，未命中即空值
//

// ContactExtractor 联系方式提取器接口
type ContactExtractor interface {
	Extract(text string) types.ContactInfo
}

// NameExtractor 姓名提取器接口
type NameExtractor interface {
	Extract(text string) string
}

// SkillsExtractor 技能提取器接口
type SkillsExtractor interface {
	Extract(text string) []string
}

// EducationScanner 教育章节扫描器接口
type EducationScanner interface {
	Scan(text string) []types.EducationEntry
}

// ExperienceScanner 工作经历章节扫描器接口
type ExperienceScanner interface {
	Scan(text string) []types.ExperienceEntry
}
