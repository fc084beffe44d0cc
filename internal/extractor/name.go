package extractor

import (
	"regexp"
	"strings"

	"resume-agent-go/internal/constants"
)

// NameExtractor 基于文本头部的姓名启发式提取器
// 只扫描前几行，宁可漏报也不把正文误当姓名
type NameExtractor struct {
	excludeWords []string
	digitRe      *regexp.Regexp
}

// NewNameExtractor 创建姓名提取器
// excludeWords为nil时使用内置排除词表
func NewNameExtractor(excludeWords []string) *NameExtractor {
	if excludeWords == nil {
		excludeWords = DefaultNameExcludeWords
	}
	return &NameExtractor{
		excludeWords: excludeWords,
		digitRe:      regexp.MustCompile(`\d`),
	}
}

// Extract 返回第一个符合条件的姓名候选行，没有则返回空字符串
// 候选条件：2-4个词、不含数字、总长小于50、不含排除词
func (e *NameExtractor) Extract(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > constants.NameScanMaxLines {
		lines = lines[:constants.NameScanMaxLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if e.digitRe.MatchString(line) || len(line) >= constants.NameMaxLength {
			continue
		}
		if containsAny(strings.ToLower(line), e.excludeWords) {
			continue
		}
		return line
	}

	return ""
}
