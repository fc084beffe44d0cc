package processor

import (
	"context"
	"fmt"

	"resume-agent-go/internal/config"
	"resume-agent-go/internal/extractor"
)

// BuildResumeParser 根据配置统一构建简历解析器
// 配置里的词表覆盖项为空时落到内置默认词表
func BuildResumeParser(ctx context.Context, cfg *config.Config) (*ResumeParser, error) {
	var options []Option

	if len(cfg.Vocab.Skills) > 0 {
		options = append(options, WithSkillsExtractor(extractor.NewSkillsExtractor(cfg.Vocab.Skills)))
	}
	if len(cfg.Vocab.DegreeKeywords) > 0 {
		options = append(options, WithEducationScanner(extractor.NewEducationScanner(cfg.Vocab.DegreeKeywords)))
	}
	if len(cfg.Vocab.NameExcludeWords) > 0 {
		options = append(options, WithNameExtractor(extractor.NewNameExtractor(cfg.Vocab.NameExcludeWords)))
	}

	p, err := NewResumeParser(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("构建简历解析器失败: %w", err)
	}
	return p, nil
}
