package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"resume-agent-go/internal/constants"
	"resume-agent-go/internal/extractor"
	"resume-agent-go/internal/logger"
	"resume-agent-go/internal/parser"
	"resume-agent-go/internal/types"
)

// ResumeParser 简历解析流水线
// 一次Parse = 校验 → 文本提取 → 各字段提取器独立运行 → 组装档案
// 无跨调用状态，单个实例可并发使用
type ResumeParser struct {
	textExtractor TextExtractor
	contact       ContactExtractor
	name          NameExtractor
	skills        SkillsExtractor
	education     EducationScanner
	experience    ExperienceScanner
	logger        zerolog.Logger
}

// NewResumeParser 创建简历解析器
// 未被选项覆盖的组件使用默认实现（内置词表、eino→raw的PDF回退链）
func NewResumeParser(ctx context.Context, options ...Option) (*ResumeParser, error) {
	p := &ResumeParser{
		contact:    extractor.NewContactExtractor(),
		name:       extractor.NewNameExtractor(nil),
		skills:     extractor.NewSkillsExtractor(nil),
		education:  extractor.NewEducationScanner(nil),
		experience: extractor.NewExperienceScanner(),
		logger:     logger.Logger.With().Str("component", "resume_parser").Logger(),
	}

	for _, option := range options {
		option(p)
	}

	if p.textExtractor == nil {
		textExtractor, err := parser.NewFileTextExtractor(ctx)
		if err != nil {
			return nil, fmt.Errorf("构建默认文本提取器失败: %w", err)
		}
		p.textExtractor = textExtractor
	}

	return p, nil
}

// Parse 解析一个简历文件，返回结构化档案
// 只有输入校验和文本获取会失败；字段提取器未命中即空值，不产生错误
func (p *ResumeParser) Parse(ctx context.Context, filePath string) (*types.ResumeProfile, error) {
	startTime := time.Now()

	// 1. 校验文件存在
	if _, err := os.Stat(filePath); err != nil {
		return nil, NewFileNotFoundError(filePath)
	}

	// 2. 校验扩展名
	ext := strings.ToLower(filepath.Ext(filePath))
	if !isSupportedExtension(ext) {
		return nil, NewUnsupportedFormatError(filePath,
			fmt.Sprintf("%s 不在支持范围内 (支持: %s)", ext, strings.Join(constants.SupportedExtensions, ", ")))
	}

	p.logger.Info().Str("file", filePath).Str("ext", ext).Msg("开始解析简历")

	// 3. 提取文本
	text, format, err := p.textExtractor.ExtractFromFile(ctx, filePath)
	if err != nil {
		return nil, NewExtractionError(filePath, err)
	}

	// 4. 拒绝空文本：可解析但为空与提取失败是两种不同的错误
	if strings.TrimSpace(text) == "" {
		return nil, NewEmptyDocumentError(filePath)
	}

	// 5. 各字段提取器相互独立，按同一份不可变文本运行
	profile := types.NewResumeProfile(text, format)
	profile.Name = p.name.Extract(text)
	profile.ApplyContact(p.contact.Extract(text))
	profile.Skills = p.skills.Extract(text)
	profile.Education = p.education.Scan(text)
	profile.Experience = p.experience.Scan(text)

	p.logger.Info().
		Str("file", filePath).
		Str("format", string(format)).
		Int("chars", len(text)).
		Int("skills", len(profile.Skills)).
		Int("education", len(profile.Education)).
		Int("experience", len(profile.Experience)).
		Dur("elapsed", time.Since(startTime)).
		Msg("简历解析完成")

	return profile, nil
}

// isSupportedExtension 判断扩展名是否在支持范围内
func isSupportedExtension(ext string) bool {
	for _, supported := range constants.SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}
