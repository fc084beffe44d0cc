package processor

import (
	"github.com/rs/zerolog"
)

// Option ResumeParser 的配置选项
type Option func(*ResumeParser)

// WithTextExtractor 替换文本提取器组件
func WithTextExtractor(extractor TextExtractor) Option {
	return func(p *ResumeParser) {
		p.textExtractor = extractor
	}
}

// WithContactExtractor 替换联系方式提取器组件
func WithContactExtractor(extractor ContactExtractor) Option {
	return func(p *ResumeParser) {
		p.contact = extractor
	}
}

// WithNameExtractor 替换姓名提取器组件
func WithNameExtractor(extractor NameExtractor) Option {
	return func(p *ResumeParser) {
		p.name = extractor
	}
}

// WithSkillsExtractor 替换技能提取器组件
func WithSkillsExtractor(extractor SkillsExtractor) Option {
	return func(p *ResumeParser) {
		p.skills = extractor
	}
}

// WithEducationScanner 替换教育章节扫描器组件
func WithEducationScanner(scanner EducationScanner) Option {
	return func(p *ResumeParser) {
		p.education = scanner
	}
}

// WithExperienceScanner 替换工作经历章节扫描器组件
func WithExperienceScanner(scanner ExperienceScanner) Option {
	return func(p *ResumeParser) {
		p.experience = scanner
	}
}

// WithParserLogger 配置自定义日志记录器
func WithParserLogger(l zerolog.Logger) Option {
	return func(p *ResumeParser) {
		p.logger = l
	}
}
