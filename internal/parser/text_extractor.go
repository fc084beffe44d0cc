package parser

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"resume-agent-go/internal/constants"
	"resume-agent-go/internal/logger"
	"resume-agent-go/internal/types"
)

// PDFStrategy PDF文本提取策略接口
// 回退链按顺序尝试各个策略，取第一个成功的结果
type PDFStrategy interface {
	// Name 策略名称，用于日志
	Name() string

	// ExtractFromFile 从PDF文件提取文本和元数据
	ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error)
}

// FileTextExtractor 按文件扩展名路由的文本提取器
// PDF走策略回退链，DOCX/DOC走段落+表格提取
type FileTextExtractor struct {
	pdfStrategies []PDFStrategy
	docx          *DocxTextExtractor
	logger        zerolog.Logger
}

// TextExtractorOption 文本提取器的配置选项
type TextExtractorOption func(*FileTextExtractor)

// WithPDFStrategies 替换PDF提取策略链（按尝试顺序）
func WithPDFStrategies(strategies ...PDFStrategy) TextExtractorOption {
	return func(e *FileTextExtractor) {
		e.pdfStrategies = strategies
	}
}

// WithDocxExtractor 替换DOCX提取器
func WithDocxExtractor(docx *DocxTextExtractor) TextExtractorOption {
	return func(e *FileTextExtractor) {
		e.docx = docx
	}
}

// WithTextExtractorLogger 配置自定义日志记录器
func WithTextExtractorLogger(l zerolog.Logger) TextExtractorOption {
	return func(e *FileTextExtractor) {
		e.logger = l
	}
}

// NewFileTextExtractor 创建默认的文本提取器
// 默认PDF链为 eino（版面感知）→ raw（原始流）
func NewFileTextExtractor(ctx context.Context, options ...TextExtractorOption) (*FileTextExtractor, error) {
	extractor := &FileTextExtractor{
		docx:   NewDocxTextExtractor(),
		logger: logger.Logger.With().Str("component", "text_extractor").Logger(),
	}

	for _, option := range options {
		option(extractor)
	}

	// 没有注入策略时构建默认回退链
	if extractor.pdfStrategies == nil {
		eino, err := NewEinoPDFStrategy(ctx)
		if err != nil {
			return nil, fmt.Errorf("构建默认PDF策略链失败: %w", err)
		}
		extractor.pdfStrategies = []PDFStrategy{eino, NewRawPDFStrategy()}
	}

	return extractor, nil
}

// ExtractFromFile 提取文件文本并返回识别出的格式
// 不支持的扩展名返回ErrUnsupportedFormat；所有策略失败返回ErrExtractionFailed
func (e *FileTextExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, types.SourceFormat, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case constants.ExtPDF:
		text, err := e.extractPDF(ctx, filePath)
		return text, types.FormatPDF, err
	case constants.ExtDOCX, constants.ExtDOC:
		text, err := e.extractDocx(filePath)
		return text, types.FormatDOCX, err
	default:
		return "", "", fmt.Errorf("%w: %s (支持的格式: %s)",
			ErrUnsupportedFormat, ext, strings.Join(constants.SupportedExtensions, ", "))
	}
}

// extractPDF 按顺序尝试PDF策略链，取第一个成功的结果
// 前置策略失败只记警告，不是错误路径；全部失败才返回ErrExtractionFailed
func (e *FileTextExtractor) extractPDF(ctx context.Context, filePath string) (string, error) {
	var lastErr error
	for _, strategy := range e.pdfStrategies {
		text, _, err := runPDFStrategy(ctx, strategy, filePath)
		if err == nil {
			return text, nil
		}
		lastErr = err
		e.logger.Warn().
			Err(err).
			Str("strategy", strategy.Name()).
			Str("file", filePath).
			Msg("PDF提取策略失败，尝试下一个策略")
	}
	return "", fmt.Errorf("%w: %s: %v", ErrExtractionFailed, filePath, lastErr)
}

// runPDFStrategy 运行单个策略并把panic转换为错误
// 底层PDF库对畸形文件可能panic，回退链需要把它当作一次普通失败
func runPDFStrategy(ctx context.Context, strategy PDFStrategy, filePath string) (text string, metadata map[string]interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("策略 %s 处理 %s 时panic: %v", strategy.Name(), filePath, r)
		}
	}()
	return strategy.ExtractFromFile(ctx, filePath)
}

// extractDocx DOCX路径没有回退链，提取失败直接归为ErrExtractionFailed
// 内容为空的合法文档返回空字符串，由调用方拒绝
func (e *FileTextExtractor) extractDocx(filePath string) (string, error) {
	text, err := e.docx.ExtractFromFile(filePath)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrExtractionFailed, filePath, err)
	}
	return text, nil
}
