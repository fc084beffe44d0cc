package parser

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"
	"github.com/rs/zerolog"

	"resume-agent-go/internal/logger"
)

// EinoPDFStrategy 使用 Eino PDF Parser 的版面感知提取策略
// 作为PDF回退链中的首选策略
type EinoPDFStrategy struct {
	parser *pdf.PDFParser
	logger zerolog.Logger
}

// EinoPDFOption PDF提取策略的配置选项
type EinoPDFOption func(*EinoPDFStrategy)

// WithEinoLogger 配置自定义日志记录器
func WithEinoLogger(l zerolog.Logger) EinoPDFOption {
	return func(e *EinoPDFStrategy) {
		e.logger = l
	}
}

// 确保EinoPDFStrategy实现了PDFStrategy接口
var _ PDFStrategy = (*EinoPDFStrategy)(nil)

// NewEinoPDFStrategy 初始化 Eino PDF 提取策略
// 配置为按页分割，便于逐页拼接非空文本
func NewEinoPDFStrategy(ctx context.Context, options ...EinoPDFOption) (*EinoPDFStrategy, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{
		ToPages: true, // 逐页提取，空页会被丢弃
	})
	if err != nil {
		return nil, fmt.Errorf("创建Eino PDF解析器失败: %w", err)
	}

	strategy := &EinoPDFStrategy{
		parser: p,
		logger: logger.Logger.With().Str("component", "eino_pdf").Logger(),
	}

	for _, option := range options {
		option(strategy)
	}

	return strategy, nil
}

// Name 返回策略名称
func (e *EinoPDFStrategy) Name() string {
	return "eino"
}

// ExtractFromFile 从PDF文件提取文本和元数据
// 逐页提取后用换行符拼接非空页文本
func (e *EinoPDFStrategy) ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error) {
	startTime := time.Now()

	file, err := os.Open(filePath)
	if err != nil {
		return "", nil, fmt.Errorf("打开PDF文件 %s 失败: %w", filePath, err)
	}
	defer file.Close()

	docs, err := e.parser.Parse(ctx, file,
		einoParser.WithURI(filePath),
	)
	if err != nil {
		return "", nil, fmt.Errorf("eino解析PDF %s 失败: %w", filePath, err)
	}
	if len(docs) == 0 {
		return "", nil, fmt.Errorf("eino解析PDF %s 无结果", filePath)
	}

	// 拼接非空页文本
	pageTexts := make([]string, 0, len(docs))
	for _, doc := range docs {
		if strings.TrimSpace(doc.Content) != "" {
			pageTexts = append(pageTexts, doc.Content)
		}
	}
	text := strings.Join(pageTexts, "\n")

	duration := time.Since(startTime)
	metadata := map[string]interface{}{
		"strategy":               e.Name(),
		"source_file_path":       filePath,
		"page_count":             len(docs),
		"text_length":            len(text),
		"processing_duration_ms": duration.Milliseconds(),
	}

	e.logger.Debug().
		Str("file", filePath).
		Int("pages", len(docs)).
		Int("chars", len(text)).
		Dur("elapsed", duration).
		Msg("eino策略提取PDF完成")

	return text, metadata, nil
}
