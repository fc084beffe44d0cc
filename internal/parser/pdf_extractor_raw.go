package parser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"

	"resume-agent-go/internal/logger"
)

// RawPDFStrategy 基于原始内容流的简单PDF提取策略
// 不做版面分析，作为EinoPDFStrategy失败后的回退
type RawPDFStrategy struct {
	logger zerolog.Logger
}

// RawPDFOption 原始流提取策略的配置选项
type RawPDFOption func(*RawPDFStrategy)

// WithRawLogger 配置自定义日志记录器
func WithRawLogger(l zerolog.Logger) RawPDFOption {
	return func(r *RawPDFStrategy) {
		r.logger = l
	}
}

// 确保RawPDFStrategy实现了PDFStrategy接口
var _ PDFStrategy = (*RawPDFStrategy)(nil)

// NewRawPDFStrategy 创建原始流PDF提取策略
func NewRawPDFStrategy(options ...RawPDFOption) *RawPDFStrategy {
	strategy := &RawPDFStrategy{
		logger: logger.Logger.With().Str("component", "raw_pdf").Logger(),
	}

	for _, option := range options {
		option(strategy)
	}

	return strategy
}

// Name 返回策略名称
func (r *RawPDFStrategy) Name() string {
	return "raw"
}

// ExtractFromFile 从PDF文件逐页提取纯文本
// 空页被跳过，非空页文本用换行符拼接
func (r *RawPDFStrategy) ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error) {
	startTime := time.Now()

	file, reader, err := pdf.Open(filePath)
	if err != nil {
		return "", nil, fmt.Errorf("打开PDF文件 %s 失败: %w", filePath, err)
	}
	defer file.Close()

	numPages := reader.NumPage()
	pageTexts := make([]string, 0, numPages)

	for i := 1; i <= numPages; i++ {
		// 提取是同步的，仅在页间检查取消
		select {
		case <-ctx.Done():
			return "", nil, ctx.Err()
		default:
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", nil, fmt.Errorf("提取PDF第%d页文本失败: %w", i, err)
		}
		if strings.TrimSpace(text) != "" {
			pageTexts = append(pageTexts, text)
		}
	}

	text := strings.Join(pageTexts, "\n")
	duration := time.Since(startTime)

	metadata := map[string]interface{}{
		"strategy":               r.Name(),
		"source_file_path":       filePath,
		"page_count":             numPages,
		"text_length":            len(text),
		"processing_duration_ms": duration.Milliseconds(),
	}

	r.logger.Debug().
		Str("file", filePath).
		Int("pages", numPages).
		Int("chars", len(text)).
		Dur("elapsed", duration).
		Msg("raw策略提取PDF完成")

	return text, metadata, nil
}
