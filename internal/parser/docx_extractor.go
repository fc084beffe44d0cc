package parser

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"resume-agent-go/internal/logger"
)

// DOCX本质是zip包，正文在word/document.xml里
const docxDocumentPath = "word/document.xml"

// docxDocument word/document.xml 的最小映射
// 只关心正文的段落和表格，按本地元素名匹配以兼容不同命名空间前缀
type docxDocument struct {
	Body docxBody `xml:"body"`
}

type docxBody struct {
	Paragraphs []docxParagraph `xml:"p"`
	Tables     []docxTable     `xml:"tbl"`
}

type docxParagraph struct {
	Runs []docxRun `xml:"r"`
}

type docxRun struct {
	Texts []string `xml:"t"`
}

type docxTable struct {
	Rows []docxTableRow `xml:"tr"`
}

type docxTableRow struct {
	Cells []docxTableCell `xml:"tc"`
}

type docxTableCell struct {
	Paragraphs []docxParagraph `xml:"p"`
}

// DocxTextExtractor DOCX文本提取器
// 先拼接所有非空段落，再按行、列顺序拼接所有非空表格单元格
type DocxTextExtractor struct {
	logger zerolog.Logger
}

// DocxOption DOCX提取器的配置选项
type DocxOption func(*DocxTextExtractor)

// WithDocxLogger 配置自定义日志记录器
func WithDocxLogger(l zerolog.Logger) DocxOption {
	return func(d *DocxTextExtractor) {
		d.logger = l
	}
}

// NewDocxTextExtractor 创建DOCX文本提取器
func NewDocxTextExtractor(options ...DocxOption) *DocxTextExtractor {
	extractor := &DocxTextExtractor{
		logger: logger.Logger.With().Str("component", "docx").Logger(),
	}

	for _, option := range options {
		option(extractor)
	}

	return extractor
}

// ExtractFromFile 从DOCX文件提取文本
// 没有可提取内容的文档返回空字符串而不是错误，由上层拒绝空文本
func (d *DocxTextExtractor) ExtractFromFile(filePath string) (string, error) {
	startTime := time.Now()

	zipReader, err := zip.OpenReader(filePath)
	if err != nil {
		return "", fmt.Errorf("打开DOCX文件 %s 失败: %w", filePath, err)
	}
	defer zipReader.Close()

	var docXML []byte
	for _, file := range zipReader.File {
		if file.Name == docxDocumentPath {
			rc, err := file.Open()
			if err != nil {
				return "", fmt.Errorf("打开 %s 失败: %w", docxDocumentPath, err)
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", fmt.Errorf("读取 %s 失败: %w", docxDocumentPath, err)
			}
			break
		}
	}
	if docXML == nil {
		return "", fmt.Errorf("DOCX文件 %s 中没有 %s", filePath, docxDocumentPath)
	}

	var doc docxDocument
	if err := xml.Unmarshal(docXML, &doc); err != nil {
		return "", fmt.Errorf("解析 %s 失败: %w", docxDocumentPath, err)
	}

	var parts []string

	// 先收集所有非空段落
	for _, p := range doc.Body.Paragraphs {
		if text := paragraphText(p); strings.TrimSpace(text) != "" {
			parts = append(parts, text)
		}
	}

	// 再按行、列顺序收集所有非空表格单元格
	for _, tbl := range doc.Body.Tables {
		for _, row := range tbl.Rows {
			for _, cell := range row.Cells {
				if text := cellText(cell); strings.TrimSpace(text) != "" {
					parts = append(parts, text)
				}
			}
		}
	}

	text := strings.Join(parts, "\n")

	d.logger.Debug().
		Str("file", filePath).
		Int("chars", len(text)).
		Dur("elapsed", time.Since(startTime)).
		Msg("DOCX文本提取完成")

	return strings.TrimSpace(text), nil
}

// paragraphText 拼接一个段落内所有run的文本
func paragraphText(p docxParagraph) string {
	var sb strings.Builder
	for _, r := range p.Runs {
		for _, t := range r.Texts {
			sb.WriteString(t)
		}
	}
	return sb.String()
}

// cellText 单元格内段落用换行符连接
func cellText(c docxTableCell) string {
	texts := make([]string, 0, len(c.Paragraphs))
	for _, p := range c.Paragraphs {
		if text := paragraphText(p); text != "" {
			texts = append(texts, text)
		}
	}
	return strings.Join(texts, "\n")
}
