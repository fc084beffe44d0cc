package parser

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-agent-go/internal/types"
)

// fakePDFStrategy 可编程的PDF策略，用于测试回退链
type fakePDFStrategy struct {
	name     string
	text     string
	err      error
	panicMsg string
	calls    int
}

func (f *fakePDFStrategy) Name() string { return f.name }

func (f *fakePDFStrategy) ExtractFromFile(_ context.Context, _ string) (string, map[string]interface{}, error) {
	f.calls++
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	return f.text, nil, f.err
}

func newTestExtractor(t *testing.T, strategies ...PDFStrategy) *FileTextExtractor {
	t.Helper()
	extractor, err := NewFileTextExtractor(context.Background(), WithPDFStrategies(strategies...))
	require.NoError(t, err, "创建文本提取器不应失败")
	return extractor
}

// TestExtractPDFFirstStrategyWins 验证首个策略成功时后续策略不被调用
func TestExtractPDFFirstStrategyWins(t *testing.T) {
	primary := &fakePDFStrategy{name: "primary", text: "primary text"}
	fallback := &fakePDFStrategy{name: "fallback", text: "fallback text"}

	extractor := newTestExtractor(t, primary, fallback)
	text, format, err := extractor.ExtractFromFile(context.Background(), "resume.pdf")

	require.NoError(t, err)
	assert.Equal(t, "primary text", text)
	assert.Equal(t, types.FormatPDF, format)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, fallback.calls, "首个策略成功后不应再调用后续策略")
}

// TestExtractPDFFallsBackOnError 验证前置策略失败时回退到下一个策略
func TestExtractPDFFallsBackOnError(t *testing.T) {
	primary := &fakePDFStrategy{name: "primary", err: errors.New("layout parse failed")}
	fallback := &fakePDFStrategy{name: "fallback", text: "fallback text"}

	extractor := newTestExtractor(t, primary, fallback)
	text, _, err := extractor.ExtractFromFile(context.Background(), "resume.pdf")

	require.NoError(t, err, "回退策略成功时整体不应失败")
	assert.Equal(t, "fallback text", text)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
}

// TestExtractPDFRecoverFromPanic 验证策略panic被转换为普通失败并触发回退
func TestExtractPDFRecoverFromPanic(t *testing.T) {
	primary := &fakePDFStrategy{name: "primary", panicMsg: "malformed xref table"}
	fallback := &fakePDFStrategy{name: "fallback", text: "fallback text"}

	extractor := newTestExtractor(t, primary, fallback)
	text, _, err := extractor.ExtractFromFile(context.Background(), "resume.pdf")

	require.NoError(t, err, "策略panic应被当作一次普通失败")
	assert.Equal(t, "fallback text", text)
	assert.Equal(t, 1, fallback.calls)
}

// TestExtractPDFAllStrategiesFail 验证全部策略失败时返回ErrExtractionFailed
func TestExtractPDFAllStrategiesFail(t *testing.T) {
	primary := &fakePDFStrategy{name: "primary", err: errors.New("first failure")}
	fallback := &fakePDFStrategy{name: "fallback", err: errors.New("second failure")}

	extractor := newTestExtractor(t, primary, fallback)
	_, _, err := extractor.ExtractFromFile(context.Background(), "resume.pdf")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtractionFailed, "全部策略失败时应返回ErrExtractionFailed")
	assert.Contains(t, err.Error(), "second failure", "错误信息应包含最后一个策略的失败原因")
}

// TestExtractFromFileUnsupportedExtension 验证不支持的扩展名返回ErrUnsupportedFormat
func TestExtractFromFileUnsupportedExtension(t *testing.T) {
	extractor := newTestExtractor(t, &fakePDFStrategy{name: "primary"})

	_, _, err := extractor.ExtractFromFile(context.Background(), "resume.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), ".pdf", "错误信息应列出支持的格式")
}

// TestExtractFromFileExtensionCaseInsensitive 验证扩展名匹配不区分大小写
func TestExtractFromFileExtensionCaseInsensitive(t *testing.T) {
	primary := &fakePDFStrategy{name: "primary", text: "some text"}
	extractor := newTestExtractor(t, primary)

	text, format, err := extractor.ExtractFromFile(context.Background(), "RESUME.PDF")
	require.NoError(t, err)
	assert.Equal(t, "some text", text)
	assert.Equal(t, types.FormatPDF, format)
}

// TestExtractFromFileDocxRouting 验证docx扩展名走DOCX提取路径
func TestExtractFromFileDocxRouting(t *testing.T) {
	documentXML := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body><w:p><w:r><w:t>docx content</w:t></w:r></w:p></w:body>
</w:document>`
	path := writeDocxFile(t, documentXML)

	extractor := newTestExtractor(t, &fakePDFStrategy{name: "primary"})
	text, format, err := extractor.ExtractFromFile(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "docx content", text)
	assert.Equal(t, types.FormatDOCX, format)
}

// TestExtractFromFileDocxFailureWrapped 验证DOCX提取失败被归为ErrExtractionFailed
func TestExtractFromFileDocxFailureWrapped(t *testing.T) {
	extractor := newTestExtractor(t, &fakePDFStrategy{name: "primary"})

	_, _, err := extractor.ExtractFromFile(context.Background(), "/nonexistent/file.docx")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtractionFailed)
}
