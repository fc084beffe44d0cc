package handler

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-agent-go/internal/config"
	"resume-agent-go/internal/processor"
	"resume-agent-go/internal/types"
)

// buildDocxBytes 在内存中生成一个最小的DOCX文件
func buildDocxBytes(t *testing.T, lines []string) []byte {
	t.Helper()

	body := ""
	for _, line := range lines {
		body += fmt.Sprintf("<w:p><w:r><w:t>%s</w:t></w:r></w:p>", line)
	}
	documentXML := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>%s</w:body>
</w:document>`, body)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func newTestHandler(t *testing.T) (*ResumeHandler, *config.Config) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Parser.MaxUploadSizeMB = 1
	cfg.Parser.ExtractTimeoutSeconds = 10
	cfg.Parser.TempDir = t.TempDir()

	resumeParser, err := processor.NewResumeParser(context.Background())
	require.NoError(t, err, "创建简历解析器不应失败")

	return NewResumeHandler(cfg, resumeParser), cfg
}

// TestHandleResumeParseDocxUpload 验证上传DOCX后能返回解析档案并清理临时文件
func TestHandleResumeParseDocxUpload(t *testing.T) {
	h, cfg := newTestHandler(t)

	docx := buildDocxBytes(t, []string{
		"Jane Doe",
		"jane.doe@example.com",
	})

	profile, err := h.HandleResumeParse(context.Background(),
		bytes.NewReader(docx), int64(len(docx)), "resume.docx")
	require.NoError(t, err, "上传合法DOCX不应失败")
	require.NotNil(t, profile)

	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, "jane.doe@example.com", profile.Email)
	assert.Equal(t, types.FormatDOCX, profile.SourceFormat)

	// 临时文件应在解析结束后被删除
	entries, err := os.ReadDir(cfg.Parser.TempDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "临时目录中不应有残留文件")
}

// TestHandleResumeParseRejectsOversizedUpload 验证超过大小上限的上传被拒绝
func TestHandleResumeParseRejectsOversizedUpload(t *testing.T) {
	h, _ := newTestHandler(t)

	oversized := int64(2 * 1024 * 1024) // 上限为1MB
	_, err := h.HandleResumeParse(context.Background(),
		strings.NewReader("ignored"), oversized, "big.pdf")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "上传文件过大")
}

// TestHandleResumeParseUnsupportedExtension 验证不支持的扩展名经由核心校验被拒绝
func TestHandleResumeParseUnsupportedExtension(t *testing.T) {
	h, _ := newTestHandler(t)

	content := []byte("plain text")
	_, err := h.HandleResumeParse(context.Background(),
		bytes.NewReader(content), int64(len(content)), "resume.txt")

	require.Error(t, err)
	assert.ErrorIs(t, err, processor.ErrUnsupportedFormat)
}
