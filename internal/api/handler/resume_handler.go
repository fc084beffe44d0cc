package handler

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"resume-agent-go/internal/config"
	"resume-agent-go/internal/constants"
	"resume-agent-go/internal/logger"
	"resume-agent-go/internal/processor"
	"resume-agent-go/internal/types"
)

// ResumeHandler 简历解析请求处理器
// 负责把上传内容落盘成临时文件，再交给核心的单一入口解析
type ResumeHandler struct {
	cfg    *config.Config
	parser *processor.ResumeParser
}

// NewResumeHandler 创建简历解析请求处理器
func NewResumeHandler(cfg *config.Config, parser *processor.ResumeParser) *ResumeHandler {
	return &ResumeHandler{
		cfg:    cfg,
		parser: parser,
	}
}

// HandleResumeParse 处理一次上传并解析请求
// 上传内容写入以UUIDv7命名的临时文件，解析结束后删除
func (h *ResumeHandler) HandleResumeParse(ctx context.Context, reader io.Reader, fileSize int64, filename string) (*types.ResumeProfile, error) {
	maxSize := int64(h.cfg.Parser.MaxUploadSizeMB) * 1024 * 1024
	if fileSize > maxSize {
		return nil, fmt.Errorf("上传文件过大: %d 字节 (上限 %d MB)", fileSize, h.cfg.Parser.MaxUploadSizeMB)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = constants.ExtPDF // 没有扩展名时按PDF处理
	}

	uuidV7, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("生成UUIDv7失败: %w", err)
	}

	tempDir := h.cfg.Parser.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	tempPath := filepath.Join(tempDir, uuidV7.String()+ext)

	out, err := os.Create(tempPath)
	if err != nil {
		return nil, fmt.Errorf("创建临时文件失败: %w", err)
	}
	written, err := io.Copy(out, reader)
	closeErr := out.Close()
	defer os.Remove(tempPath)
	if err != nil {
		return nil, fmt.Errorf("写入临时文件失败: %w", err)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("关闭临时文件失败: %w", closeErr)
	}

	logger.Info().
		Str("upload_id", uuidV7.String()).
		Str("filename", filename).
		Int64("bytes", written).
		Msg("上传文件已落盘，开始解析")

	parseCtx, cancel := context.WithTimeout(ctx,
		time.Duration(h.cfg.Parser.ExtractTimeoutSeconds)*time.Second)
	defer cancel()

	return h.parser.Parse(parseCtx, tempPath)
}
