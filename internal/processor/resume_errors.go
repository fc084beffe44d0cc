package processor

import (
	"errors"
	"fmt"

	"resume-agent-go/internal/parser"
)

// 解析流程的基础错误类型
// 提取阶段的 ErrUnsupportedFormat / ErrExtractionFailed 定义在parser包
var (
	// ErrFileNotFound 简历文件不存在
	ErrFileNotFound = errors.New("简历文件不存在")
	// ErrEmptyDocument 提取成功但没有任何文本（可解析但为空或纯图片文档）
	ErrEmptyDocument = errors.New("文档中没有可提取的文本")
)

// 方便调用方统一从processor包判断错误
var (
	ErrUnsupportedFormat = parser.ErrUnsupportedFormat
	ErrExtractionFailed  = parser.ErrExtractionFailed
)

// ParseError 包含详细上下文的解析错误
type ParseError struct {
	Path    string
	Op      string
	BaseErr error
	Detail  string
}

func (e *ParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s, 文件:%s): %s", e.BaseErr, e.Op, e.Path, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s, 文件:%s)", e.BaseErr, e.Op, e.Path)
}

func (e *ParseError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *ParseError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// 错误构造函数
func NewFileNotFoundError(path string) error {
	return &ParseError{
		Path:    path,
		Op:      "validate",
		BaseErr: ErrFileNotFound,
	}
}

func NewUnsupportedFormatError(path, detail string) error {
	return &ParseError{
		Path:    path,
		Op:      "validate",
		BaseErr: parser.ErrUnsupportedFormat,
		Detail:  detail,
	}
}

func NewExtractionError(path string, cause error) error {
	return &ParseError{
		Path:    path,
		Op:      "extract",
		BaseErr: parser.ErrExtractionFailed,
		Detail:  cause.Error(),
	}
}

func NewEmptyDocumentError(path string) error {
	return &ParseError{
		Path:    path,
		Op:      "extract",
		BaseErr: ErrEmptyDocument,
	}
}
