package parser

import "errors"

// 文本提取阶段的基础错误类型
var (
	// ErrUnsupportedFormat 文件扩展名不在支持范围内
	ErrUnsupportedFormat = errors.New("不支持的文件格式")
	// ErrExtractionFailed 该格式的所有提取策略都失败了
	ErrExtractionFailed = errors.New("文本提取失败")
)
