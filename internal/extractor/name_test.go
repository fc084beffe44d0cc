package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNameExtractorFirstLine 验证首行符合条件时直接作为姓名
func TestNameExtractorFirstLine(t *testing.T) {
	text := `Jane Doe
Software Engineer
jane.doe@example.com`

	extractor := NewNameExtractor(nil)
	assert.Equal(t, "Jane Doe", extractor.Extract(text), "首行应被识别为姓名")
}

// TestNameExtractorSkipsExcludedLines 验证含排除词的行被跳过
func TestNameExtractorSkipsExcludedLines(t *testing.T) {
	text := `Curriculum Vitae
Jane Doe
Software Engineer`

	extractor := NewNameExtractor(nil)
	assert.Equal(t, "Jane Doe", extractor.Extract(text), "含排除词的行应被跳过，取下一个候选行")
}

// TestNameExtractorSkipsLinesWithDigits 验证含数字的行被跳过
func TestNameExtractorSkipsLinesWithDigits(t *testing.T) {
	text := `Apt 4B Building
John Smith`

	extractor := NewNameExtractor(nil)
	assert.Equal(t, "John Smith", extractor.Extract(text), "含数字的行不应被当作姓名")
}

// TestNameExtractorWordCountBounds 验证词数不在2-4范围的行被跳过
func TestNameExtractorWordCountBounds(t *testing.T) {
	text := `Jane
An Extremely Long Header Line Here
Jane Elizabeth Doe`

	extractor := NewNameExtractor(nil)
	assert.Equal(t, "Jane Elizabeth Doe", extractor.Extract(text), "单词行与超长行都不是姓名候选")
}

// TestNameExtractorOnlyScansHead 验证超出扫描范围的行不会被考虑
func TestNameExtractorOnlyScansHead(t *testing.T) {
	text := "\n\n\n\n\nJane Doe"

	extractor := NewNameExtractor(nil)
	assert.Empty(t, extractor.Extract(text), "第6行起的内容不应被扫描")
}

// TestNameExtractorCustomExcludeWords 验证注入的排除词表生效
func TestNameExtractorCustomExcludeWords(t *testing.T) {
	text := `Acme Billing Team
Jane Doe`

	extractor := NewNameExtractor([]string{"team"})
	assert.Equal(t, "Jane Doe", extractor.Extract(text), "自定义排除词应使首行被跳过")
}
