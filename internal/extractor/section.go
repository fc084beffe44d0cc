package extractor

import (
	"regexp"
	"strings"

	"resume-agent-go/internal/types"
)

// sectionState 章节扫描器的状态
type sectionState int

const (
	// outsideSection 尚未进入目标章节
	outsideSection sectionState = iota
	// insideSection 正在目标章节内累积条目
	insideSection
)

// yearRe 1900-2099 范围内的4位年份
var yearRe = regexp.MustCompile(`(19|20)\d{2}`)

// durationRe 工作经历的时间段：两个年份或present
var durationRe = regexp.MustCompile(`(19|20)\d{2}.*?(19|20)\d{2}|present`)

// EducationScanner 教育章节的单遍扫描器
// 遇到进入触发词开始累积，遇到其他章节族的触发词结束
// 每个文档只提取第一个章节实例，从不回溯
type EducationScanner struct {
	degreeKeywords []string
	entryKeywords  []string
	closeKeywords  []string
}

// NewEducationScanner 创建教育章节扫描器
// degreeKeywords为nil时使用内置学位词表
func NewEducationScanner(degreeKeywords []string) *EducationScanner {
	if degreeKeywords == nil {
		degreeKeywords = DefaultDegreeKeywords
	}
	return &EducationScanner{
		degreeKeywords: degreeKeywords,
		entryKeywords:  educationEntryKeywords,
		closeKeywords:  educationCloseKeywords,
	}
}

// Scan 从文本中提取教育经历
// 条目必须有学位行；没有学位关键词的行不会产生条目
func (s *EducationScanner) Scan(text string) []types.EducationEntry {
	entries := []types.EducationEntry{}
	var current *types.EducationEntry

	state := outsideSection
	for _, line := range strings.Split(text, "\n") {
		lineLower := strings.ToLower(strings.TrimSpace(line))

		// 触发词行本身作为标题被消费，不算数据
		if containsAny(lineLower, s.entryKeywords) {
			state = insideSection
			continue
		}

		if state != insideSection {
			continue
		}

		// 遇到其他章节族的触发词：冲刷在建条目后结束
		if containsAny(lineLower, s.closeKeywords) {
			if current != nil {
				entries = append(entries, *current)
				current = nil
			}
			return entries
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		// 学位行开启新条目，先冲刷上一个在建条目
		if containsAny(lineLower, s.degreeKeywords) {
			if current != nil {
				entries = append(entries, *current)
			}
			current = &types.EducationEntry{Degree: trimmed}
		}

		if current == nil {
			continue
		}

		// 年份可能与学位同行，也可能单独一行
		if year := yearRe.FindString(line); year != "" {
			current.Year = year
		}

		// 学位已定且机构未定时，下一个无学位关键词的实质行作为机构
		if current.Institution == "" && !containsAny(lineLower, s.degreeKeywords) && len(trimmed) > 3 {
			current.Institution = trimmed
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}

// ExperienceScanner 工作经历章节的单遍扫描器
// 条目字段按位置填充：第一行是职位，第二行是公司
// 随后匹配时间段模式的行作为duration并关闭条目
type ExperienceScanner struct {
	entryKeywords []string
	closeKeywords []string
}

// NewExperienceScanner 创建工作经历章节扫描器
func NewExperienceScanner() *ExperienceScanner {
	return &ExperienceScanner{
		entryKeywords: experienceEntryKeywords,
		closeKeywords: experienceCloseKeywords,
	}
}

// Scan 从文本中提取工作经历
// 章节结束（触发词或文本结束）时冲刷未关闭的在建条目
func (s *ExperienceScanner) Scan(text string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}
	var current *types.ExperienceEntry

	state := outsideSection
	for _, line := range strings.Split(text, "\n") {
		lineLower := strings.ToLower(strings.TrimSpace(line))

		if containsAny(lineLower, s.entryKeywords) {
			state = insideSection
			continue
		}

		if state != insideSection {
			continue
		}

		if containsAny(lineLower, s.closeKeywords) {
			if current != nil {
				entries = append(entries, *current)
				current = nil
			}
			return entries
		}

		trimmed := strings.TrimSpace(line)
		if len(trimmed) <= 3 {
			continue
		}

		switch {
		case current == nil:
			current = &types.ExperienceEntry{Title: trimmed}
		case current.Company == "":
			current.Company = trimmed
		default:
			// 时间段行关闭当前条目；其余行被忽略（如职责描述）
			if durationRe.MatchString(lineLower) {
				current.Duration = trimmed
				entries = append(entries, *current)
				current = nil
			}
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}
