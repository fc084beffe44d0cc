package extractor

import (
	"sort"
	"strings"
	"unicode"
)

// SkillsExtractor 固定词表的技能提取器
// 词表在构造时注入，匹配是不区分大小写的子串包含测试
// 不做词边界判断，接受 "react" 命中 "reactive" 这类误报
type SkillsExtractor struct {
	vocabulary []string
}

// NewSkillsExtractor 创建技能提取器
// vocabulary为nil时使用内置词表
func NewSkillsExtractor(vocabulary []string) *SkillsExtractor {
	if vocabulary == nil {
		vocabulary = DefaultSkillsVocabulary
	}
	return &SkillsExtractor{vocabulary: vocabulary}
}

// Extract 返回文本中命中的技能标签
// 标签规范化为标题格式、去重、按字典序排序
func (e *SkillsExtractor) Extract(text string) []string {
	textLower := strings.ToLower(text)

	seen := make(map[string]struct{})
	skills := make([]string, 0, len(e.vocabulary))

	for _, skill := range e.vocabulary {
		if skill == "" {
			continue
		}
		if !strings.Contains(textLower, strings.ToLower(skill)) {
			continue
		}
		label := titleCase(skill)
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		skills = append(skills, label)
	}

	sort.Strings(skills)
	return skills
}

// titleCase 标题化：任何非字母后面的字母大写，其余字母小写
// "node.js" → "Node.Js"，"scikit-learn" → "Scikit-Learn"
func titleCase(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	prevIsLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevIsLetter {
				sb.WriteRune(unicode.ToLower(r))
			} else {
				sb.WriteRune(unicode.ToUpper(r))
			}
			prevIsLetter = true
		} else {
			sb.WriteRune(r)
			prevIsLetter = false
		}
	}

	return sb.String()
}
