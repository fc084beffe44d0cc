package extractor

import (
	"regexp"
	"strings"

	"resume-agent-go/internal/types"
)

// ContactExtractor 基于正则的联系方式提取器
// 永远不失败：没有匹配的字段保持空字符串
type ContactExtractor struct {
	emailRe     *regexp.Regexp
	phonePats   []*regexp.Regexp
	linkedinRe  *regexp.Regexp
	githubRe    *regexp.Regexp
	portfolioRe *regexp.Regexp

	// 作品集URL要排除的社交域名
	excludedDomains []string
}

// NewContactExtractor 创建联系方式提取器，正则在构造时编译
func NewContactExtractor() *ContactExtractor {
	return &ContactExtractor{
		emailRe: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		// 电话模式按从具体到宽泛排列，第一个命中的模式胜出
		phonePats: []*regexp.Regexp{
			regexp.MustCompile(`\+?1?[-.\s]?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`),
			regexp.MustCompile(`\b\d{10}\b`),
			regexp.MustCompile(`\(\d{3}\)\s*\d{3}-\d{4}`),
			regexp.MustCompile(`\d{3}-\d{3}-\d{4}`),
		},
		linkedinRe:  regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`),
		githubRe:    regexp.MustCompile(`(?i)github\.com/[\w-]+`),
		portfolioRe: regexp.MustCompile(`https?://(?:www\.)?[\w.-]+\.\w{2,}`),
		excludedDomains: []string{
			"linkedin.com", "github.com", "facebook.com", "twitter.com",
		},
	}
}

// Extract 从文本中提取联系方式
// 全程以文本中最早出现者为准，不做评分排序
func (e *ContactExtractor) Extract(text string) types.ContactInfo {
	info := types.ContactInfo{}

	// 邮箱：取文档顺序中第一个匹配
	if email := e.emailRe.FindString(text); email != "" {
		info.Email = email
	}

	// 电话：按模式顺序尝试，带捕获组的匹配把各组逐位拼接
	for _, pat := range e.phonePats {
		m := pat.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m) > 1 {
			info.Phone = strings.Join(m[1:], "")
		} else {
			info.Phone = m[0]
		}
		break
	}

	if linkedin := e.linkedinRe.FindString(text); linkedin != "" {
		info.LinkedIn = linkedin
	}
	if github := e.githubRe.FindString(text); github != "" {
		info.GitHub = github
	}

	// 作品集：第一个不属于排除域名的URL
	for _, match := range e.portfolioRe.FindAllString(text, -1) {
		if !e.isExcludedDomain(match) {
			info.Portfolio = match
			break
		}
	}

	return info
}

func (e *ContactExtractor) isExcludedDomain(url string) bool {
	for _, domain := range e.excludedDomains {
		if strings.Contains(url, domain) {
			return true
		}
	}
	return false
}
