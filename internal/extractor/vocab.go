package extractor

import "strings"

// DefaultSkillsVocabulary 内置技能关键词表
// 匹配时不区分大小写，结果规范化为标题格式
var DefaultSkillsVocabulary = []string{
	// 编程语言
	"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "php",
	"swift", "kotlin", "go", "rust", "scala", "r", "matlab", "sql",

	// Web技术
	"html", "css", "react", "angular", "vue", "node.js", "express", "django",
	"flask", "spring", "laravel", "bootstrap", "jquery", "webpack",

	// 数据库
	"mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle", "cassandra",
	"elasticsearch", "dynamodb",

	// 云与DevOps
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "git", "github",
	"gitlab", "terraform", "ansible", "chef", "puppet",

	// 数据科学与机器学习
	"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras",
	"matplotlib", "seaborn", "plotly", "jupyter", "spark", "hadoop",

	// 其他
	"linux", "unix", "windows", "macos", "api", "rest", "graphql", "microservices",
	"agile", "scrum", "kanban", "jira", "confluence",
}

// DefaultDegreeKeywords 内置学位关键词表
// 教育经历扫描器用它识别学位行，匹配不区分大小写
var DefaultDegreeKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "associate", "diploma",
	"b.s.", "b.a.", "m.s.", "m.a.", "b.tech", "m.tech", "mba", "md",
}

// DefaultNameExcludeWords 姓名候选行的排除词
// 含有这些词的行不会被当作姓名
var DefaultNameExcludeWords = []string{
	"resume", "cv", "curriculum", "vitae", "contact", "phone", "email",
}

// 各章节的进入与结束触发词
var (
	// educationEntryKeywords 进入教育章节的触发词
	educationEntryKeywords = []string{"education", "academic", "qualification"}
	// educationCloseKeywords 结束教育章节的触发词（属于其他章节族）
	educationCloseKeywords = []string{"experience", "work", "employment", "project", "skill"}

	// experienceEntryKeywords 进入工作经历章节的触发词
	experienceEntryKeywords = []string{"experience", "work", "employment", "career"}
	// experienceCloseKeywords 结束工作经历章节的触发词
	experienceCloseKeywords = []string{"education", "project", "skill", "certification"}
)

// containsAny 判断小写文本中是否含有任一关键词（子串匹配）
func containsAny(lowerText string, keywords []string) bool {
	for _, keyword := range keywords {
		if keyword != "" && strings.Contains(lowerText, keyword) {
			return true
		}
	}
	return false
}
