package types

// SourceFormat 表示简历原始文件的格式
type SourceFormat string

const (
	// FormatPDF PDF格式
	FormatPDF SourceFormat = "pdf"
	// FormatDOCX DOCX格式（.doc同样走此路径）
	FormatDOCX SourceFormat = "docx"
)

// ContactInfo 联系方式信息，字段缺失时为空字符串
type ContactInfo struct {
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// EducationEntry 一条教育经历
// Degree 永远非空；没有识别到学位关键词的行不会产生条目
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"` // 4位年份，1900-2099
}

// ExperienceEntry 一条工作经历
type ExperienceEntry struct {
	Title    string `json:"title"`
	Company  string `json:"company,omitempty"`
	Duration string `json:"duration,omitempty"` // 例如 "2019-Present"
}

// ResumeProfile 表示一次解析得到的完整结构化简历数据
// 由 processor.ResumeParser 一次性构建，返回后不再修改
type ResumeProfile struct {
	Name string `json:"name,omitempty"`

	// 联系方式
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`

	// Skills 规范化后的技能标签，按字典序排序，无重复
	Skills []string `json:"skills"`

	// Education 教育经历，按文档内出现顺序
	Education []EducationEntry `json:"education"`

	// Experience 工作经历，按文档内出现顺序
	Experience []ExperienceEntry `json:"experience"`

	// RawText 提取出的完整文本，永远非空
	RawText string `json:"raw_text"`

	// SourceFormat 原始文件格式，永远是 pdf 或 docx
	SourceFormat SourceFormat `json:"source_format"`
}

// NewResumeProfile 构建一个列表字段均已初始化为空切片的 ResumeProfile
// 保证"缺失=空序列"而不是nil容器
func NewResumeProfile(rawText string, format SourceFormat) *ResumeProfile {
	return &ResumeProfile{
		Skills:       []string{},
		Education:    []EducationEntry{},
		Experience:   []ExperienceEntry{},
		RawText:      rawText,
		SourceFormat: format,
	}
}

// ApplyContact 将联系方式写入档案
func (p *ResumeProfile) ApplyContact(c ContactInfo) {
	p.Email = c.Email
	p.Phone = c.Phone
	p.LinkedIn = c.LinkedIn
	p.GitHub = c.GitHub
	p.Portfolio = c.Portfolio
}
