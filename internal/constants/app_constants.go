package constants

// 文件格式相关常量
const (
	// ExtPDF PDF文件扩展名
	ExtPDF = ".pdf"
	// ExtDOCX DOCX文件扩展名
	ExtDOCX = ".docx"
	// ExtDOC 旧版Word扩展名，与DOCX走同一提取路径
	ExtDOC = ".doc"
)

// SupportedExtensions 支持的简历文件扩展名（小写）
var SupportedExtensions = []string{ExtPDF, ExtDOCX, ExtDOC}

// 上传与解析的默认限制
const (
	// DefaultMaxUploadSizeMB 默认上传文件大小上限(MB)
	DefaultMaxUploadSizeMB = 10
	// DefaultExtractTimeoutSeconds 单次文本提取的默认超时(秒)
	DefaultExtractTimeoutSeconds = 30
)

// 名字启发式扫描的限制
const (
	// NameScanMaxLines 姓名提取只扫描文本前几行
	NameScanMaxLines = 5
	// NameMaxLength 候选姓名行的最大长度
	NameMaxLength = 50
)
