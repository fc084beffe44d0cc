package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resume-agent-go/internal/exporter"
	"resume-agent-go/internal/processor"
	"resume-agent-go/internal/types"
)

// 命令行参数定义
var (
	resumeFilePath = flag.String("file", "", "简历文件路径 (必填，支持 .pdf/.docx/.doc)")
	command        = flag.String("cmd", "parse", "执行的命令: extract=仅提取文本, parse=完整解析并导出")
	maxLen         = flag.Int("maxlen", 1000, "extract命令显示的文本最大长度，设为-1显示全部")
	outputDir      = flag.String("out", "", "导出文件目录，默认与输入文件同目录")
	skipExport     = flag.Bool("no-export", false, "parse命令只打印结果，不写JSON/CSV文件")
)

func main() {
	flag.Parse()

	if *resumeFilePath == "" {
		fmt.Println("错误: 必须提供简历文件路径。使用 -file 参数。")
		flag.Usage()
		os.Exit(1)
	}

	absPath, err := filepath.Abs(*resumeFilePath)
	if err != nil {
		fmt.Printf("无法获取文件的绝对路径: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	switch *command {
	case "extract":
		handleExtractCommand(ctx, absPath)
	case "parse":
		handleParseCommand(ctx, absPath)
	default:
		fmt.Printf("错误: 未知命令 '%s'。支持的命令: extract, parse\n", *command)
		flag.Usage()
		os.Exit(1)
	}
}

// handleExtractCommand 仅提取文本并显示
func handleExtractCommand(ctx context.Context, absPath string) {
	resumeParser, err := processor.NewResumeParser(ctx)
	if err != nil {
		fmt.Printf("创建简历解析器失败: %v\n", err)
		os.Exit(1)
	}

	startTime := time.Now()
	profile, err := resumeParser.Parse(ctx, absPath)
	if err != nil {
		fmt.Printf("提取文本失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("提取完成! 耗时: %v\n", time.Since(startTime))
	fmt.Printf("\n===== 提取的文本 (格式: %s, 总计 %d 字符) =====\n", profile.SourceFormat, len(profile.RawText))

	displayText := profile.RawText
	if *maxLen >= 0 && len(displayText) > *maxLen {
		displayText = displayText[:*maxLen] + "\n...(已截断)"
	}
	fmt.Println(displayText)
}

// handleParseCommand 完整解析并导出JSON/CSV
func handleParseCommand(ctx context.Context, absPath string) {
	resumeParser, err := processor.NewResumeParser(ctx)
	if err != nil {
		fmt.Printf("创建简历解析器失败: %v\n", err)
		os.Exit(1)
	}

	startTime := time.Now()
	profile, err := resumeParser.Parse(ctx, absPath)
	if err != nil {
		fmt.Printf("解析简历失败: %v\n", err)
		os.Exit(1)
	}

	printProfile(profile, time.Since(startTime))

	if *skipExport {
		return
	}

	dir := *outputDir
	if dir == "" {
		dir = filepath.Dir(absPath)
	}
	base := strings.TrimSuffix(filepath.Base(absPath), filepath.Ext(absPath))

	jsonPath := filepath.Join(dir, base+"_parsed.json")
	if err := exporter.SaveJSON(profile, jsonPath); err != nil {
		fmt.Printf("导出JSON失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("已导出: %s\n", jsonPath)

	csvPath := filepath.Join(dir, base+"_parsed.csv")
	if err := exporter.SaveCSV(profile, csvPath); err != nil {
		fmt.Printf("导出CSV失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("已导出: %s\n", csvPath)
}

// printProfile 打印解析结果摘要
func printProfile(profile *types.ResumeProfile, elapsed time.Duration) {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Printf("简历解析结果 - %s (耗时 %v)\n", strings.ToUpper(string(profile.SourceFormat)), elapsed)
	fmt.Println(strings.Repeat("=", 50))

	fmt.Printf("姓名: %s\n", orUnknown(profile.Name))
	fmt.Printf("邮箱: %s\n", orUnknown(profile.Email))
	fmt.Printf("电话: %s\n", orUnknown(profile.Phone))
	fmt.Printf("LinkedIn: %s\n", orUnknown(profile.LinkedIn))
	fmt.Printf("GitHub: %s\n", orUnknown(profile.GitHub))
	fmt.Printf("作品集: %s\n", orUnknown(profile.Portfolio))

	fmt.Printf("\n技能 (%d):\n", len(profile.Skills))
	for i, skill := range profile.Skills {
		if i >= 10 {
			fmt.Printf("  ...及其他%d项\n", len(profile.Skills)-10)
			break
		}
		fmt.Printf("  - %s\n", skill)
	}

	fmt.Printf("\n教育经历 (%d):\n", len(profile.Education))
	for _, edu := range profile.Education {
		fmt.Printf("  - %s | %s | %s\n", edu.Degree, orUnknown(edu.Institution), orUnknown(edu.Year))
	}

	fmt.Printf("\n工作经历 (%d):\n", len(profile.Experience))
	for _, exp := range profile.Experience {
		fmt.Printf("  - %s | %s | %s\n", exp.Title, orUnknown(exp.Company), orUnknown(exp.Duration))
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "(未识别)"
	}
	return s
}
