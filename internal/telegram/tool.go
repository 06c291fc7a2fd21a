package telegram

import "strings"

// Markdown(旧版)模式只有这四个字符需要转义，反斜杠本身不是特殊字符
var markdownEscaper = strings.NewReplacer(
	"*", "\\*",
	"_", "\\_",
	"`", "\\`",
	"[", "\\[",
)

// EscapeMarkdown 转义 Markdown 模式下的特殊字符，用于填充模板中的动态内容
func EscapeMarkdown(input string) string {
	return markdownEscaper.Replace(input)
}
