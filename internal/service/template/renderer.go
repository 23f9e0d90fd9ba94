package template

import (
	"regexp"
	"unicode/utf8"
)

// tokenPattern 只识别 {{identifier}}，identifier 由字母、数字、下划线组成，括号内不允许空格
var tokenPattern = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

// Render 用 vars 替换模板里的占位符。
// 找不到变量的占位符原样保留；替换结果不会被再次扫描；
// 不成对的 {{ 不会报错，按普通文本输出。
func Render(tmpl string, vars map[string]string) string {
	if tmpl == "" || len(vars) == 0 {
		return tmpl
	}
	return tokenPattern.ReplaceAllStringFunc(tmpl, func(token string) string {
		// token 形如 {{name}}
		key := token[2 : len(token)-2]
		if v, ok := vars[key]; ok {
			return v
		}
		return token
	})
}

// Tokens 返回模板中引用到的变量名，按出现顺序，不去重
func Tokens(tmpl string) []string {
	matches := tokenPattern.FindAllStringSubmatch(tmpl, -1)
	res := make([]string, 0, len(matches))
	for _, m := range matches {
		res = append(res, m[1])
	}
	return res
}

// ValidateBudget 判断渲染后的文本是否在字符预算内，按字符而不是字节计数。
// maxChars <= 0 表示不限制
func ValidateBudget(text string, maxChars int) bool {
	if maxChars <= 0 {
		return true
	}
	return utf8.RuneCountInString(text) <= maxChars
}
