// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type Kind string

const (
	KindResume      Kind = "resume"
	KindVideo       Kind = "video"
	KindJobDocument Kind = "document"
)

const (
	maxNameLen  = 100
	defaultName = "file"
)

// Object 待上传的对象
type Object struct {
	Path        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ObjectInfo 已经存在的对象
type ObjectInfo struct {
	Path        string
	ContentType string
	Size        int64
}

type Credentials struct {
	SecretID     string
	SecretKey    string
	SessionToken string
	StartTime    int
	ExpiredTime  int
	// 只允许上传到这个前缀下
	Prefix string
}

// BuildPath 路径格式 {namespace}/{kind}/{timestamp}_{sanitizedName}
// namespace 一般是 application id
func BuildPath(namespace string, kind Kind, name string, now time.Time) string {
	return fmt.Sprintf("%s/%s/%d_%s", namespace, kind, now.UnixMilli(), SanitizeName(name))
}

// SanitizeName 只保留 [A-Za-z0-9._-]，带音调的字母先去掉音调
// 扩展名总是保留，主干部分全部被替换掉的时候用 file 代替
func SanitizeName(name string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		folded = name
	}
	var sb strings.Builder
	sb.Grow(len(folded))
	for _, r := range folded {
		switch {
		case isAlnum(r), r == '.', r == '-', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	base, ext := splitExt(sb.String())
	// 开头的点会变成隐藏文件或者路径穿越
	base = strings.TrimRight(strings.TrimLeft(base, "._"), ".")
	if base == "" {
		if ext == "" {
			return defaultName
		}
		base = defaultName
	}
	if len(base)+len(ext) > maxNameLen {
		base = base[:maxNameLen-len(ext)]
	}
	return base + ext
}

// splitExt 扩展名只能是不超过 10 个字母数字
func splitExt(name string) (string, string) {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return name, ""
	}
	ext := name[idx+1:]
	if ext == "" || len(ext) > 10 {
		return name, ""
	}
	for _, r := range ext {
		if !isAlnum(r) {
			return name, ""
		}
	}
	return name[:idx], name[idx:]
}

func isAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}
