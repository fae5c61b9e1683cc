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

package extract

import (
	"archive/zip"
	"bytes"
	"html"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/pkg/errors"
)

const (
	MimePDF  = "application/pdf"
	MimeDOC  = "application/msword"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"
)

var (
	ErrUnsupportedFormat = errors.New("不支持的文档格式")
	ErrEmptyText         = errors.New("文档中没有可以识别的文字")
)

var (
	paragraphEnd = regexp.MustCompile(`</w:p>|<w:br/>|<w:tab/>`)
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
	blankLines   = regexp.MustCompile(`\n{3,}`)
)

// Detect 根据内容判断类型，不信任文件扩展名
func Detect(data []byte) string {
	mtype := mimetype.Detect(data)
	for m := mtype; m != nil; m = m.Parent() {
		for _, candidate := range []string{MimePDF, MimeDOCX, MimeDOC, MimeText} {
			if m.Is(candidate) {
				return candidate
			}
		}
	}
	return mtype.String()
}

// Text 提取纯文本，结果最多 maxRunes 个字符，maxRunes <= 0 表示不限制
func Text(data []byte, maxRunes int) (string, error) {
	var (
		text string
		err  error
	)
	mtype := Detect(data)
	switch mtype {
	case MimePDF:
		text, err = pdfText(data)
	case MimeDOCX:
		text, err = docxText(data)
	case MimeText:
		if !utf8.Valid(data) {
			return "", errors.Wrap(ErrUnsupportedFormat, "文本不是 UTF-8 编码")
		}
		text = string(data)
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "类型 %s", mtype)
	}
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(blankLines.ReplaceAllString(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n"))
	if text == "" {
		return "", ErrEmptyText
	}
	return truncate(text, maxRunes), nil
}

func pdfText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.Wrap(err, "解析 PDF 失败")
	}
	reader, err := r.GetPlainText()
	if err != nil {
		return "", errors.Wrap(err, "提取 PDF 文字失败")
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, reader); err != nil {
		return "", errors.Wrap(err, "提取 PDF 文字失败")
	}
	return buf.String(), nil
}

func docxText(data []byte) (res string, err error) {
	// 损坏的文件可能会让解析库 panic
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("解析 DOCX 失败 %v", r)
		}
	}()
	r, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		if errors.Is(err, zip.ErrFormat) {
			return "", errors.Wrap(ErrUnsupportedFormat, "DOCX 不是合法的 zip 文件")
		}
		return "", errors.Wrap(err, "解析 DOCX 失败")
	}
	defer r.Close()
	content := r.Editable().GetContent()
	content = paragraphEnd.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content), nil
}

func truncate(text string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxRunes])
}
