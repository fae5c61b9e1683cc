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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "普通文件名", input: "resume.pdf", want: "resume.pdf"},
		{name: "空格和括号", input: "My CV (final).pdf", want: "My_CV__final_.pdf"},
		{name: "音调字母", input: "Résumé-José.docx", want: "Resume-Jose.docx"},
		{name: "路径穿越", input: "../../etc/passwd", want: "etc_passwd"},
		{name: "中文", input: "简历.pdf", want: "file.pdf"},
		{name: "中文和空格", input: "张三 简历.pdf", want: "file.pdf"},
		{name: "中英混合", input: "张三_resume.docx", want: "resume.docx"},
		{name: "中文视频", input: "面试录像.webm", want: "file.webm"},
		{name: "只有扩展名", input: ".pdf", want: "file.pdf"},
		{name: "多个扩展名", input: "cv.tar.gz", want: "cv.tar.gz"},
		{name: "结尾的点", input: "cv.", want: "cv"},
		{name: "隐藏文件", input: "..hidden", want: "file.hidden"},
		{name: "空", input: "", want: "file"},
		{name: "只有非法字符", input: "???", want: "file"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SanitizeName(tc.input))
		})
	}
}

func TestSanitizeName_Long(t *testing.T) {
	name := strings.Repeat("a", 300) + ".pdf"
	res := SanitizeName(name)
	assert.Len(t, res, maxNameLen)
	assert.True(t, strings.HasSuffix(res, ".pdf"))

	res = SanitizeName(strings.Repeat("简", 300) + ".pdf")
	assert.Equal(t, "file.pdf", res)
}

func TestBuildPath(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	assert.Equal(t, "42/resume/1700000000123_My_CV.pdf", BuildPath("42", KindResume, "My CV.pdf", now))
	assert.Equal(t, "42/video/1700000000123_interview.webm", BuildPath("42", KindVideo, "interview.webm", now))
}
