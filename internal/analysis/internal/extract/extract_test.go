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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	testCases := []struct {
		name     string
		data     []byte
		maxRunes int
		want     string
		wantErr  error
	}{
		{
			name: "纯文本",
			data: []byte("张三\r\n\r\n\r\n\r\nGo 工程师\n"),
			want: "张三\n\nGo 工程师",
		},
		{
			name:     "超过长度截断",
			data:     []byte("熟悉 Go 和 MySQL"),
			maxRunes: 5,
			want:     "熟悉 Go",
		},
		{
			name: "DOCX",
			data: newDocx(t, `<w:body><w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>`+
				`<w:p><w:r><w:t>Go &amp; Kafka</w:t></w:r></w:p></w:body>`),
			want: "Jane Doe\nGo & Kafka",
		},
		{
			name:    "只有空白",
			data:    []byte("   \n\n  "),
			wantErr: ErrEmptyText,
		},
		{
			name:    "不支持的格式",
			data:    []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d},
			wantErr: ErrUnsupportedFormat,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			text, err := Text(tc.data, tc.maxRunes)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, text)
		})
	}
}

func TestDetect(t *testing.T) {
	assert.Equal(t, MimePDF, Detect([]byte("%PDF-1.4\n%âãÏÓ\n1 0 obj\n")))
	assert.Equal(t, MimeText, Detect([]byte("hello world")))
	assert.Equal(t, MimeDOCX, Detect(newDocx(t, `<w:body></w:body>`)))
}

func newDocx(t *testing.T, body string) []byte {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	files := []struct {
		name    string
		content string
	}{
		{
			name: "[Content_Types].xml",
			content: `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
				`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
				`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`,
		},
		{
			name: "word/_rels/document.xml.rels",
			content: `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
				`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		},
		{
			name: "word/document.xml",
			content: `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
				`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
				body + `</w:document>`,
		},
	}
	for _, f := range files {
		fw, err := w.Create(f.name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 0))
	assert.Equal(t, strings.Repeat("简", 3), truncate(strings.Repeat("简", 10), 3))
}
