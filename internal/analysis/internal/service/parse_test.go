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

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswer(t *testing.T) {
	type answer struct {
		Score    *flexibleNumber `json:"score"`
		Feedback string          `json:"feedback"`
		Tags     flexibleStrings `json:"tags"`
	}
	testCases := []struct {
		name    string
		input   string
		want    answer
		wantErr error
	}{
		{
			name:  "本身就是JSON",
			input: `{"score": 80, "feedback": "不错", "tags": ["Go", " Kafka "]}`,
			want:  answer{Score: ptr(80), Feedback: "不错", Tags: flexibleStrings{"Go", "Kafka"}},
		},
		{
			name:  "有前缀后缀",
			input: "```json\n{\"score\": \"75 分\", \"tags\": \"Go，MySQL、Redis\"}\n```",
			want:  answer{Score: ptr(75), Tags: flexibleStrings{"Go", "MySQL", "Redis"}},
		},
		{
			name:    "没有 JSON",
			input:   "抱歉，我无法回答",
			wantErr: ErrInvalidAnswer,
		},
		{
			name:    "JSON 不完整",
			input:   `{"score": 80, "feedback": }`,
			wantErr: ErrInvalidAnswer,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var res answer
			err := parseAnswer(tc.input, &res)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestAbbreviate(t *testing.T) {
	short := "短回答"
	assert.Equal(t, short, abbreviate(short))
	long := make([]rune, 100)
	for i := range long {
		long[i] = '长'
	}
	res := []rune(abbreviate(string(long)))
	require.Len(t, res, 67)
}

func ptr(f float64) *flexibleNumber {
	n := flexibleNumber(f)
	return &n
}
