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

package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/hireflow/internal/ai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Handle(t *testing.T) {
	var body struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string          `json:"role"`
			Content json.RawMessage `json:"content"`
		} `json:"messages"`
		Temperature float64 `json:"temperature"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "deepseek-chat",
			"choices": [{
				"index": 0,
				"finish_reason": "stop",
				"logprobs": null,
				"message": {"role": "assistant", "content": "{\"score\": 80}"}
			}],
			"usage": {"prompt_tokens": 1200, "completion_tokens": 301, "total_tokens": 1501}
		}`))
	}))
	defer server.Close()

	h := NewHandler(server.URL+"/", "test-key")
	resp, err := h.Handle(context.Background(), domain.LLMRequest{
		Biz:   domain.BizInterviewAnalysis,
		Input: []string{"Go 工程师", "Human: 你好"},
		Config: domain.BizConfig{
			Model:          "deepseek-chat",
			Price:          2,
			Temperature:    0.2,
			SystemPrompt:   "只输出 JSON",
			PromptTemplate: "%s|%s",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LLMResponse{Tokens: 1501, Amount: 4, Answer: `{"score": 80}`}, resp)

	assert.Equal(t, "deepseek-chat", body.Model)
	require.Len(t, body.Messages, 2)
	assert.Equal(t, "system", body.Messages[0].Role)
	assert.Equal(t, "只输出 JSON", contentText(t, body.Messages[0].Content))
	assert.Equal(t, "user", body.Messages[1].Role)
	assert.Equal(t, "Go 工程师|Human: 你好", contentText(t, body.Messages[1].Content))
	assert.Equal(t, 0.2, body.Temperature)
}

// contentText content 可能是字符串，也可能是 text part 数组
func contentText(t *testing.T, raw json.RawMessage) string {
	var text string
	if json.Unmarshal(raw, &text) == nil {
		return text
	}
	var parts []struct {
		Text string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(raw, &parts))
	for _, p := range parts {
		text += p.Text
	}
	return text
}
