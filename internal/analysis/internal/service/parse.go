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
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidAnswer = errors.New("LLM 的回答不是合法的 JSON")

// 回答可能被 ```json 包起来，或者前后有别的内容
const jsonExpr = `(?s)\{.*\}`

var jsonPattern = regexp.MustCompile(jsonExpr)

func parseAnswer(answer string, val any) error {
	raw := jsonPattern.FindString(answer)
	if raw == "" {
		return fmt.Errorf("%w: %s", ErrInvalidAnswer, abbreviate(answer))
	}
	if err := json.Unmarshal([]byte(raw), val); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAnswer, err)
	}
	return nil
}

// flexibleNumber 兼容 80、"80"、"80 分" 这几种写法
type flexibleNumber float64

func (f *flexibleNumber) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = flexibleNumber(num)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	str = strings.TrimSpace(str)
	end := strings.IndexFunc(str, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != '-'
	})
	if end >= 0 {
		str = str[:end]
	}
	num, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return err
	}
	*f = flexibleNumber(num)
	return nil
}

// flexibleStrings 兼容数组和用逗号分隔的字符串
type flexibleStrings []string

func (f *flexibleStrings) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*f = trimAll(arr)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*f = trimAll(strings.FieldsFunc(str, func(r rune) bool {
		return r == ',' || r == '，' || r == '、' || r == '\n'
	}))
	return nil
}

func trimAll(src []string) []string {
	res := make([]string, 0, len(src))
	for _, s := range src {
		s = strings.TrimSpace(s)
		if s != "" {
			res = append(res, s)
		}
	}
	return res
}

func abbreviate(s string) string {
	const limit = 64
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}
