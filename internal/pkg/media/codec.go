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

package media

import (
	"strings"

	"github.com/ecodeclub/ekit/slice"
)

const FallbackVideoMimeType = "video/webm"

// VideoMimeTypes 按优先级排列
var VideoMimeTypes = []string{
	"video/webm;codecs=vp9,opus",
	"video/webm;codecs=vp8,opus",
	"video/webm;codecs=h264,opus",
	"video/mp4;codecs=avc1.42E01E,mp4a.40.2",
	"video/mp4",
}

type Capabilities interface {
	IsTypeSupported(mimeType string) bool
}

// SupportedTypes 客户端上报的 MediaRecorder.isTypeSupported 为 true 的类型
type SupportedTypes []string

func (s SupportedTypes) IsTypeSupported(mimeType string) bool {
	target := normalizeMimeType(mimeType)
	_, ok := slice.Find(s, func(src string) bool {
		return normalizeMimeType(src) == target
	})
	return ok
}

// NegotiateMimeType 按顺序探测，第一个支持的胜出，都不支持就用 fallback
func NegotiateMimeType(caps Capabilities, candidates []string, fallback string) string {
	if caps == nil {
		return fallback
	}
	for _, c := range candidates {
		if caps.IsTypeSupported(c) {
			return c
		}
	}
	return fallback
}

func normalizeMimeType(mimeType string) string {
	return strings.ToLower(strings.ReplaceAll(mimeType, " ", ""))
}
