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
	"errors"
	"fmt"
)

var (
	// ErrPermissionDenied 用户拒绝授权，前端文案是"请允许访问摄像头/麦克风"
	ErrPermissionDenied = errors.New("media: 设备访问权限被拒绝")
	// ErrDeviceUnavailable 没有设备或者设备被占用
	ErrDeviceUnavailable = errors.New("media: 设备不可用")
	ErrNoTrack           = errors.New("media: 没有可用的 track")
	ErrRecorderStarted   = errors.New("media: 录制已经开始")
	ErrRecorderNotDone   = errors.New("media: 录制尚未结束")
	ErrDeviceClosed      = errors.New("media: 设备连接已关闭")
)

// ClassifyDeviceError 把浏览器 getUserMedia 的 DOMException 名字转换成错误
func ClassifyDeviceError(name, msg string) error {
	switch name {
	case "NotAllowedError", "SecurityError", "PermissionDeniedError":
		return fmt.Errorf("%w: %s", ErrPermissionDenied, msg)
	case "NotFoundError", "NotReadableError", "OverconstrainedError",
		"DevicesNotFoundError", "TrackStartError", "AbortError":
		return fmt.Errorf("%w: %s", ErrDeviceUnavailable, msg)
	default:
		return fmt.Errorf("media: 获取设备失败 %s: %s", name, msg)
	}
}

// IsPermissionError 权限和设备问题需要用户自己处理，和普通的失败区分开
func IsPermissionError(err error) bool {
	return errors.Is(err, ErrPermissionDenied) || errors.Is(err, ErrDeviceUnavailable)
}
