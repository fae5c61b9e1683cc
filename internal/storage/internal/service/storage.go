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
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ecodeclub/hireflow/internal/storage/internal/domain"
	"github.com/pkg/errors"
	"github.com/tencentyun/cos-go-sdk-v5"
	sts "github.com/tencentyun/qcloud-cos-sts-sdk/go"
)

// SignedURLExpiration 签名链接的有效期
const SignedURLExpiration = time.Hour

var (
	ErrEmptyObject    = errors.New("上传的对象为空")
	ErrObjectNotFound = errors.New("对象不存在")
)

//go:generate mockgen -source=./storage.go -destination=../../mocks/storage.mock.go -package=storagemocks Service
type Service interface {
	// Upload 返回的 path 是稳定的，后续用来获取签名链接
	Upload(ctx context.Context, obj domain.Object) (string, error)
	Download(ctx context.Context, path string) ([]byte, error)
	// Stat 对象不存在的时候返回 ErrObjectNotFound
	Stat(ctx context.Context, path string) (domain.ObjectInfo, error)
	// SignedURL 有效期一个小时
	SignedURL(ctx context.Context, path string) (string, error)
	// TempCredentials 前端直传使用的临时密钥，只能写 prefix 下的对象
	TempCredentials(ctx context.Context, prefix string, contentType string) (domain.Credentials, error)
}

type Config struct {
	SecretID  string `yaml:"secretID"`
	SecretKey string `yaml:"secretKey"`
	AppID     string `yaml:"appID"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	// BucketURL 为空的时候根据 bucket 和 region 生成
	BucketURL string `yaml:"bucketURL"`
}

type cosService struct {
	client    *cos.Client
	stsClient *sts.Client
	cfg       Config
	actions   []string
}

func NewCOSService(cfg Config) (Service, error) {
	bu, err := bucketURL(cfg)
	if err != nil {
		return nil, err
	}
	client := cos.NewClient(&cos.BaseURL{BucketURL: bu}, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  cfg.SecretID,
			SecretKey: cfg.SecretKey,
		},
	})
	return &cosService{
		client:    client,
		stsClient: sts.NewClient(cfg.SecretID, cfg.SecretKey, http.DefaultClient),
		cfg:       cfg,
		actions: []string{
			// 简单上传
			"name/cos:PostObject",
			"name/cos:PutObject",
			// 分片上传
			"name/cos:InitiateMultipartUpload",
			"name/cos:ListMultipartUploads",
			"name/cos:ListParts",
			"name/cos:UploadPart",
			"name/cos:CompleteMultipartUpload",
		},
	}, nil
}

func bucketURL(cfg Config) (*url.URL, error) {
	if cfg.BucketURL != "" {
		u, err := url.Parse(cfg.BucketURL)
		return u, errors.Wrap(err, "解析 bucket url 失败")
	}
	u, err := cos.NewBucketURL(fmt.Sprintf("%s-%s", cfg.Bucket, cfg.AppID), cfg.Region, true)
	return u, errors.Wrap(err, "构造 bucket url 失败")
}

func (s *cosService) Upload(ctx context.Context, obj domain.Object) (string, error) {
	if obj.Body == nil || obj.Size == 0 {
		return "", ErrEmptyObject
	}
	_, err := s.client.Object.Put(ctx, obj.Path, obj.Body, &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{
			ContentType:   obj.ContentType,
			ContentLength: obj.Size,
		},
	})
	if err != nil {
		return "", errors.Wrapf(err, "上传对象失败 path=%s", obj.Path)
	}
	return obj.Path, nil
}

func (s *cosService) Download(ctx context.Context, path string) ([]byte, error) {
	resp, err := s.client.Object.Get(ctx, path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "下载对象失败 path=%s", path)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	return data, errors.Wrapf(err, "读取对象失败 path=%s", path)
}

func (s *cosService) Stat(ctx context.Context, path string) (domain.ObjectInfo, error) {
	resp, err := s.client.Object.Head(ctx, path, nil)
	if cos.IsNotFoundError(err) {
		return domain.ObjectInfo{}, errors.Wrapf(ErrObjectNotFound, "path=%s", path)
	}
	if err != nil {
		return domain.ObjectInfo{}, errors.Wrapf(err, "查询对象失败 path=%s", path)
	}
	return domain.ObjectInfo{
		Path:        path,
		ContentType: resp.Header.Get("Content-Type"),
		Size:        resp.ContentLength,
	}, nil
}

func (s *cosService) SignedURL(ctx context.Context, path string) (string, error) {
	u, err := s.client.Object.GetPresignedURL(ctx, http.MethodGet, path,
		s.cfg.SecretID, s.cfg.SecretKey, SignedURLExpiration, nil)
	if err != nil {
		return "", errors.Wrapf(err, "生成签名链接失败 path=%s", path)
	}
	return u.String(), nil
}

func (s *cosService) TempCredentials(ctx context.Context, prefix string, contentType string) (domain.Credentials, error) {
	// 存储桶的命名格式为 BucketName-APPID
	resource := fmt.Sprintf("qcs::cos:%s:uid/%s:%s-%s/%s/*",
		s.cfg.Region, s.cfg.AppID,
		s.cfg.Bucket, s.cfg.AppID, prefix)
	opt := &sts.CredentialOptions{
		DurationSeconds: int64(time.Hour.Seconds()),
		Region:          s.cfg.Region,
		Policy: &sts.CredentialPolicy{
			Statement: []sts.CredentialPolicyStatement{
				{
					Action:   s.actions,
					Effect:   "allow",
					Resource: []string{resource},
					Condition: map[string]map[string]interface{}{
						"string_equal": {
							"cos:content-type": contentType,
						},
					},
				},
			},
		},
	}
	res, err := s.stsClient.GetCredential(opt)
	if err != nil {
		return domain.Credentials{}, errors.Wrap(err, "获取临时密钥失败")
	}
	return domain.Credentials{
		SecretID:     res.Credentials.TmpSecretID,
		SecretKey:    res.Credentials.TmpSecretKey,
		SessionToken: res.Credentials.SessionToken,
		StartTime:    res.StartTime,
		ExpiredTime:  res.ExpiredTime,
		Prefix:       prefix,
	}, nil
}
