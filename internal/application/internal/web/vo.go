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

package web

import (
	"github.com/ecodeclub/hireflow/internal/application/internal/domain"
	"github.com/ecodeclub/hireflow/internal/storage"
)

type JobReq struct {
	JobId int64 `json:"jobId" form:"jobId"`
}

type ArtifactReq struct {
	JobId int64  `json:"jobId" form:"jobId"`
	Kind  string `json:"kind" form:"kind"`
}

type UploadCredentialsReq struct {
	JobId       int64  `json:"jobId"`
	Kind        string `json:"kind"`
	ContentType string `json:"contentType"`
}

type ConfirmUploadReq struct {
	JobId int64  `json:"jobId"`
	Kind  string `json:"kind"`
	Path  string `json:"path"`
}

type RedirectVO struct {
	Redirect string `json:"redirect"`
}

type StageVO struct {
	Stage string `json:"stage"`
}

type Application struct {
	Id              int64    `json:"id"`
	JobId           int64    `json:"jobId"`
	Status          string   `json:"status"`
	HasResume       bool     `json:"hasResume"`
	HasVideo        bool     `json:"hasVideo"`
	KeyAttributes   []string `json:"keyAttributes,omitempty"`
	AssessmentScore *int     `json:"assessmentScore,omitempty"`
	Utime           int64    `json:"utime"`
}

func newApplication(app domain.Application) Application {
	return Application{
		Id:              app.Id,
		JobId:           app.JobId,
		Status:          app.Status.String(),
		HasResume:       app.HasResume(),
		HasVideo:        app.VideoPath != "",
		KeyAttributes:   app.KeyAttributes,
		AssessmentScore: app.AssessmentScore,
		Utime:           app.Utime,
	}
}

type SubmitResult struct {
	Application Application `json:"application"`
	Stage       string      `json:"stage"`
	Warnings    []string    `json:"warnings,omitempty"`
}

func newSubmitResult(res domain.SubmitResult) SubmitResult {
	return SubmitResult{
		Application: newApplication(res.Application),
		Stage:       string(res.Stage),
		Warnings:    res.Warnings,
	}
}

type ResumeArtifact struct {
	URL           string   `json:"url"`
	Analysis      string   `json:"analysis"`
	KeyAttributes []string `json:"keyAttributes"`
}

type VideoArtifact struct {
	URL string `json:"url"`
}

type InterviewArtifact struct {
	Transcript string `json:"transcript"`
	Score      *int   `json:"score"`
	Feedback   string `json:"feedback"`
}

// Artifact 只有 Kind 对应的字段有值
type Artifact struct {
	Kind      string             `json:"kind"`
	Resume    *ResumeArtifact    `json:"resume,omitempty"`
	Video     *VideoArtifact     `json:"video,omitempty"`
	Interview *InterviewArtifact `json:"interview,omitempty"`
}

func newArtifact(a domain.Artifact) Artifact {
	res := Artifact{Kind: string(a.Kind)}
	if a.Resume != nil {
		res.Resume = &ResumeArtifact{
			URL:           a.Resume.URL,
			Analysis:      a.Resume.Analysis,
			KeyAttributes: a.Resume.KeyAttributes,
		}
	}
	if a.Video != nil {
		res.Video = &VideoArtifact{URL: a.Video.URL}
	}
	if a.Interview != nil {
		res.Interview = &InterviewArtifact{
			Transcript: a.Interview.Transcript,
			Score:      a.Interview.Score,
			Feedback:   a.Interview.Feedback,
		}
	}
	return res
}

type Credentials struct {
	SecretID     string `json:"secretId"`
	SecretKey    string `json:"secretKey"`
	SessionToken string `json:"sessionToken"`
	StartTime    int    `json:"startTime"`
	ExpiredTime  int    `json:"expiredTime"`
	Prefix       string `json:"prefix"`
}

func newCredentials(c storage.Credentials) Credentials {
	return Credentials{
		SecretID:     c.SecretID,
		SecretKey:    c.SecretKey,
		SessionToken: c.SessionToken,
		StartTime:    c.StartTime,
		ExpiredTime:  c.ExpiredTime,
		Prefix:       c.Prefix,
	}
}
