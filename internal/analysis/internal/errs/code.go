package errs

var (
	SystemError      = ErrorCode{Code: 518001, Msg: "系统错误"}
	InvalidDocument  = ErrorCode{Code: 418001, Msg: "岗位文档格式不对，请上传 PDF、DOCX 或者 TXT"}
	JobNotFound      = ErrorCode{Code: 418002, Msg: "岗位不存在"}
	DocumentAnalysis = ErrorCode{Code: 518002, Msg: "岗位文档整理失败，请稍后重试"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
